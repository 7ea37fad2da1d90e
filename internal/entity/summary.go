package entity

// ExpenseSummary is a derived aggregate keyed by category, location or
// month. It is never persisted; the insights engine recomputes it on every
// request. Percentage is relative to the reference total of the request
// that produced it, 0 when that total is 0.
type ExpenseSummary struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Count      int     `json:"count"`
}
