package insightsService

// Outcome is the single fulfillment of an engine operation. When Diag is
// non-empty, Value holds the well-typed default for the operation rather
// than real data.
type Outcome[T any] struct {
	Value T
	Diag  string
}

// dispatch runs the computation in the background and publishes exactly
// one outcome. The channel is buffered so an abandoned receiver never
// leaks the goroutine.
func dispatch[T any](run func() (T, error), fallback T, onErr func(error)) <-chan Outcome[T] {
	out := make(chan Outcome[T], 1)

	go func() {
		defer close(out)

		value, err := run()
		if err != nil {
			onErr(err)
			out <- Outcome[T]{Value: fallback, Diag: err.Error()}
			return
		}

		out <- Outcome[T]{Value: value}
	}()

	return out
}
