package expense

type CreateExpenseRequest struct {
	UserID     string  `json:"user_id" validate:"required"`
	Title      string  `json:"title" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time" validate:"required,datetime=15:04"`
	Location   string  `json:"location"`
	CategoryID string  `json:"category_id"`
	Notes      string  `json:"notes"`
}

type UpdateExpenseRequest struct {
	ID         string  `json:"id" validate:"required"`
	UserID     string  `json:"user_id" validate:"required"`
	Title      string  `json:"title" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time" validate:"required,datetime=15:04"`
	Location   string  `json:"location"`
	CategoryID string  `json:"category_id"`
	Notes      string  `json:"notes"`
}

// ListFilter captures the optional query filters of the list endpoint. An
// empty CategoryID means "all categories"; it is a sentinel, never a
// foreign key.
type ListFilter struct {
	CategoryID string `query:"category_id"`
	StartDate  string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Location   string `query:"location"`
}

type ExpenseResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Location   string  `json:"location,omitempty"`
	CategoryID string  `json:"category_id,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    float64           `json:"total"`
}

type CreateCategoryRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateCategoryRequest struct {
	ID          string `json:"id" validate:"required"`
	UserID      string `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Color       string  `json:"color,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
	IsDefault   bool    `json:"is_default"`
	TotalSpent  float64 `json:"total_spent,omitempty"`
}
