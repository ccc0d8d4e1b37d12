package models

// ViewState is the query state machine position of the view controller.
type ViewState string

const (
	ViewStateIdle    ViewState = "idle"
	ViewStateLoading ViewState = "loading"
	ViewStateLoaded  ViewState = "loaded"
	ViewStateError   ViewState = "error"
)

// ViewSnapshot is the immutable tuple published to the presentation layer. It is
// replaced wholesale on every state change, so readers never observe a partially
// updated view. Under ViewStateError the last successfully loaded data is kept
// alongside the error message.
type ViewSnapshot struct {
	State         ViewState       `json:"state"`
	Criteria      FilterCriteria  `json:"criteria"`
	Pagination    PaginationState `json:"pagination"`
	Transactions  []Transaction   `json:"transactions"`
	TotalCount    int             `json:"total_count"`
	CategoryStats []CategoryStats `json:"category_stats"`
	IncomeChart   []ChartSlice    `json:"income_chart"`
	ExpenseChart  []ChartSlice    `json:"expense_chart"`
	Statistics    *Statistics     `json:"statistics,omitempty"`
	Calendar      CalendarIndex   `json:"calendar"`
	Budgets       []BudgetSummary `json:"budgets"`
	Categories    []Category      `json:"categories"`
	Err           string          `json:"error,omitempty"`
}
