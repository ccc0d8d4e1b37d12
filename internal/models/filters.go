package models

// Sort keys for the transaction history view.
const (
	SortDateDesc   = "date"
	SortAmountDesc = "highest"
	SortAmountAsc  = "lowest"
)

func IsValidSortKey(key string) bool {
	return key == SortDateDesc || key == SortAmountDesc || key == SortAmountAsc
}

// DefaultPageSize matches the history table of the presentation layer.
const DefaultPageSize = 10

// FilterCriteria fully determines a transaction query. Empty fields impose no
// constraint; all set fields must match (conjunction).
type FilterCriteria struct {
	Type       string `json:"type,omitempty"`
	CategoryID int64  `json:"category,omitempty"`
	StartDate  *Date  `json:"start_date,omitempty"`
	EndDate    *Date  `json:"end_date,omitempty"`
	Sort       string `json:"sort,omitempty"`
}

// SortOrDefault returns the criteria's sort key, falling back to the newest-first
// date order the history view opens with.
func (c FilterCriteria) SortOrDefault() string {
	if c.Sort == "" {
		return SortDateDesc
	}
	return c.Sort
}

// Equal reports whether two criteria describe the same query.
func (c FilterCriteria) Equal(other FilterCriteria) bool {
	if c.Type != other.Type || c.CategoryID != other.CategoryID {
		return false
	}
	if c.SortOrDefault() != other.SortOrDefault() {
		return false
	}
	return datePtrEqual(c.StartDate, other.StartDate) && datePtrEqual(c.EndDate, other.EndDate)
}

// Matches reports whether the transaction satisfies every specified criterion.
// The sort key is ordering, not a predicate. Date bounds are inclusive; when the
// range is inverted no transaction can match.
func (c FilterCriteria) Matches(t *Transaction) bool {
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	if c.CategoryID != 0 && t.CategoryID != c.CategoryID {
		return false
	}
	if c.StartDate != nil && t.Date.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && t.Date.After(*c.EndDate) {
		return false
	}
	return true
}

func datePtrEqual(a, b *Date) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// PaginationState tracks the 1-based current page over a fixed page size.
type PaginationState struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// PageResult is one page sliced out of a filtered, sorted collection.
type PageResult struct {
	Transactions []Transaction   `json:"transactions"`
	TotalCount   int             `json:"total_count"`
	Pagination   PaginationState `json:"pagination"`
}
