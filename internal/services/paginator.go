package services

import (
	"sort"

	"finledger/internal/models"
)

type filterSortPaginator struct {
	pageSize int
}

// NewFilterSortPaginator creates the pure filter/sort/slice stage. A
// non-positive pageSize falls back to the default history page size.
func NewFilterSortPaginator(pageSize int) FilterSortPaginatorInterface {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	return &filterSortPaginator{pageSize: pageSize}
}

// Sorted returns the filtered, sorted, unpaginated collection. Filtering is the
// conjunction of the active criteria. Sorting is stable, so entries with
// equal keys keep their fetch order; amount sorts compare magnitudes and ignore
// the transaction type.
func (p *filterSortPaginator) Sorted(transactions []models.Transaction, criteria models.FilterCriteria) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if criteria.Matches(&transactions[i]) {
			filtered = append(filtered, transactions[i])
		}
	}

	switch criteria.SortOrDefault() {
	case models.SortAmountDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Amount.GreaterThan(filtered[j].Amount)
		})
	case models.SortAmountAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Amount.LessThan(filtered[j].Amount)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.After(filtered[j].Date)
		})
	}
	return filtered
}

// Apply slices one page out of the filtered, sorted collection. The requested
// page is clamped into [1, totalPages]; the final page may be short and an empty
// collection yields page 1 of 0.
func (p *filterSortPaginator) Apply(transactions []models.Transaction, criteria models.FilterCriteria, page int) models.PageResult {
	sorted := p.Sorted(transactions, criteria)
	totalCount := len(sorted)
	totalPages := (totalCount + p.pageSize - 1) / p.pageSize

	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * p.pageSize
	end := start + p.pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return models.PageResult{
		Transactions: sorted[start:end],
		TotalCount:   totalCount,
		Pagination: models.PaginationState{
			Page:       page,
			PageSize:   p.pageSize,
			TotalPages: totalPages,
		},
	}
}
