package newsportal

// Pagination describes one page of a filtered result set.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	PageSize    int  `json:"itemsPerPage"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewPagination computes the descriptor for page of size pageSize over
// totalItems items. Page is not validated against bounds.
func NewPagination(page, pageSize, totalItems int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = totalItems / pageSize
		if totalItems%pageSize != 0 {
			totalPages++
		}
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageSize:    pageSize,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// Paginate returns the window [(page-1)*pageSize, page*pageSize) of items,
// which is empty when the page is out of range.
func Paginate[T any](items []T, page, pageSize int) ([]T, Pagination) {
	p := NewPagination(page, pageSize, len(items))
	if page < 1 || pageSize < 1 {
		return []T{}, p
	}

	// compare page indexes first so that (page-1)*pageSize cannot overflow
	if page-1 >= p.TotalPages {
		return []T{}, p
	}

	start := (page - 1) * pageSize

	end := min(start+pageSize, len(items))

	return items[start:end], p
}

// Gap marks elided page numbers in the result of PageNumbers.
const Gap = 0

const maxPlainPages = 7

// PageNumbers lists the page links to show: every page when there are at
// most seven, otherwise the first and last pages, the neighbours of the
// current page, and Gap where pages are skipped.
func (p Pagination) PageNumbers() []int {
	if p.TotalPages <= maxPlainPages {
		pages := make([]int, 0, p.TotalPages)
		for i := 1; i <= p.TotalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages := []int{1}
	if p.CurrentPage > 3 {
		pages = append(pages, Gap)
	}

	start := max(2, p.CurrentPage-1)
	end := min(p.TotalPages-1, p.CurrentPage+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	if p.CurrentPage < p.TotalPages-2 {
		pages = append(pages, Gap)
	}

	return append(pages, p.TotalPages)
}
