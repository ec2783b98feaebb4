package dto

// PageInfo describes where a page sits in the full result set.
// Page is 1-based. TotalPages is never below 1, even for an empty result.
type PageInfo struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"25"`
	TotalPages int   `json:"totalPages" example:"3"`
}

// Pagination is a generic pagination envelope for list results
// T is the element type of the Data slice
type Pagination[T any] struct {
	Data       []T      `json:"data"`
	Pagination PageInfo `json:"pagination"`
}

// NewPagination builds the envelope and derives TotalPages from total and limit.
func NewPagination[T any](data []T, page, limit int, total int64) Pagination[T] {
	if data == nil {
		data = []T{}
	}
	return Pagination[T]{
		Data: data,
		Pagination: PageInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: TotalPages(total, limit),
		},
	}
}

// TotalPages returns ceil(total/limit), at least 1.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	n := int((total + int64(limit) - 1) / int64(limit))
	if n < 1 {
		return 1
	}
	return n
}

// PaginationBlogDTO is a concrete swagger-friendly type for paginated blogs response
// swagger:model PaginationBlogDTO
type PaginationBlogDTO struct {
	Data       []BlogDTO `json:"data"`
	Pagination PageInfo  `json:"pagination"`
}
