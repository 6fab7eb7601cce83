package domain

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 3
	MaxPageSize     = 100
)

// PageRequest - номер страницы (с 1) и её размер
type PageRequest struct {
	Page     int
	PageSize int
}

// Validate проверяет границы страницы. Смещение (Page-1)*PageSize должно помещаться в int
func (p PageRequest) Validate() error {
	if p.Page < 1 || p.PageSize < 1 || p.PageSize > MaxPageSize {
		return ErrInvalidPagination
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return ErrInvalidPagination
	}
	return nil
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Pagination - метаданные страницы выдачи
type Pagination struct {
	TotalRecords int64
	TotalPages   int
	CurrentPage  int
	HasNext      bool
	HasPrev      bool
}

// NewPagination считает метаданные: total_pages = ceil(total / page_size)
func NewPagination(req PageRequest, total int64) Pagination {
	size := int64(req.PageSize)
	totalPages := int((total + size - 1) / size)

	return Pagination{
		TotalRecords: total,
		TotalPages:   totalPages,
		CurrentPage:  req.Page,
		HasNext:      req.Page < totalPages,
		HasPrev:      req.Page > 1,
	}
}

// Page - страница выдачи
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
