package dto

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageParams struct {
	Page  int
	Limit int
}

// NewPageParams normaliza page/limit: page < 1 vira 1, limit fora de
// (0, MaxLimit] volta para o padrão.
func NewPageParams(page, limit int) PageParams {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return PageParams{Page: page, Limit: limit}
}

func ParsePageParams(pageStr, limitStr string) PageParams {
	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)
	return NewPageParams(page, limit)
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func NewPage[T any](data []T, total int64, p PageParams) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Total: total, Page: p.Page, Limit: p.Limit}
}
