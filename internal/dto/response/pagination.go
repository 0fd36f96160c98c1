package response

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta
type PaginationMeta struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Count  int   `json:"count"`
	Total  int64 `json:"total"`
}

func NewPaginatedResponse[T any](data []T, offset, limit int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Offset: offset,
			Limit:  limit,
			Count:  len(data),
			Total:  total,
		},
	}
}
