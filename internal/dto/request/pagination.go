package request

import "movie-catalog/pkg/utils"

type PaginatedRequest struct {
	Offset int `json:"offset" validate:"min=0"`
	Limit  int `json:"limit" validate:"min=0"`
}

func (p PaginatedRequest) GetOffset() int {
	return utils.ClampOffset(p.Offset)
}

func (p PaginatedRequest) GetLimit() int {
	return utils.ClampLimit(p.Limit)
}
