package models

// PaginationMetadata describes a result page's position within the full
// filtered set. It is serialized into the X-Pagination response header.
type PaginationMetadata struct {
	TotalItemCount int `json:"totalItemCount"`
	TotalPageCount int `json:"totalPageCount"`
	PageSize       int `json:"pageSize"`
	CurrentPage    int `json:"currentPage"`
}

func NewPaginationMetadata(totalItemCount, pageSize, currentPage int) PaginationMetadata {
	totalPageCount := 0
	if pageSize > 0 {
		totalPageCount = (totalItemCount + pageSize - 1) / pageSize
	}
	return PaginationMetadata{
		TotalItemCount: totalItemCount,
		TotalPageCount: totalPageCount,
		PageSize:       pageSize,
		CurrentPage:    currentPage,
	}
}
