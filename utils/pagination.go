package utils

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-reservation-api/models"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 20
)

var ErrInvalidPagination = errors.New("'pageNumber' and 'pageSize' must be greater than 0")

// PaginationParams reads pageNumber/pageSize from the query string,
// applying defaults and clamping the size to MaxPageSize. Values below 1
// are the caller's error, not silently corrected.
func PaginationParams(c *gin.Context) (pageNumber, pageSize int, err error) {
	pageNumber, err = queryInt(c, "pageNumber", DefaultPageNumber)
	if err != nil {
		return 0, 0, ErrInvalidPagination
	}
	pageSize, err = queryInt(c, "pageSize", DefaultPageSize)
	if err != nil {
		return 0, 0, ErrInvalidPagination
	}

	if pageNumber < 1 || pageSize < 1 {
		return 0, 0, ErrInvalidPagination
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageNumber, pageSize, nil
}

// SetPaginationHeader writes the metadata into the X-Pagination header.
func SetPaginationHeader(c *gin.Context, meta models.PaginationMetadata) {
	payload, _ := json.Marshal(meta)
	c.Header("X-Pagination", string(payload))
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
