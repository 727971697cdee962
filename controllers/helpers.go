package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-reservation-api/repositories"
	"restaurant-reservation-api/utils"
)

// paramID parses a numeric path parameter, responding 400 on garbage.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

// respondRepoError maps repository errors onto HTTP status codes.
func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, repositories.ErrInvalidArgument):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("unexpected repository error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// listParams reads and validates pagination query parameters, responding
// 400 when they are out of range.
func listParams(c *gin.Context) (pageNumber, pageSize int, ok bool) {
	pageNumber, pageSize, err := utils.PaginationParams(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return 0, 0, false
	}
	return pageNumber, pageSize, true
}

// setLocation points the Location header at the freshly created resource.
func setLocation(c *gin.Context, path string, id uint) {
	c.Header("Location", fmt.Sprintf("%s/%d", path, id))
}
