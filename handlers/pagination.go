package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"artcrm/pagination"
)

// pageOf applies the optional ?page= parameter to a result list.
// Without the parameter the full list is returned, which is what the
// legacy clients expect; with it, the fixed 4-row page is served and
// out-of-range pages clamp to the last one.
func pageOf[T any](c *gin.Context, rows []T) []T {
	pageStr := c.Query("page")
	if pageStr == "" {
		return rows
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = 1
	}

	return pagination.Page(rows, page, pagination.DefaultPageSize)
}
