package middleware

import (
	"strconv"

	"errorswag/internal/pagination"
	"errorswag/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	PageKey  = "page"
	LimitKey = "limit"

	maxLimit = 50
)

// ValidatePagination normalizes the page/limit query values before any
// paginated handler runs: non-positive or malformed values fall back to the
// defaults and limit is capped. The calculator itself does no bounds
// checking, so every paginated route must pass through here.
func ValidatePagination() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := utils.StringToInt(c.Query("page"))
		if page < 1 {
			page = pagination.DefaultPage
		}

		limit := utils.StringToInt(c.Query("limit"))
		if limit < 1 {
			limit = pagination.DefaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		c.Set(PageKey, strconv.Itoa(page))
		c.Set(LimitKey, strconv.Itoa(limit))
		c.Next()
	}
}

// PageQuery returns the normalized page/limit values set by
// ValidatePagination.
func PageQuery(c *gin.Context) (page, limit string) {
	return c.GetString(PageKey), c.GetString(LimitKey)
}
