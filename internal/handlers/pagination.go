package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxPageLimit = 100

type listQuery struct {
	Page    int
	Limit   int
	Offset  int
	Search  string
	Pattern string
}

// parseListQuery normalizes page/limit/search parameters shared by the
// listing endpoints. Page and limit are floored at 1; limit is capped at
// maxPageLimit. The pattern is ready for a lower(...) LIKE comparison.
func parseListQuery(rawPage, rawLimit, rawSearch string, defaultLimit int) listQuery {
	page := 1
	if parsed, err := strconv.Atoi(strings.TrimSpace(rawPage)); err == nil && parsed > 1 {
		page = parsed
	}

	limit := defaultLimit
	if parsed, err := strconv.Atoi(strings.TrimSpace(rawLimit)); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	search := strings.TrimSpace(rawSearch)
	pattern := ""
	if search != "" {
		pattern = "%" + strings.ToLower(search) + "%"
	}

	return listQuery{
		Page:    page,
		Limit:   limit,
		Offset:  (page - 1) * limit,
		Search:  search,
		Pattern: pattern,
	}
}

// listEnvelope builds the pagination response shared by posts and classes.
func listEnvelope(q listQuery, total int, results any) gin.H {
	totalPages := (total + q.Limit - 1) / q.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	return gin.H{
		"page":       q.Page,
		"limit":      q.Limit,
		"total":      total,
		"totalPages": totalPages,
		"hasPrev":    q.Page > 1,
		"hasNext":    q.Page < totalPages,
		"results":    results,
	}
}
