package pagination

import (
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination converts a requested page/limit pair into query offsets and
// navigation metadata. Malformed numeric input falls back to the defaults;
// bounds checking (page >= 1, limit cap) is the caller's job, see
// middleware.ValidatePagination.
type Pagination struct {
	page  int
	limit int
}

// PageMetadata describes the pagination envelope returned alongside lists.
// Prev and Next are nil at the respective ends of the range.
type PageMetadata struct {
	Prev        *string `json:"prev"`
	CurrentPage int     `json:"currentPage"`
	Next        *string `json:"next"`
	TotalPages  int     `json:"totalPages"`
	TotalItems  int64   `json:"totalItems"`
}

// New coerces the raw query values to integers, defaulting page to 1 and
// limit to 10 when they do not parse.
func New(page, limit string) *Pagination {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = DefaultPage
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		l = DefaultLimit
	}
	return &Pagination{page: p, limit: l}
}

// QueryMetadata returns the limit/offset pair for the persistence query.
// No lower bound is applied here; offset goes negative for page < 1.
func (p *Pagination) QueryMetadata() (limit, offset int) {
	return p.limit, p.limit * (p.page - 1)
}

// PageMetadata builds the navigation block for totalItems matches.
// extraQuery is inserted verbatim before "page=", the caller supplies its
// own trailing separator.
func (p *Pagination) PageMetadata(totalItems int64, baseURL, extraQuery string) PageMetadata {
	totalPages := int(math.Ceil(float64(totalItems) / float64(p.limit)))

	var prev, next *string
	if p.page > 1 {
		u := fmt.Sprintf("%s?%spage=%d&limit=%d", baseURL, extraQuery, p.page-1, p.limit)
		prev = &u
	}
	if p.page < totalPages {
		u := fmt.Sprintf("%s?%spage=%d&limit=%d", baseURL, extraQuery, p.page+1, p.limit)
		next = &u
	}

	return PageMetadata{
		Prev:        prev,
		CurrentPage: p.page,
		Next:        next,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	}
}
