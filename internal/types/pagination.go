package types

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size used by every list screen.
const DefaultPageSize = 10

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewPagination derives the page count for totalItems split into pages of limit.
func NewPagination(page, limit, totalItems int) Pagination {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	totalPages := (totalItems + limit - 1) / limit
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
	}
}

// ExpectedItems returns how many rows the current page should carry.
func (p Pagination) ExpectedItems() int {
	if p.TotalPages == 0 || p.CurrentPage > p.TotalPages || p.CurrentPage < 1 {
		return 0
	}
	if p.CurrentPage < p.TotalPages {
		return p.ItemsPerPage
	}
	return p.TotalItems - (p.TotalPages-1)*p.ItemsPerPage
}

// ListParams are the query parameters of a paginated list request.
// Search and Status are forwarded to the server, which filters before paginating.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// Normalize fills defaults for zero or negative page and limit values.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	p.Search = strings.TrimSpace(p.Search)
	if p.Status == StatusFilterAll {
		p.Status = ""
	}
	return p
}

// Query encodes the parameters as URL query values.
func (p ListParams) Query() url.Values {
	p = p.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

// Envelope is the `{status, data}` wrapper of every backend response.
type Envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// Page is one transformed page of a list endpoint.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// DeleteResponse is returned by DELETE endpoints.
type DeleteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ToggleStatusRequest activates or deactivates an account.
type ToggleStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// Status filter values accepted by list endpoints.
const (
	StatusFilterAll      = "all"
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"
	StatusFilterClosed   = "closed"
)
