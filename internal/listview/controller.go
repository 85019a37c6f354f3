// Package listview implements the paginated list screens: page, search and status
// state, the page-number strip and the summary line, plus the detail panel helpers
// that turn edited fields into partial updates.
package listview

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hirenest/admin-console/internal/types"
)

// PageSize is the row count of every list screen.
const PageSize = types.DefaultPageSize

// Fetcher loads a page into a state container.
type Fetcher interface {
	FetchAll(ctx context.Context, params types.ListParams) error
}

// Controller owns the page, search text and status filter of one list screen.
type Controller struct {
	fetcher  Fetcher
	pageSize int
	onScroll func()

	mu     sync.Mutex
	page   int
	search string
	status string
}

// Option customises a Controller.
type Option func(*Controller)

// WithPageSize overrides the page size.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithScrollHook sets the callback run on every page change.
func WithScrollHook(fn func()) Option {
	return func(c *Controller) { c.onScroll = fn }
}

// NewController binds a controller to a container.
func NewController(f Fetcher, opts ...Option) *Controller {
	c := &Controller{fetcher: f, pageSize: PageSize, page: 1, status: types.StatusFilterAll}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Page returns the current page.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Params returns the list parameters for the current state.
func (c *Controller) Params() types.ListParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paramsLocked()
}

func (c *Controller) paramsLocked() types.ListParams {
	return types.ListParams{Page: c.page, Limit: c.pageSize, Search: c.search, Status: c.status}
}

// Preset sets the page, search text and status filter without fetching, so a
// screen opened with saved state issues a single request on Load.
func (c *Controller) Preset(page int, search, status string) {
	if page < 1 {
		page = 1
	}
	if status == "" {
		status = types.StatusFilterAll
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
	c.search = strings.TrimSpace(search)
	c.status = status
}

// Load fetches the current page.
func (c *Controller) Load(ctx context.Context) error {
	return c.fetcher.FetchAll(ctx, c.Params())
}

// SetSearch changes the search text, resets to page 1 and fetches.
func (c *Controller) SetSearch(ctx context.Context, q string) error {
	c.mu.Lock()
	c.search = strings.TrimSpace(q)
	c.page = 1
	params := c.paramsLocked()
	c.mu.Unlock()
	return c.fetcher.FetchAll(ctx, params)
}

// SetStatus changes the status filter, resets to page 1 and fetches.
func (c *Controller) SetStatus(ctx context.Context, status string) error {
	if status == "" {
		status = types.StatusFilterAll
	}
	c.mu.Lock()
	c.status = status
	c.page = 1
	params := c.paramsLocked()
	c.mu.Unlock()
	return c.fetcher.FetchAll(ctx, params)
}

// GoTo changes page, runs the scroll hook and fetches.
func (c *Controller) GoTo(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	params := c.paramsLocked()
	c.mu.Unlock()
	if c.onScroll != nil {
		c.onScroll()
	}
	return c.fetcher.FetchAll(ctx, params)
}

// PageItem is one entry of the page strip: a page number or an ellipsis.
type PageItem struct {
	Page     int
	Ellipsis bool
}

func (p PageItem) String() string {
	if p.Ellipsis {
		return "..."
	}
	return fmt.Sprint(p.Page)
}

const maxPlainPages = 7

// PageStrip lists the page buttons for current out of total. Up to seven pages are
// all shown; beyond that the first and last pages frame a window around current,
// with an ellipsis wherever pages are skipped.
func PageStrip(current, total int) []PageItem {
	if total <= 0 {
		return nil
	}
	current = max(1, min(current, total))
	if total <= maxPlainPages {
		items := make([]PageItem, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, PageItem{Page: p})
		}
		return items
	}

	items := []PageItem{{Page: 1}}
	if current-1 > 2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	for p := max(2, current-1); p <= min(total-1, current+1); p++ {
		items = append(items, PageItem{Page: p})
	}
	if current+1 < total-1 {
		items = append(items, PageItem{Ellipsis: true})
	}
	return append(items, PageItem{Page: total})
}

// Summary renders "Showing A to B of N <noun>". A page past the last one shows
// an empty range.
func Summary(p types.Pagination, noun string) string {
	size := p.ItemsPerPage
	if size <= 0 {
		size = PageSize
	}
	page := max(p.CurrentPage, 1)
	from := (page-1)*size + 1
	if p.TotalItems <= 0 || from > p.TotalItems {
		return fmt.Sprintf("Showing 0 to 0 of %d %s", max(p.TotalItems, 0), noun)
	}
	to := min(page*size, p.TotalItems)
	return fmt.Sprintf("Showing %d to %d of %d %s", from, to, p.TotalItems, noun)
}
