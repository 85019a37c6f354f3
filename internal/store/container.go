// Package store holds the per-resource state containers of the console. Each
// container owns its list, selected record and pagination, and re-fetches the
// current page after every successful mutation.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hirenest/admin-console/internal/types"
)

// Entity is a view model with a stable id.
type Entity interface {
	EntityID() string
}

// Resource is the API surface a ListContainer drives. P is the partial update payload.
type Resource[T Entity, P any] interface {
	List(ctx context.Context, params types.ListParams) (types.Page[T], error)
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

// StatusToggler is implemented by resources whose records can be activated and
// deactivated.
type StatusToggler[T Entity] interface {
	ToggleStatus(ctx context.Context, id string, isActive bool) (T, error)
}

// ErrStale is returned by FetchAll when a newer fetch was issued before this one
// completed. The container state was left untouched.
var ErrStale = errors.New("stale list response discarded")

// ErrToggleUnsupported is returned when the resource cannot toggle status.
var ErrToggleUnsupported = errors.New("resource does not support status toggling")

// State is a snapshot of a container. IsLoading tracks list fetches and
// IsLoadingSelected tracks FetchOne.
type State[T Entity] struct {
	Items             []T
	Selected          *T
	Pagination        *types.Pagination
	IsLoading         bool
	IsLoadingSelected bool
	IsUpdating        bool
	IsDeleting        bool
	Error             string
	SearchQuery       string
	FilterStatus      string
}

// ListContainer is the shared list/selected/pagination container.
type ListContainer[T Entity, P any] struct {
	name     string
	resource Resource[T, P]
	logger   *zap.Logger

	mu         sync.Mutex
	items      []T
	selected   *T
	pagination *types.Pagination
	loading    bool
	loadingOne bool
	updating   bool
	deleting   bool
	err        string
	search     string
	status     string
	lastParams types.ListParams
	latest     uint64
}

// NewListContainer creates a container named after its resource (used in logs).
func NewListContainer[T Entity, P any](name string, resource Resource[T, P], logger *zap.Logger) *ListContainer[T, P] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListContainer[T, P]{
		name:       name,
		resource:   resource,
		logger:     logger.With(zap.String("container", name)),
		lastParams: types.ListParams{Page: 1, Limit: types.DefaultPageSize},
	}
}

// Snapshot returns a copy of the current state.
func (c *ListContainer[T, P]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := State[T]{
		Items:             append([]T(nil), c.items...),
		IsLoading:         c.loading,
		IsLoadingSelected: c.loadingOne,
		IsUpdating:        c.updating,
		IsDeleting:        c.deleting,
		Error:             c.err,
		SearchQuery:       c.search,
		FilterStatus:      c.status,
	}
	if c.selected != nil {
		sel := *c.selected
		st.Selected = &sel
	}
	if c.pagination != nil {
		p := *c.pagination
		st.Pagination = &p
	}
	return st
}

// LastParams returns the parameters of the most recently issued fetch.
func (c *ListContainer[T, P]) LastParams() types.ListParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastParams
}

// FetchAll loads one page. Only the response to the latest issued fetch is applied;
// earlier responses return ErrStale. On failure the previous items are kept.
func (c *ListContainer[T, P]) FetchAll(ctx context.Context, params types.ListParams) error {
	params = params.Normalize()

	c.mu.Lock()
	c.latest++
	token := c.latest
	c.loading = true
	c.err = ""
	c.lastParams = params
	c.search = params.Search
	c.status = params.Status
	c.mu.Unlock()

	page, err := c.resource.List(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.latest {
		c.logger.Debug("discarding stale list response", zap.Uint64("token", token), zap.Uint64("latest", c.latest))
		return ErrStale
	}
	c.loading = false
	if err != nil {
		c.err = err.Error()
		c.logger.Warn("list fetch failed", zap.Int("page", params.Page), zap.Error(err))
		return err
	}
	c.items = page.Items
	p := page.Pagination
	c.pagination = &p
	return nil
}

// Refetch reloads the page of the last issued fetch.
func (c *ListContainer[T, P]) Refetch(ctx context.Context) error {
	return c.FetchAll(ctx, c.LastParams())
}

// FetchOne loads a record into Selected. It reports progress in
// IsLoadingSelected and leaves the list loading flag to FetchAll.
func (c *ListContainer[T, P]) FetchOne(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	c.loadingOne = true
	c.err = ""
	c.mu.Unlock()

	item, err := c.resource.Get(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadingOne = false
	if err != nil {
		c.err = err.Error()
		return item, err
	}
	c.selected = &item
	return item, nil
}

// ToggleStatus activates or deactivates a record, then re-fetches the current page.
func (c *ListContainer[T, P]) ToggleStatus(ctx context.Context, id string, isActive bool) (T, error) {
	toggler, ok := c.resource.(StatusToggler[T])
	if !ok {
		var zero T
		return zero, ErrToggleUnsupported
	}
	return c.Apply(ctx, id, func(ctx context.Context) (T, error) {
		return toggler.ToggleStatus(ctx, id, isActive)
	})
}

// Update applies a partial update, then re-fetches the current page.
func (c *ListContainer[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	return c.Apply(ctx, id, func(ctx context.Context) (T, error) {
		return c.resource.Update(ctx, id, patch)
	})
}

// Apply runs a mutation that returns the updated record. The record replaces the
// list entry and Selected (when it has the same id) and the current page is
// re-fetched. A failed re-fetch is recorded in Error but does not fail the mutation.
func (c *ListContainer[T, P]) Apply(ctx context.Context, id string, mutate func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	c.updating = true
	c.err = ""
	c.mu.Unlock()

	updated, err := mutate(ctx)

	c.mu.Lock()
	c.updating = false
	if err != nil {
		c.err = err.Error()
		c.mu.Unlock()
		return updated, err
	}
	c.replaceLocked(id, updated)
	c.mu.Unlock()

	c.refetchAfterMutation(ctx)
	return updated, nil
}

// Delete removes a record, clears Selected when it was the deleted record and
// re-fetches the current page.
func (c *ListContainer[T, P]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	c.deleting = true
	c.err = ""
	c.mu.Unlock()

	err := c.resource.Delete(ctx, id)

	c.mu.Lock()
	c.deleting = false
	if err != nil {
		c.err = err.Error()
		c.mu.Unlock()
		return err
	}
	kept := c.items[:0:0]
	for _, it := range c.items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	if c.selected != nil && (*c.selected).EntityID() == id {
		c.selected = nil
	}
	c.mu.Unlock()

	c.refetchAfterMutation(ctx)
	return nil
}

func (c *ListContainer[T, P]) replaceLocked(id string, updated T) {
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items[i] = updated
		}
	}
	if c.selected != nil && (*c.selected).EntityID() == id {
		sel := updated
		c.selected = &sel
	}
}

func (c *ListContainer[T, P]) refetchAfterMutation(ctx context.Context) {
	err := c.Refetch(ctx)
	if err != nil && !errors.Is(err, ErrStale) {
		c.logger.Warn("refetch after mutation failed", zap.Error(err))
	}
}

// SetSearchQuery sets the search text used by the next Refetch and moves back to
// the first page.
func (c *ListContainer[T, P]) SetSearchQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = strings.TrimSpace(q)
	c.lastParams.Search = c.search
	c.lastParams.Page = 1
}

// SetFilterStatus sets the status filter used by the next Refetch and moves back
// to the first page.
func (c *ListContainer[T, P]) SetFilterStatus(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = s
	c.lastParams.Status = s
	c.lastParams.Page = 1
}

// ClearError dismisses the last error.
func (c *ListContainer[T, P]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = ""
}

// ClearSelected drops the selected record.
func (c *ListContainer[T, P]) ClearSelected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// Reset returns the container to its initial state. In-flight fetches become stale.
func (c *ListContainer[T, P]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.selected = nil
	c.pagination = nil
	c.loading, c.loadingOne, c.updating, c.deleting = false, false, false, false
	c.err = ""
	c.search, c.status = "", ""
	c.lastParams = types.ListParams{Page: 1, Limit: types.DefaultPageSize}
	c.latest++
}
