package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirenest/admin-console/internal/types"
)

// fakeCompanies is an in-memory company backend with server-side filtering.
type fakeCompanies struct {
	mu        sync.Mutex
	items     []types.Company
	listErr   error
	listCalls int
	started   chan int
	block     map[int]chan struct{}
}

func newFakeCompanies(n int) *fakeCompanies {
	f := &fakeCompanies{}
	for i := 1; i <= n; i++ {
		f.items = append(f.items, types.Company{
			ID:                 fmt.Sprint(i),
			Name:               fmt.Sprintf("Company %02d", i),
			IsActive:           true,
			VerificationStatus: types.VerificationPending,
		})
	}
	return f
}

func (f *fakeCompanies) List(ctx context.Context, params types.ListParams) (types.Page[types.Company], error) {
	if f.started != nil {
		f.started <- params.Page
	}
	f.mu.Lock()
	ch := f.block[params.Page]
	f.mu.Unlock()
	if ch != nil {
		<-ch
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return types.Page[types.Company]{}, f.listErr
	}
	var filtered []types.Company
	for _, c := range f.items {
		if params.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(params.Search)) {
			continue
		}
		if params.Status == types.StatusFilterActive && !c.IsActive {
			continue
		}
		if params.Status == types.StatusFilterInactive && c.IsActive {
			continue
		}
		filtered = append(filtered, c)
	}
	p := types.NewPagination(params.Page, params.Limit, len(filtered))
	start := (params.Page - 1) * params.Limit
	end := min(start+params.Limit, len(filtered))
	if start > len(filtered) {
		start = len(filtered)
	}
	return types.Page[types.Company]{Items: append([]types.Company(nil), filtered[start:end]...), Pagination: p}, nil
}

func (f *fakeCompanies) find(id string) (int, error) {
	for i, c := range f.items {
		if c.ID == id {
			return i, nil
		}
	}
	return -1, errors.New("Job provider not found")
}

func (f *fakeCompanies) Get(ctx context.Context, id string) (types.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, err := f.find(id)
	if err != nil {
		return types.Company{}, err
	}
	return f.items[i], nil
}

func (f *fakeCompanies) ToggleStatus(ctx context.Context, id string, isActive bool) (types.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, err := f.find(id)
	if err != nil {
		return types.Company{}, err
	}
	f.items[i].IsActive = isActive
	return f.items[i], nil
}

func (f *fakeCompanies) Update(ctx context.Context, id string, req types.UpdateCompanyRequest) (types.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, err := f.find(id)
	if err != nil {
		return types.Company{}, err
	}
	if req.Name != nil {
		f.items[i].Name = *req.Name
	}
	return f.items[i], nil
}

func (f *fakeCompanies) SetVerification(ctx context.Context, id string, status types.VerificationStatus) (types.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, err := f.find(id)
	if err != nil {
		return types.Company{}, err
	}
	f.items[i].VerificationStatus = status
	f.items[i].IsVerified = status == types.VerificationApproved
	return f.items[i], nil
}

func (f *fakeCompanies) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, err := f.find(id)
	if err != nil {
		return err
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

func (f *fakeCompanies) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

func findItem(items []types.Company, id string) *types.Company {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// Page 2 of 25 companies at limit 10 carries 10 rows out of 3 pages.
func TestFetchAll_SecondPage(t *testing.T) {
	c := NewCompanies(newFakeCompanies(25), nil)

	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 2, Limit: 10}))

	st := c.Snapshot()
	require.NotNil(t, st.Pagination)
	assert.Equal(t, 3, st.Pagination.TotalPages)
	assert.Len(t, st.Items, 10)
	assert.Equal(t, "11", st.Items[0].ID)
	assert.False(t, st.IsLoading)
}

// Every page carries itemsPerPage rows except the last, which carries the remainder.
func TestFetchAll_PageSizesMatchPagination(t *testing.T) {
	c := NewCompanies(newFakeCompanies(25), nil)

	for page := 1; page <= 3; page++ {
		require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: page, Limit: 10}))
		st := c.Snapshot()
		assert.Len(t, st.Items, st.Pagination.ExpectedItems(), "page %d", page)
	}
	assert.Len(t, c.Snapshot().Items, 5)
}

func TestFetchAll_ServerSideFilters(t *testing.T) {
	fake := newFakeCompanies(25)
	fake.items[3].IsActive = false
	c := NewCompanies(fake, nil)

	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1, Status: types.StatusFilterInactive}))
	st := c.Snapshot()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "4", st.Items[0].ID)
	assert.Equal(t, 1, st.Pagination.TotalItems)
	assert.Equal(t, types.StatusFilterInactive, st.FilterStatus)

	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1, Search: "company 2"}))
	st = c.Snapshot()
	assert.Equal(t, 6, st.Pagination.TotalItems)
	assert.Equal(t, "company 2", st.SearchQuery)
}

func TestFetchAll_FailureKeepsItems(t *testing.T) {
	fake := newFakeCompanies(5)
	c := NewCompanies(fake, nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1}))

	fake.setListErr(errors.New("Request failed with status 500"))
	err := c.FetchAll(context.Background(), types.ListParams{Page: 1})
	require.Error(t, err)

	st := c.Snapshot()
	assert.Len(t, st.Items, 5)
	assert.Equal(t, "Request failed with status 500", st.Error)
	assert.False(t, st.IsLoading)

	c.ClearError()
	assert.Empty(t, c.Snapshot().Error)
}

// An older fetch that completes after a newer one must not overwrite its result.
func TestFetchAll_DiscardsStaleResponse(t *testing.T) {
	fake := newFakeCompanies(25)
	release := make(chan struct{})
	fake.block = map[int]chan struct{}{1: release}
	fake.started = make(chan int, 2)
	c := NewCompanies(fake, nil)

	slow := make(chan error, 1)
	go func() { slow <- c.FetchAll(context.Background(), types.ListParams{Page: 1}) }()
	assert.Equal(t, 1, <-fake.started)

	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 2}))
	<-fake.started
	close(release)

	assert.ErrorIs(t, <-slow, ErrStale)
	st := c.Snapshot()
	assert.Equal(t, 2, st.Pagination.CurrentPage)
	assert.Equal(t, "11", st.Items[0].ID)
	assert.False(t, st.IsLoading)
}

func TestToggleStatus_RefetchShowsFlippedValue(t *testing.T) {
	fake := newFakeCompanies(3)
	c := NewCompanies(fake, nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1}))
	_, err := c.FetchOne(context.Background(), "1")
	require.NoError(t, err)
	callsBefore := fake.listCalls

	updated, err := c.ToggleStatus(context.Background(), "1", false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	st := c.Snapshot()
	assert.Equal(t, callsBefore+1, fake.listCalls)
	listed := findItem(st.Items, "1")
	require.NotNil(t, listed)
	assert.False(t, listed.IsActive)
	require.NotNil(t, st.Selected)
	assert.Equal(t, listed.IsActive, st.Selected.IsActive)
	assert.False(t, st.IsUpdating)
}

func TestToggleStatus_RefetchFailureDoesNotFailMutation(t *testing.T) {
	fake := newFakeCompanies(3)
	c := NewCompanies(fake, nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1}))

	fake.setListErr(errors.New("network down"))
	updated, err := c.ToggleStatus(context.Background(), "2", false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	st := c.Snapshot()
	assert.Equal(t, "network down", st.Error)
	listed := findItem(st.Items, "2")
	require.NotNil(t, listed)
	assert.False(t, listed.IsActive)
}

func TestUpdate_FailureRecordsError(t *testing.T) {
	c := NewCompanies(newFakeCompanies(1), nil)
	name := "Renamed"

	_, err := c.Update(context.Background(), "missing", types.UpdateCompanyRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, "Job provider not found", c.Snapshot().Error)
	assert.False(t, c.Snapshot().IsUpdating)
}

func TestDelete_RemovesItemAndClearsSelected(t *testing.T) {
	fake := newFakeCompanies(12)
	c := NewCompanies(fake, nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1}))
	_, err := c.FetchOne(context.Background(), "3")
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "3"))

	st := c.Snapshot()
	assert.Nil(t, st.Selected)
	assert.Nil(t, findItem(st.Items, "3"))
	assert.Equal(t, 11, st.Pagination.TotalItems)
	assert.Len(t, st.Items, 10)
	assert.False(t, st.IsDeleting)
}

func TestDelete_KeepsOtherSelection(t *testing.T) {
	c := NewCompanies(newFakeCompanies(3), nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1}))
	_, err := c.FetchOne(context.Background(), "1")
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "2"))
	st := c.Snapshot()
	require.NotNil(t, st.Selected)
	assert.Equal(t, "1", st.Selected.ID)
}

func TestSetVerification_ApprovalSetsVerified(t *testing.T) {
	c := NewCompanies(newFakeCompanies(2), nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1}))

	updated, err := c.SetVerification(context.Background(), "2", types.VerificationApproved)
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)

	listed := findItem(c.Snapshot().Items, "2")
	require.NotNil(t, listed)
	assert.Equal(t, types.VerificationApproved, listed.VerificationStatus)
}

func TestMutation_RefetchesLastParams(t *testing.T) {
	c := NewCompanies(newFakeCompanies(25), nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 3, Limit: 10}))

	_, err := c.ToggleStatus(context.Background(), "21", false)
	require.NoError(t, err)

	st := c.Snapshot()
	assert.Equal(t, 3, st.Pagination.CurrentPage)
	assert.Equal(t, 3, c.LastParams().Page)
}

func TestReset(t *testing.T) {
	c := NewCompanies(newFakeCompanies(3), nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1, Search: "x"}))

	c.Reset()
	st := c.Snapshot()
	assert.Empty(t, st.Items)
	assert.Nil(t, st.Pagination)
	assert.Empty(t, st.SearchQuery)
	assert.Equal(t, 1, c.LastParams().Page)
}

// Changing the search or status filter starts over on page 1.
func TestSetSearchQuery_RefetchStartsAtFirstPage(t *testing.T) {
	fake := newFakeCompanies(25)
	fake.items[20].IsActive = false
	c := NewCompanies(fake, nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 2, Limit: 10}))

	c.SetSearchQuery("  company 2 ")
	assert.Equal(t, 1, c.LastParams().Page)
	assert.Equal(t, "company 2", c.LastParams().Search)
	require.NoError(t, c.Refetch(context.Background()))

	st := c.Snapshot()
	assert.Equal(t, "company 2", st.SearchQuery)
	assert.Equal(t, 1, st.Pagination.CurrentPage)
	assert.Equal(t, 6, st.Pagination.TotalItems)
	assert.Len(t, st.Items, 6)

	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 3, Limit: 10}))
	c.SetFilterStatus(types.StatusFilterInactive)
	require.NoError(t, c.Refetch(context.Background()))

	st = c.Snapshot()
	assert.Equal(t, types.StatusFilterInactive, st.FilterStatus)
	assert.Equal(t, 1, st.Pagination.CurrentPage)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "21", st.Items[0].ID)
}

// Loading a single record while a page is in flight leaves the list loading flag alone.
func TestFetchOne_DoesNotClearListLoading(t *testing.T) {
	fake := newFakeCompanies(5)
	release := make(chan struct{})
	fake.block = map[int]chan struct{}{1: release}
	fake.started = make(chan int, 1)
	c := NewCompanies(fake, nil)

	listed := make(chan error, 1)
	go func() { listed <- c.FetchAll(context.Background(), types.ListParams{Page: 1}) }()
	<-fake.started
	assert.True(t, c.Snapshot().IsLoading)

	item, err := c.FetchOne(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	st := c.Snapshot()
	assert.True(t, st.IsLoading)
	assert.False(t, st.IsLoadingSelected)
	require.NotNil(t, st.Selected)

	close(release)
	require.NoError(t, <-listed)
	st = c.Snapshot()
	assert.False(t, st.IsLoading)
	assert.Len(t, st.Items, 5)
}

func TestClearSelected(t *testing.T) {
	c := NewCompanies(newFakeCompanies(3), nil)
	require.NoError(t, c.FetchAll(context.Background(), types.ListParams{Page: 1}))
	_, err := c.FetchOne(context.Background(), "2")
	require.NoError(t, err)
	require.NotNil(t, c.Snapshot().Selected)

	c.ClearSelected()
	st := c.Snapshot()
	assert.Nil(t, st.Selected)
	assert.Len(t, st.Items, 3)
}
