package listing

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCollection serves a fixed record set and remembers the last query it
// received.
type fakeCollection struct {
	records []int
	err     error

	lastPred   Predicate
	lastOffset int
	lastLimit  int
	lastSort   Sort
}

func (f *fakeCollection) Find(_ context.Context, pred Predicate, offset, limit int, sort Sort) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPred = pred
	f.lastOffset = offset
	f.lastLimit = limit
	f.lastSort = sort

	if offset >= len(f.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[offset:end], nil
}

func (f *fakeCollection) Count(_ context.Context, pred Predicate) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.records)), nil
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func query(raw string) url.Values {
	v, _ := url.ParseQuery(raw)
	return v
}

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&limit=25", 3, 25},
		{"zero page", "page=0", 1, 10},
		{"negative page", "page=-2", 1, 10},
		{"non-numeric page", "page=abc", 1, 10},
		{"zero limit", "limit=0", 1, 10},
		{"limit above cap", "limit=500", 1, 100},
		{"limit at cap", "limit=100", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParsePageRequest(query(tt.query))
			assert.Equal(t, tt.page, req.Page)
			assert.Equal(t, tt.limit, req.Limit)
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		req       PageRequest
		total     int64
		offset    int
		totalPage int64
	}{
		{"18 items at 5 per page", PageRequest{Page: 2, Limit: 5}, 18, 5, 4},
		{"exact multiple", PageRequest{Page: 1, Limit: 10}, 20, 0, 2},
		{"single partial page", PageRequest{Page: 1, Limit: 10}, 3, 0, 1},
		{"empty set", PageRequest{Page: 1, Limit: 10}, 0, 0, 0},
		{"page past the end", PageRequest{Page: 9, Limit: 10}, 18, 80, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.req, tt.total)
			assert.Equal(t, tt.req.Page, p.CurrentPage)
			assert.Equal(t, tt.req.Limit, p.Limit)
			assert.Equal(t, tt.offset, p.Offset)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.totalPage, p.TotalPage)
		})
	}
}

func TestBuildPredicate(t *testing.T) {
	filters := FilterMap{
		"role": {Path: "role"},
		"date": {Path: "created_at", Date: true},
	}

	t.Run("declared equality filter", func(t *testing.T) {
		pred := BuildPredicate(query("role=ADMIN"), filters)
		require.Len(t, pred, 1)
		assert.Equal(t, "role", pred[0].Path)
		assert.Equal(t, OpEq, pred[0].Op)
		assert.Equal(t, "ADMIN", pred[0].Value)
	})

	t.Run("unknown parameters ignored", func(t *testing.T) {
		pred := BuildPredicate(query("verified=true&admin=1&sort=email"), filters)
		assert.Empty(t, pred)
	})

	t.Run("date filter covers the whole day", func(t *testing.T) {
		pred := BuildPredicate(query("date=2026-08-29"), filters)
		require.Len(t, pred, 1)
		assert.Equal(t, OpRange, pred[0].Op)

		day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, day, pred[0].Value)
		assert.Equal(t, day.AddDate(0, 0, 1), pred[0].Upper)
	})

	t.Run("unparseable date ignored", func(t *testing.T) {
		pred := BuildPredicate(query("date=yesterday"), filters)
		assert.Empty(t, pred)
	})

	t.Run("empty value ignored", func(t *testing.T) {
		pred := BuildPredicate(query("role="), filters)
		assert.Empty(t, pred)
	})
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()
	filters := FilterMap{"status": {Path: "status"}}

	t.Run("middle page of 18 items", func(t *testing.T) {
		coll := &fakeCollection{records: sequence(18)}

		page, err := Paginate(ctx, query("page=2&limit=5"), coll, filters, NewestFirst)
		require.NoError(t, err)

		assert.Equal(t, []int{6, 7, 8, 9, 10}, page.Result)
		assert.Equal(t, 2, page.Pagination.CurrentPage)
		assert.Equal(t, 5, page.Pagination.Limit)
		assert.Equal(t, 5, page.Pagination.Offset)
		assert.Equal(t, int64(18), page.Pagination.Total)
		assert.Equal(t, int64(4), page.Pagination.TotalPage)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		coll := &fakeCollection{records: sequence(18)}

		page, err := Paginate(ctx, query("page=9&limit=5"), coll, filters, NewestFirst)
		require.NoError(t, err)
		assert.NotNil(t, page.Result)
		assert.Empty(t, page.Result)
		assert.Equal(t, int64(18), page.Pagination.Total)
	})

	t.Run("empty collection yields empty slice and totalPage zero", func(t *testing.T) {
		coll := &fakeCollection{}

		page, err := Paginate(ctx, query(""), coll, filters, NewestFirst)
		require.NoError(t, err)
		assert.NotNil(t, page.Result)
		assert.Empty(t, page.Result)
		assert.Equal(t, int64(0), page.Pagination.TotalPage)
	})

	t.Run("repeating the request returns the same page", func(t *testing.T) {
		coll := &fakeCollection{records: sequence(18)}
		q := query("page=3&limit=5&status=OPEN")

		first, err := Paginate(ctx, q, coll, filters, NewestFirst)
		require.NoError(t, err)
		second, err := Paginate(ctx, q, coll, filters, NewestFirst)
		require.NoError(t, err)

		assert.Equal(t, first.Result, second.Result)
		assert.Equal(t, first.Pagination, second.Pagination)
	})

	t.Run("base conditions precede declared filters", func(t *testing.T) {
		coll := &fakeCollection{records: sequence(3)}

		_, err := Paginate(ctx, query("status=OPEN"), coll, filters, NewestFirst,
			Eq("vendor_id", "64f1b2c3d4e5f60718293a4b"))
		require.NoError(t, err)

		require.Len(t, coll.lastPred, 2)
		assert.Equal(t, "vendor_id", coll.lastPred[0].Path)
		assert.Equal(t, "status", coll.lastPred[1].Path)
	})

	t.Run("sort is passed through", func(t *testing.T) {
		coll := &fakeCollection{records: sequence(3)}

		_, err := Paginate(ctx, query(""), coll, filters, NewestFirst)
		require.NoError(t, err)
		assert.Equal(t, NewestFirst, coll.lastSort)
	})

	t.Run("collection errors propagate untouched", func(t *testing.T) {
		boom := errors.New("connection reset")
		coll := &fakeCollection{err: boom}

		page, err := Paginate(ctx, query(""), coll, filters, NewestFirst)
		assert.Nil(t, page)
		assert.ErrorIs(t, err, boom)
	})
}
