// Package listing implements the shared pagination and filter engine used by
// every collection endpoint: query-string parsing with defaults, declared
// filter maps turned into predicates, and deterministic page metadata.
package listing

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultPage is used when the page parameter is absent or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or invalid.
	DefaultLimit = 10
	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// PageRequest is the bounds of one requested page.
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePageRequest derives a PageRequest from query parameters. Invalid or
// missing values fall back to defaults rather than erroring.
func ParsePageRequest(query url.Values) PageRequest {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the number of records preceding the requested page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Pagination describes a returned page relative to the full matching set.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	Offset      int   `json:"offset"`
	Total       int64 `json:"total"`
	TotalPage   int64 `json:"totalPage"`
}

// NewPagination computes page metadata for a request against total matching
// records. An empty set yields totalPage 0, not 1.
func NewPagination(req PageRequest, total int64) Pagination {
	var totalPage int64
	if total > 0 {
		totalPage = (total + int64(req.Limit) - 1) / int64(req.Limit)
	}

	return Pagination{
		CurrentPage: req.Page,
		Limit:       req.Limit,
		Offset:      req.Offset(),
		Total:       total,
		TotalPage:   totalPage,
	}
}

// FieldSpec maps one accepted query parameter onto the field path it
// constrains. Date-valued fields match a half-open calendar-day range
// instead of exact equality.
type FieldSpec struct {
	Path string
	Date bool
}

// FilterMap is the declared association from accepted query-parameter names
// to the field paths they constrain. Parameters absent from the map are
// silently ignored, which keeps query strings forward-compatible.
type FilterMap map[string]FieldSpec

// Op is a predicate operator.
type Op int

const (
	// OpEq matches records whose field equals the value exactly.
	OpEq Op = iota
	// OpRange matches records whose field is in [Value, Upper).
	OpRange
	// OpIn matches records whose field equals any element of Values.
	OpIn
)

// Condition is one predicate clause over a field path. Paths only ever come
// from declared FilterMaps or component constants, never from client input.
type Condition struct {
	Path   string
	Op     Op
	Value  any
	Upper  any
	Values []any
}

// Predicate is the conjunction of its conditions; an empty predicate matches
// everything.
type Predicate []Condition

// Eq builds an exact-match condition.
func Eq(path string, value any) Condition {
	return Condition{Path: path, Op: OpEq, Value: value}
}

// In builds a membership condition.
func In(path string, values ...any) Condition {
	return Condition{Path: path, Op: OpIn, Values: values}
}

// BuildPredicate turns the declared filters present in query into a
// predicate. A date-valued filter expects a calendar date (2006-01-02) and
// matches the whole day; unparseable dates are ignored like unknown keys.
func BuildPredicate(query url.Values, filters FilterMap) Predicate {
	var pred Predicate

	for param, spec := range filters {
		raw := query.Get(param)
		if raw == "" {
			continue
		}

		if spec.Date {
			day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
			if err != nil {
				continue
			}
			pred = append(pred, Condition{
				Path:  spec.Path,
				Op:    OpRange,
				Value: day,
				Upper: day.AddDate(0, 0, 1),
			})
			continue
		}

		pred = append(pred, Eq(spec.Path, raw))
	}

	return pred
}

// Sort is a component-declared default ordering for a collection.
type Sort struct {
	Path string
	Desc bool
}

// NewestFirst orders by creation time, most recent first.
var NewestFirst = Sort{Path: "created_at", Desc: true}

// Collection is the abstract query interface the engine runs against. The
// data collaborator implements it; errors propagate untouched to the error
// normalization layer.
type Collection[T any] interface {
	Find(ctx context.Context, pred Predicate, offset, limit int, sort Sort) ([]T, error)
	Count(ctx context.Context, pred Predicate) (int64, error)
}

// Page is one bounded, deterministic page of results plus its metadata.
type Page[T any] struct {
	Result     []T
	Pagination Pagination
}

// Paginate executes one listing request: parse paging parameters, build the
// predicate from the declared filter map (plus any fixed base conditions the
// caller scopes the listing with), count the full matching set, and fetch
// the requested page. Result is never nil.
func Paginate[T any](
	ctx context.Context,
	query url.Values,
	coll Collection[T],
	filters FilterMap,
	sort Sort,
	base ...Condition,
) (*Page[T], error) {
	req := ParsePageRequest(query)

	pred := append(Predicate(base), BuildPredicate(query, filters)...)

	total, err := coll.Count(ctx, pred)
	if err != nil {
		return nil, err
	}

	result, err := coll.Find(ctx, pred, req.Offset(), req.Limit, sort)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []T{}
	}

	return &Page[T]{
		Result:     result,
		Pagination: NewPagination(req, total),
	}, nil
}
