package mongo

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wildtrails/tours-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 100
)

// comparisonKey matches keys of the form field[gte], field[gt], field[lte],
// field[lt] as produced by clients following the original query convention.
var comparisonKey = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)\[(gte|gt|lte|lt)\]$`)

// reservedParams are consumed by the builder itself and never become filters.
var reservedParams = map[string]struct{}{
	"page":   {},
	"sort":   {},
	"limit":  {},
	"fields": {},
}

// QueryFeatures composes filter, sort, field projection and pagination onto a
// find query from raw request parameters. The stages must be applied in the
// order Filter, Sort, LimitFields, Paginate; each returns the receiver for
// chaining and Build materializes the result.
type QueryFeatures struct {
	params     ports.ListQuery
	filter     bson.M
	sort       bson.D
	projection bson.D
	skip       int64
	limit      int64
}

func NewQueryFeatures(params ports.ListQuery) *QueryFeatures {
	return &QueryFeatures{params: params, filter: bson.M{}}
}

// Filter translates every non-reserved parameter into a match condition.
// Comparison suffixes are rewritten onto their field ({price: {$gte: 100}});
// everything else becomes an equality filter.
func (f *QueryFeatures) Filter() *QueryFeatures {
	for key, value := range f.params {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		if m := comparisonKey.FindStringSubmatch(key); m != nil {
			field, op := m[1], "$"+m[2]
			cond, ok := f.filter[field].(bson.M)
			if !ok {
				cond = bson.M{}
				f.filter[field] = cond
			}
			cond[op] = coerceValue(value)
			continue
		}
		f.filter[key] = coerceValue(value)
	}
	return f
}

// Sort applies a comma-separated sort list; a leading '-' selects descending.
// Defaults to newest first.
func (f *QueryFeatures) Sort() *QueryFeatures {
	raw := f.params["sort"]
	if raw == "" {
		f.sort = bson.D{{Key: "created_at", Value: -1}}
		return f
	}
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		order := 1
		if strings.HasPrefix(field, "-") {
			order = -1
			field = field[1:]
		}
		f.sort = append(f.sort, bson.E{Key: field, Value: order})
	}
	return f
}

// LimitFields applies a comma-separated projection list. The _id field is
// suppressed unless explicitly requested; with no list all fields are kept.
func (f *QueryFeatures) LimitFields() *QueryFeatures {
	raw := f.params["fields"]
	if raw == "" {
		return f
	}
	idRequested := false
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if field == "_id" {
			idRequested = true
		}
		f.projection = append(f.projection, bson.E{Key: field, Value: 1})
	}
	if !idRequested && len(f.projection) > 0 {
		f.projection = append(f.projection, bson.E{Key: "_id", Value: 0})
	}
	return f
}

// Paginate computes skip/limit from the page and limit parameters.
func (f *QueryFeatures) Paginate() *QueryFeatures {
	page := positiveInt(f.params["page"], defaultPage)
	limit := positiveInt(f.params["limit"], defaultLimit)
	f.skip = int64(page-1) * int64(limit)
	f.limit = int64(limit)
	return f
}

// Build returns the accumulated match filter and find options. The filter map
// may be extended by the caller with repository-owned conditions.
func (f *QueryFeatures) Build() (bson.M, *options.FindOptions) {
	opts := options.Find()
	if len(f.sort) > 0 {
		opts.SetSort(f.sort)
	}
	if len(f.projection) > 0 {
		opts.SetProjection(f.projection)
	}
	if f.limit > 0 {
		opts.SetSkip(f.skip)
		opts.SetLimit(f.limit)
	}
	return f.filter, opts
}

// Skip and Limit expose the computed pagination window.
func (f *QueryFeatures) Skip() int64  { return f.skip }
func (f *QueryFeatures) Limit() int64 { return f.limit }

// coerceValue turns numeric-looking parameters into float64 so comparisons
// against numeric document fields match.
func coerceValue(raw string) any {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
