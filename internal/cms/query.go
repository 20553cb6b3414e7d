package cms

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 6
	PopulateAll     = "*"
)

// Filter is an equality filter on a dotted field path, e.g. "categories.slug".
type Filter struct {
	Field string
	Value string
}

// Query describes one collection request.
type Query struct {
	Page     int
	PageSize int
	Filters  []Filter
	Populate string
	Sort     []string
}

// Eq appends an equality filter and returns the query for chaining.
func (q Query) Eq(field, value string) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

// Values encodes the query using the bracket notation of the content API.
// Zero page and page size fall back to DefaultPage and DefaultPageSize.
func (q Query) Values() url.Values {
	page, pageSize := q.Page, q.PageSize
	if page == 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	v := url.Values{}
	v.Set("pagination[page]", strconv.Itoa(page))
	v.Set("pagination[pageSize]", strconv.Itoa(pageSize))

	for _, f := range q.Filters {
		v.Add(filterKey(f.Field), f.Value)
	}

	if q.Populate != "" {
		v.Set("populate", q.Populate)
	}

	for i, s := range q.Sort {
		v.Set("sort["+strconv.Itoa(i)+"]", s)
	}

	return v
}

func filterKey(field string) string {
	var b strings.Builder
	b.WriteString("filters")
	for _, part := range strings.Split(field, ".") {
		b.WriteString("[" + part + "]")
	}
	b.WriteString("[$eq]")
	return b.String()
}
