package list

import (
	"net/url"
	"strconv"

	"github.com/subdeck/subdeck/internal/subtrack"
)

// SortField enumerates the server-supported sort columns.
type SortField string

const (
	SortNextBilling SortField = "next_billing_date"
	SortName        SortField = "name"
	SortCost        SortField = "cost"
	SortCreatedAt   SortField = "created_at"
)

// SortDir enumerates sort directions.
type SortDir string

const (
	Ascending  SortDir = "asc"
	Descending SortDir = "desc"
)

// StatusFilter narrows the list by lifecycle status.
type StatusFilter string

const (
	FilterActive    StatusFilter = "active"
	FilterCancelled StatusFilter = "cancelled"
	FilterAll       StatusFilter = "all"
)

const defaultPageSize = 50

// Query captures everything that shapes one list request: sort, filters,
// free-text search, and the pagination window.
type Query struct {
	SortBy       SortField
	Order        SortDir
	Status       StatusFilter
	Search       string
	BillingCycle subtrack.BillingCycle
	CostMin      *float64
	CostMax      *float64
	CategoryID   *int64
	Offset       int
	Limit        int
}

// DefaultQuery returns the view shown on startup: active subscriptions sorted
// by next billing date, first page.
func DefaultQuery(limit int) Query {
	if limit <= 0 {
		limit = defaultPageSize
	}
	return Query{
		SortBy: SortNextBilling,
		Order:  Ascending,
		Status: FilterActive,
		Limit:  limit,
	}
}

// Values encodes the query for GET /subscriptions. Unset optional fields are
// omitted entirely rather than sent as empty or sentinel values.
func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set("sort_by", string(q.SortBy))
	values.Set("order", string(q.Order))
	values.Set("limit", strconv.Itoa(q.Limit))
	values.Set("offset", strconv.Itoa(q.Offset))
	if q.Status != "" && q.Status != FilterAll {
		values.Set("status", string(q.Status))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.BillingCycle != "" {
		values.Set("billing_cycle", string(q.BillingCycle))
	}
	if q.CostMin != nil {
		values.Set("cost_min", strconv.FormatFloat(*q.CostMin, 'f', -1, 64))
	}
	if q.CostMax != nil {
		values.Set("cost_max", strconv.FormatFloat(*q.CostMax, 'f', -1, 64))
	}
	if q.CategoryID != nil {
		values.Set("category_id", strconv.FormatInt(*q.CategoryID, 10))
	}
	return values
}

// FiltersAtDefault reports whether the query matches the startup view apart
// from sort order. Only such first-page loads are worth caching for offline
// recovery; filtered or searched pages would be misleading as a fallback.
func (q Query) FiltersAtDefault() bool {
	return q.Search == "" &&
		q.Status == FilterActive &&
		q.BillingCycle == "" &&
		q.CostMin == nil &&
		q.CostMax == nil &&
		q.CategoryID == nil
}
