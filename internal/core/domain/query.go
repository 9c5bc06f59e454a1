package domain

// FilterOperator identifies a predicate applied by QueryFilter.
type FilterOperator string

const (
	// OpEq matches values equal to the filter value.
	OpEq FilterOperator = "eq"
	// OpNe matches values not equal to the filter value.
	OpNe FilterOperator = "ne"
	// OpGt matches values strictly greater than the filter value.
	OpGt FilterOperator = "gt"
	// OpGte matches values greater than or equal to the filter value.
	OpGte FilterOperator = "gte"
	// OpLt matches values strictly less than the filter value.
	OpLt FilterOperator = "lt"
	// OpLte matches values less than or equal to the filter value.
	OpLte FilterOperator = "lte"
	// OpIn matches values contained in the filter's value set.
	OpIn FilterOperator = "in"
	// OpContains matches string fields containing the filter value as a
	// case-insensitive substring.
	OpContains FilterOperator = "contains"
)

// QueryFilter is a single field predicate. Multiple filters are ANDed.
// An operator unsupported for a field's type is ignored rather than
// rejected; callers construct filters and own their correctness.
type QueryFilter struct {
	// Field is the JSON field name the predicate applies to.
	Field string

	// Operator selects the predicate.
	Operator FilterOperator

	// Value is the comparison operand. For OpIn it is a slice.
	Value any
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "asc"
	// SortDesc sorts descending.
	SortDesc SortOrder = "desc"
)

// Default pagination values applied by Normalise.
const (
	DefaultPage   = 1
	DefaultLimit  = 20
	DefaultSortBy = "createdAt"
)

// PaginationParams controls paging and ordering of list results.
type PaginationParams struct {
	// Page is the 1-based page number.
	Page int

	// Limit is the page size.
	Limit int

	// SortBy is the JSON field name to order by.
	SortBy string

	// SortOrder is asc or desc.
	SortOrder SortOrder
}

// Normalise returns a copy with defaults applied to zero or out-of-range
// values: page 1, limit 20, sort by createdAt descending.
func (p PaginationParams) Normalise() PaginationParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		p.SortOrder = SortDesc
	}
	return p
}

// Offset returns the number of records preceding this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginated wraps one page of results with paging metadata.
type Paginated[T any] struct {
	// Data holds the records for this page, in sort order.
	Data []T

	// Total is the number of records matching the filters across all pages.
	Total int

	// Page is the 1-based page number that was returned.
	Page int

	// Limit is the page size that was applied.
	Limit int

	// TotalPages is ceil(Total/Limit).
	TotalPages int
}

// NewPaginated assembles a result page and derives TotalPages.
func NewPaginated[T any](data []T, total int, params PaginationParams) Paginated[T] {
	params = params.Normalise()
	return Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: TotalPages(total, params.Limit),
	}
}

// TotalPages returns ceil(total/limit) for total >= 0, limit > 0.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
