package types

import "net/url"

// Filter is one field-equality constraint used in list queries. The field
// name is always one of FilterableFields; the value is opaque and passed
// through as a bind parameter.
type Filter struct {
	Field string
	Value string
}

// FilterableFields is the whitelist of record attributes a query may
// constrain, in the fixed order filters are built.
var FilterableFields = []string{
	"name", "mfr", "type", "calories", "protein", "fat", "sodium",
	"fiber", "carbo", "sugars", "potass", "vitamins", "shelf",
	"weight", "cups", "rating",
}

// BuildFilters turns query parameters into an ordered list of equality
// filters. The whitelist is walked in declaration order regardless of the
// order parameters arrived in; parameters outside the whitelist are
// dropped.
func BuildFilters(params url.Values) []Filter {
	var filters []Filter
	for _, field := range FilterableFields {
		if !params.Has(field) {
			continue
		}
		filters = append(filters, Filter{Field: field, Value: params.Get(field)})
	}
	return filters
}
