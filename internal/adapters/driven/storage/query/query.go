// Package query evaluates generic filters against the JSON field
// representation of records. Both the memory and sqlite record stores
// delegate to it, so filter semantics cannot drift between adapters.
package query

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Page applies filters, sorting, and pagination to a full collection.
// It returns the requested page and the total match count.
func Page[T any](records []T, filters []domain.QueryFilter, params domain.PaginationParams) ([]T, int, error) {
	params = params.Normalise()

	type doc struct {
		record T
		fields map[string]any
	}

	docs := make([]doc, 0, len(records))
	for _, record := range records {
		fields, err := Fields(record)
		if err != nil {
			return nil, 0, err
		}
		if !Matches(fields, filters) {
			continue
		}
		docs = append(docs, doc{record: record, fields: fields})
	}

	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i].fields[params.SortBy], docs[j].fields[params.SortBy]
		if params.SortOrder == domain.SortDesc {
			a, b = b, a
		}
		cmp, ok := compareValues(a, b)
		return ok && cmp < 0
	})

	total := len(docs)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	page := make([]T, 0, end-start)
	for _, d := range docs[start:end] {
		page = append(page, d.record)
	}
	return page, total, nil
}

// Fields returns the JSON field map of a record.
func Fields(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshalling record fields: %w", err)
	}
	return fields, nil
}

// Matches reports whether the field map satisfies every filter (AND).
// A filter whose operator does not apply to the field's type is
// ignored rather than rejected; callers construct filters and own
// their correctness.
func Matches(fields map[string]any, filters []domain.QueryFilter) bool {
	for _, filter := range filters {
		if !matchOne(fields[filter.Field], filter) {
			return false
		}
	}
	return true
}

func matchOne(value any, filter domain.QueryFilter) bool {
	switch filter.Operator {
	case domain.OpEq:
		return equalValues(value, filter.Value)
	case domain.OpNe:
		return !equalValues(value, filter.Value)
	case domain.OpGt, domain.OpGte, domain.OpLt, domain.OpLte:
		cmp, ok := compareValues(value, filter.Value)
		if !ok {
			return true // incomparable: filter is ignored
		}
		switch filter.Operator {
		case domain.OpGt:
			return cmp > 0
		case domain.OpGte:
			return cmp >= 0
		case domain.OpLt:
			return cmp < 0
		default:
			return cmp <= 0
		}
	case domain.OpIn:
		matched, ok := memberOf(filter.Value, value)
		if !ok {
			return true // filter value is not a set: ignored
		}
		return matched
	case domain.OpContains:
		matched, ok := containsSubstring(value, filter.Value)
		if !ok {
			return true // not a string field: ignored
		}
		return matched
	default:
		return true // unknown operator: ignored
	}
}

// equalValues compares scalars across JSON and Go representations.
// Numbers compare numerically regardless of int/float typing.
func equalValues(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	as, aok := toString(a)
	bs, bok := toString(b)
	if aok && bok {
		return as == bs
	}
	return a == b
}

// compareValues orders scalars: numbers numerically, RFC 3339
// timestamps as instants, and other strings lexicographically. The
// second return is false when the values are not comparable.
func compareValues(a, b any) (int, bool) {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		if !bok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	as, aok := toString(a)
	bs, bok := toString(b)
	if aok && bok {
		// Timestamps with and without fractional seconds do not order
		// correctly as strings; compare parsed instants when both sides
		// are timestamps.
		if at, err := time.Parse(time.RFC3339Nano, as); err == nil {
			if bt, err := time.Parse(time.RFC3339Nano, bs); err == nil {
				return at.Compare(bt), true
			}
		}
		return strings.Compare(as, bs), true
	}
	return 0, false
}

// memberOf reports whether value is a member of the filter's set.
// The second return is false when set is not a recognised sequence.
func memberOf(set any, value any) (bool, bool) {
	switch s := set.(type) {
	case []any:
		for _, candidate := range s {
			if equalValues(value, candidate) {
				return true, true
			}
		}
		return false, true
	case []string:
		for _, candidate := range s {
			if equalValues(value, candidate) {
				return true, true
			}
		}
		return false, true
	case []float64:
		for _, candidate := range s {
			if equalValues(value, candidate) {
				return true, true
			}
		}
		return false, true
	case []int:
		for _, candidate := range s {
			if equalValues(value, candidate) {
				return true, true
			}
		}
		return false, true
	default:
		return false, false
	}
}

// containsSubstring is a case-insensitive substring match on string
// fields. On string-sequence fields it matches if any element contains
// the substring. A nil or absent field never matches. The second
// return is false for non-string field types.
func containsSubstring(value any, needle any) (bool, bool) {
	needleStr, ok := toString(needle)
	if !ok {
		return false, false
	}
	needleStr = strings.ToLower(needleStr)

	switch v := value.(type) {
	case nil:
		// Absent or null field: no substring to match.
		return false, true
	case string:
		return strings.Contains(strings.ToLower(v), needleStr), true
	case []any:
		for _, element := range v {
			if s, ok := element.(string); ok && strings.Contains(strings.ToLower(s), needleStr) {
				return true, true
			}
		}
		return false, true
	case []string:
		for _, s := range v {
			if strings.Contains(strings.ToLower(s), needleStr) {
				return true, true
			}
		}
		return false, true
	default:
		return false, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		// Named string types (enums like domain.ImpactLevel).
		rv := reflect.ValueOf(v)
		if rv.IsValid() && rv.Kind() == reflect.String {
			return rv.String(), true
		}
		return "", false
	}
}
