// Package grid applies server-side paging, sorting and filtering to an in-memory
// collection, answering the data-source requests sent by grid widgets.
package grid

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"traiteur/internal/errors"
)

// Filter operators understood by Apply.
const (
	OpEq             = "eq"
	OpNeq            = "neq"
	OpLt             = "lt"
	OpLte            = "lte"
	OpGt             = "gt"
	OpGte            = "gte"
	OpContains       = "contains"
	OpDoesNotContain = "doesnotcontain"
	OpStartsWith     = "startswith"
	OpEndsWith       = "endswith"
	OpIsNull         = "isnull"
	OpIsNotNull      = "isnotnull"
	OpIsEmpty        = "isempty"
	OpIsNotEmpty     = "isnotempty"
)

// Filter group logic.
const (
	LogicAnd = "and"
	LogicOr  = "or"
)

// Sort directions.
const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

var (
	// ErrUnknownField is returned when a request references a field the schema does not expose.
	ErrUnknownField = errors.New("unknown grid field")
	// ErrUnknownOperator is returned for unsupported filter operators or logic.
	ErrUnknownOperator = errors.New("unknown grid operator")
	// ErrInvalidValue is returned when a filter value cannot be compared with the field.
	ErrInvalidValue = errors.New("invalid grid filter value")
	// ErrInvalidPaging is returned for negative page or page size values.
	ErrInvalidPaging = errors.New("invalid grid paging")
)

// SortDescriptor orders the result by one field.
type SortDescriptor struct {
	Field string `json:"field" validate:"required"`
	Dir   string `json:"dir" validate:"omitempty,oneof=asc desc"`
}

// FilterDescriptor is either a leaf condition (Field/Operator/Value) or a group
// of nested descriptors combined with Logic.
type FilterDescriptor struct {
	Logic    string             `json:"logic,omitempty"`
	Filters  []FilterDescriptor `json:"filters,omitempty"`
	Field    string             `json:"field,omitempty"`
	Operator string             `json:"operator,omitempty"`
	Value    any                `json:"value,omitempty"`
}

// IsGroup reports whether the descriptor combines nested filters.
func (f FilterDescriptor) IsGroup() bool {
	return len(f.Filters) > 0 || f.Logic != ""
}

// Request is a data-source request. Page is 1-based; PageSize 0 disables paging.
type Request struct {
	Page     int               `json:"page" validate:"gte=0"`
	PageSize int               `json:"pageSize" validate:"gte=0"`
	Sort     []SortDescriptor  `json:"sort,omitempty" validate:"dive"`
	Filter   *FilterDescriptor `json:"filter,omitempty"`
}

// Result is one page of data plus the number of rows matching the filter.
type Result[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// Kind tells Apply how to compare a field.
type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// Field exposes one property of T to the grid. Get returns nil for absent values,
// a string for KindString and an int64 or float64 for KindNumber.
type Field[T any] struct {
	Kind Kind
	Get  func(T) any
}

// Schema maps grid field names to accessors. Lookups ignore case.
type Schema[T any] map[string]Field[T]

func (s Schema[T]) lookup(name string) (Field[T], bool) {
	if f, ok := s[name]; ok {
		return f, true
	}
	for key, f := range s {
		if strings.EqualFold(key, name) {
			return f, true
		}
	}

	return Field[T]{}, false
}

// Apply filters, sorts and pages items according to req.
func Apply[T any](items []T, req Request, schema Schema[T]) (*Result[T], error) {
	if req.Page < 0 || req.PageSize < 0 {
		return nil, errors.Wrapf(ErrInvalidPaging, "page=%d pageSize=%d", req.Page, req.PageSize)
	}

	filtered := make([]T, 0, len(items))
	if req.Filter == nil {
		filtered = append(filtered, items...)
	} else {
		pred, err := compileFilter(*req.Filter, schema)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if pred(item) {
				filtered = append(filtered, item)
			}
		}
	}

	if len(req.Sort) > 0 {
		compare, err := compileSort(req.Sort, schema)
		if err != nil {
			return nil, err
		}
		slices.SortStableFunc(filtered, compare)
	}

	total := len(filtered)
	page := filtered
	if req.PageSize > 0 {
		start := pageStart(req.Page, req.PageSize, total)
		end := start + min(req.PageSize, total-start)
		page = filtered[start:end]
	}

	return &Result[T]{Data: page, Total: total}, nil
}

// pageStart returns the offset of a 1-based page, clamped to total. Pages past the
// end start at total without computing (page-1)*size, which can overflow.
func pageStart(page, size, total int) int {
	skip := max(page, 1) - 1
	if skip > total/size {
		return total
	}

	return min(skip*size, total)
}

type predicate[T any] func(T) bool

func compileFilter[T any](f FilterDescriptor, schema Schema[T]) (predicate[T], error) {
	if !f.IsGroup() {
		return compileCondition(f, schema)
	}

	preds := make([]predicate[T], 0, len(f.Filters))
	for _, child := range f.Filters {
		p, err := compileFilter(child, schema)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}

	switch strings.ToLower(f.Logic) {
	case LogicAnd, "":
		return func(item T) bool {
			for _, p := range preds {
				if !p(item) {
					return false
				}
			}

			return true
		}, nil
	case LogicOr:
		return func(item T) bool {
			if len(preds) == 0 {
				return true
			}
			for _, p := range preds {
				if p(item) {
					return true
				}
			}

			return false
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownOperator, "logic %q", f.Logic)
	}
}

func compileCondition[T any](f FilterDescriptor, schema Schema[T]) (predicate[T], error) {
	field, ok := schema.lookup(f.Field)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownField, "%q", f.Field)
	}

	op := strings.ToLower(f.Operator)
	switch op {
	case OpIsNull:
		return func(item T) bool { return field.Get(item) == nil }, nil
	case OpIsNotNull:
		return func(item T) bool { return field.Get(item) != nil }, nil
	case OpIsEmpty:
		return func(item T) bool { return isEmpty(field.Get(item)) }, nil
	case OpIsNotEmpty:
		return func(item T) bool { return !isEmpty(field.Get(item)) }, nil
	}

	if field.Kind == KindNumber {
		return numberCondition(field, op, f)
	}

	return stringCondition(field, op, f)
}

func stringCondition[T any](field Field[T], op string, f FilterDescriptor) (predicate[T], error) {
	if f.Value == nil {
		switch op {
		case OpEq:
			return func(item T) bool { return field.Get(item) == nil }, nil
		case OpNeq:
			return func(item T) bool { return field.Get(item) != nil }, nil
		default:
			return nil, errors.Wrapf(ErrInvalidValue, "%s on %q needs a value", op, f.Field)
		}
	}

	want := strings.ToLower(fmt.Sprint(f.Value))
	var match func(got string) bool
	switch op {
	case OpEq:
		match = func(got string) bool { return got == want }
	case OpNeq:
		match = func(got string) bool { return got != want }
	case OpLt:
		match = func(got string) bool { return got < want }
	case OpLte:
		match = func(got string) bool { return got <= want }
	case OpGt:
		match = func(got string) bool { return got > want }
	case OpGte:
		match = func(got string) bool { return got >= want }
	case OpContains:
		match = func(got string) bool { return strings.Contains(got, want) }
	case OpDoesNotContain:
		match = func(got string) bool { return !strings.Contains(got, want) }
	case OpStartsWith:
		match = func(got string) bool { return strings.HasPrefix(got, want) }
	case OpEndsWith:
		match = func(got string) bool { return strings.HasSuffix(got, want) }
	default:
		return nil, errors.Wrapf(ErrUnknownOperator, "%q", f.Operator)
	}

	return func(item T) bool {
		v := field.Get(item)
		if v == nil {
			// Only negative comparisons hold against a missing value.
			return op == OpNeq || op == OpDoesNotContain
		}

		return match(strings.ToLower(fmt.Sprint(v)))
	}, nil
}

func numberCondition[T any](field Field[T], op string, f FilterDescriptor) (predicate[T], error) {
	want, ok := toFloat(f.Value)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidValue, "%v is not a number for %q", f.Value, f.Field)
	}

	var match func(got float64) bool
	switch op {
	case OpEq:
		match = func(got float64) bool { return got == want }
	case OpNeq:
		match = func(got float64) bool { return got != want }
	case OpLt:
		match = func(got float64) bool { return got < want }
	case OpLte:
		match = func(got float64) bool { return got <= want }
	case OpGt:
		match = func(got float64) bool { return got > want }
	case OpGte:
		match = func(got float64) bool { return got >= want }
	default:
		return nil, errors.Wrapf(ErrUnknownOperator, "%q on numeric field %q", f.Operator, f.Field)
	}

	return func(item T) bool {
		got, ok := toFloat(field.Get(item))
		if !ok {
			return op == OpNeq
		}

		return match(got)
	}, nil
}

func compileSort[T any](sorts []SortDescriptor, schema Schema[T]) (func(a, b T) int, error) {
	type key struct {
		field Field[T]
		desc  bool
	}

	keys := make([]key, 0, len(sorts))
	for _, s := range sorts {
		field, ok := schema.lookup(s.Field)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownField, "%q", s.Field)
		}
		switch strings.ToLower(s.Dir) {
		case DirAsc, "":
			keys = append(keys, key{field: field})
		case DirDesc:
			keys = append(keys, key{field: field, desc: true})
		default:
			return nil, errors.Wrapf(ErrUnknownOperator, "sort direction %q", s.Dir)
		}
	}

	return func(a, b T) int {
		for _, k := range keys {
			c := compareValues(k.field, k.field.Get(a), k.field.Get(b))
			if c == 0 {
				continue
			}
			if k.desc {
				return -c
			}

			return c
		}

		return 0
	}, nil
}

// compareValues orders nil before any value.
func compareValues[T any](field Field[T], a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if field.Kind == KindNumber {
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)

		return cmp.Compare(fa, fb)
	}

	return cmp.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)

	return ok && s == ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, !math.IsNaN(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)

		return f, err == nil
	default:
		return 0, false
	}
}
