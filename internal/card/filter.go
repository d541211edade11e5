package card

import (
	"fmt"
	"strings"
)

// FilterError reports a criterion that cannot be evaluated: an unknown
// field name, or a match value incompatible with the field's kind.
type FilterError struct {
	Field  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter %q: %s", e.Field, e.Reason)
}

type matchKind int

const (
	matchEq matchKind = iota
	matchRange
	matchIn
	matchPred
)

// Criterion is one filter condition: a field name plus a tagged match kind.
// Build criteria with Eq, Between, In, or Where; a criterion is resolved
// against the field registry when the filter runs, and every card in the
// result satisfies all supplied criteria.
type Criterion struct {
	field  string
	kind   matchKind
	scalar any
	lo, hi int
	set    []any
	pred   func(any) bool
}

// Eq matches an exact scalar: case-insensitive equality for text fields,
// membership for list fields, integer equality for value fields.
func Eq(field string, value any) Criterion {
	return Criterion{field: field, kind: matchEq, scalar: value}
}

// Between matches value fields within the inclusive range [lo, hi]. A card
// whose value is condition-dependent text matches any range; this leniency
// is deliberate and load-bearing — variable-cost cards stay visible in
// cost-band queries. Absent values never match.
func Between(field string, lo, hi int) Criterion {
	return Criterion{field: field, kind: matchRange, lo: lo, hi: hi}
}

// In matches membership: for list fields the card matches when any of its
// entries appears in values (any-overlap, not subset); for scalar fields
// when the field equals any listed value.
func In(field string, values ...any) Criterion {
	return Criterion{field: field, kind: matchIn, set: values}
}

// Where matches with an arbitrary predicate over the raw field value
// (string, []string, or Value depending on the field kind).
func Where(field string, pred func(value any) bool) Criterion {
	return Criterion{field: field, kind: matchPred, pred: pred}
}

// compile resolves a criterion into a per-card evaluator, or a FilterError
// when the field is unknown or the match value doesn't fit its kind.
func (cr Criterion) compile() (func(*Card) bool, error) {
	spec, ok := fields[cr.field]
	if !ok {
		return nil, &FilterError{Field: cr.field, Reason: "unknown field"}
	}
	switch cr.kind {
	case matchEq:
		return cr.compileEq(spec)
	case matchRange:
		if spec.kind != ValueField {
			return nil, &FilterError{Field: cr.field, Reason: "range match requires a numeric field"}
		}
		lo, hi := cr.lo, cr.hi
		return func(c *Card) bool {
			v := spec.val(c)
			if v.IsText() {
				return true
			}
			n, ok := v.Int()
			return ok && n >= lo && n <= hi
		}, nil
	case matchIn:
		return cr.compileIn(spec)
	case matchPred:
		if cr.pred == nil {
			return nil, &FilterError{Field: cr.field, Reason: "nil predicate"}
		}
		return func(c *Card) bool { return cr.pred(spec.rawValue(c)) }, nil
	default:
		return nil, &FilterError{Field: cr.field, Reason: "unknown match kind"}
	}
}

func (cr Criterion) compileEq(spec fieldSpec) (func(*Card) bool, error) {
	switch want := cr.scalar.(type) {
	case string:
		switch spec.kind {
		case TextField:
			return func(c *Card) bool { return strings.EqualFold(spec.text(c), want) }, nil
		case TextListField:
			return func(c *Card) bool { return containsFold(spec.list(c), want) }, nil
		default:
			return nil, &FilterError{Field: cr.field, Reason: "string match against a numeric field"}
		}
	case int:
		if spec.kind != ValueField {
			return nil, &FilterError{Field: cr.field, Reason: "integer match against a text field"}
		}
		return func(c *Card) bool {
			n, ok := spec.val(c).Int()
			return ok && n == want
		}, nil
	default:
		return nil, &FilterError{Field: cr.field, Reason: fmt.Sprintf("unsupported match value %T", cr.scalar)}
	}
}

func (cr Criterion) compileIn(spec fieldSpec) (func(*Card) bool, error) {
	var texts []string
	var numbers []int
	for _, v := range cr.set {
		switch t := v.(type) {
		case string:
			texts = append(texts, t)
		case int:
			numbers = append(numbers, t)
		default:
			return nil, &FilterError{Field: cr.field, Reason: fmt.Sprintf("unsupported membership value %T", v)}
		}
	}
	switch spec.kind {
	case TextField:
		if len(numbers) > 0 {
			return nil, &FilterError{Field: cr.field, Reason: "integer membership against a text field"}
		}
		return func(c *Card) bool { return containsFold(texts, spec.text(c)) }, nil
	case TextListField:
		if len(numbers) > 0 {
			return nil, &FilterError{Field: cr.field, Reason: "integer membership against a text field"}
		}
		return func(c *Card) bool {
			for _, have := range spec.list(c) {
				if containsFold(texts, have) {
					return true
				}
			}
			return false
		}, nil
	default:
		if len(texts) > 0 {
			return nil, &FilterError{Field: cr.field, Reason: "string membership against a numeric field"}
		}
		return func(c *Card) bool {
			n, ok := spec.val(c).Int()
			if !ok {
				return false
			}
			for _, want := range numbers {
				if n == want {
					return true
				}
			}
			return false
		}, nil
	}
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
