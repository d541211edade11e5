package card

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// List is an ordered collection of cards supporting the query operations:
// filter, group, sort, counts, and statistics. Lists hold pointers, so the
// same card record may appear in many lists (and many times in one list,
// when it represents owned copies).
type List struct {
	cards []*Card
}

// NewList builds a list over the given cards. The slice is taken over, not
// copied.
func NewList(cards ...*Card) *List {
	return &List{cards: cards}
}

func (l *List) Len() int { return len(l.cards) }

func (l *List) At(i int) *Card { return l.cards[i] }

// Cards exposes the backing slice for iteration. Callers must not reorder it.
func (l *List) Cards() []*Card { return l.cards }

// Add appends cards to the list.
func (l *List) Add(cards ...*Card) {
	l.cards = append(l.cards, cards...)
}

// Filter returns the cards satisfying every criterion, preserving list
// order. Criteria that name an unknown field or carry an incompatible match
// value return a FilterError.
func (l *List) Filter(criteria ...Criterion) (*List, error) {
	evals := make([]func(*Card) bool, len(criteria))
	for i, cr := range criteria {
		eval, err := cr.compile()
		if err != nil {
			return nil, err
		}
		evals[i] = eval
	}
	out := &List{}
	for _, c := range l.cards {
		keep := true
		for _, eval := range evals {
			if !eval(c) {
				keep = false
				break
			}
		}
		if keep {
			out.cards = append(out.cards, c)
		}
	}
	return out, nil
}

// Group partitions the list by a field's value. For list fields a card lands
// in one bucket per entry, so bucket sizes can sum past Len; a card with no
// entries lands in the "" bucket. Numeric fields bucket by the printed form
// of the value, with "" for absent.
func (l *List) Group(field string) (map[string]*List, error) {
	spec, ok := fields[field]
	if !ok {
		return nil, &FilterError{Field: field, Reason: "unknown field"}
	}
	groups := map[string]*List{}
	put := func(key string, c *Card) {
		g, ok := groups[key]
		if !ok {
			g = &List{}
			groups[key] = g
		}
		g.cards = append(g.cards, c)
	}
	for _, c := range l.cards {
		switch spec.kind {
		case TextListField:
			entries := spec.list(c)
			if len(entries) == 0 {
				put("", c)
				continue
			}
			for _, e := range entries {
				put(e, c)
			}
		case TextField:
			put(spec.text(c), c)
		default:
			put(spec.val(c).String(), c)
		}
	}
	return groups, nil
}

// Sort orders the list in place by a field, stably so that equal cards keep
// their relative order. Numeric fields sort absent values first, then
// condition-dependent text lexicographically, then integers ascending; text
// fields sort lexicographically. List fields cannot be sorted on.
func (l *List) Sort(field string, reverse bool) error {
	spec, ok := fields[field]
	if !ok {
		return &FilterError{Field: field, Reason: "unknown field"}
	}
	if spec.kind == TextListField {
		return &FilterError{Field: field, Reason: "cannot sort on a list field"}
	}
	var less func(a, b *Card) bool
	if spec.kind == TextField {
		less = func(a, b *Card) bool { return spec.text(a) < spec.text(b) }
	} else {
		less = func(a, b *Card) bool { return valueLess(spec.val(a), spec.val(b)) }
	}
	sort.SliceStable(l.cards, func(i, j int) bool {
		if reverse {
			return less(l.cards[j], l.cards[i])
		}
		return less(l.cards[i], l.cards[j])
	})
	return nil
}

// valueLess orders tri-state values: absent first, then condition-dependent
// text, then integers.
func valueLess(a, b Value) bool {
	rank := func(v Value) int {
		switch {
		case v.IsNone():
			return 0
		case v.IsText():
			return 1
		default:
			return 2
		}
	}
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 1:
		return a.String() < b.String()
	case 2:
		an, _ := a.Int()
		bn, _ := b.Int()
		return an < bn
	default:
		return false
	}
}

// Counts tallies the list by full name.
func (l *List) Counts() map[string]int {
	counts := make(map[string]int, len(l.cards))
	for _, c := range l.cards {
		counts[c.FullName()]++
	}
	return counts
}

// Heroes returns the hero cards in the list.
func (l *List) Heroes() *List { return l.byPredicate((*Card).IsHero) }

// Equipment returns the equipment cards in the list.
func (l *List) Equipment() *List { return l.byPredicate((*Card).IsEquipment) }

// Weapons returns the weapon cards in the list.
func (l *List) Weapons() *List { return l.byPredicate((*Card).IsWeapon) }

// Tokens returns the token cards in the list.
func (l *List) Tokens() *List { return l.byPredicate((*Card).IsToken) }

func (l *List) byPredicate(pred func(*Card) bool) *List {
	out := &List{}
	for _, c := range l.cards {
		if pred(c) {
			out.cards = append(out.cards, c)
		}
	}
	return out
}

// MarshalJSON encodes the list as a plain card array.
func (l *List) MarshalJSON() ([]byte, error) {
	if l.cards == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.cards)
}

func (l *List) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &l.cards)
}

// LoadList reads a card list from a JSON file, validating every card.
func LoadList(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card list: %w", err)
	}
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse card list %s: %w", path, err)
	}
	for _, c := range l.cards {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid card in %s: %w", path, err)
		}
	}
	return &l, nil
}

// Save writes the list to a JSON file, indented for hand editing.
func (l *List) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode card list: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write card list: %w", err)
	}
	return nil
}
