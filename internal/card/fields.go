package card

// FieldKind classifies a queryable card field for the collection engine.
type FieldKind int

const (
	// TextField holds a single optional string (e.g. body).
	TextField FieldKind = iota
	// TextListField holds zero or more strings (e.g. types).
	TextListField
	// ValueField holds a tri-state numeric Value (e.g. cost).
	ValueField
)

type fieldSpec struct {
	kind FieldKind
	text func(*Card) string
	list func(*Card) []string
	val  func(*Card) Value
}

// fields is the registry of every card field the filter/group/sort/stats
// operations accept. Filtering on anything else is a FilterError.
var fields = map[string]fieldSpec{
	"name":        {kind: TextField, text: func(c *Card) string { return c.Name }},
	"full_name":   {kind: TextField, text: func(c *Card) string { return c.FullName() }},
	"body":        {kind: TextField, text: func(c *Card) string { return c.Body }},
	"flavor_text": {kind: TextField, text: func(c *Card) string { return c.FlavorText }},
	"type_text":   {kind: TextField, text: func(c *Card) string { return c.TypeText }},

	"types":           {kind: TextListField, list: func(c *Card) []string { return c.Types }},
	"keywords":        {kind: TextListField, list: func(c *Card) []string { return c.Keywords }},
	"grants_keywords": {kind: TextListField, list: func(c *Card) []string { return c.GrantsKeywords }},
	"sets":            {kind: TextListField, list: func(c *Card) []string { return c.Sets }},
	"identifiers":     {kind: TextListField, list: func(c *Card) []string { return c.Identifiers }},
	"rarities":        {kind: TextListField, list: func(c *Card) []string { return c.Rarities }},
	"tags":            {kind: TextListField, list: func(c *Card) []string { return c.Tags }},

	"pitch":     {kind: ValueField, val: func(c *Card) Value { return c.Pitch }},
	"cost":      {kind: ValueField, val: func(c *Card) Value { return c.Cost }},
	"power":     {kind: ValueField, val: func(c *Card) Value { return c.Power }},
	"defense":   {kind: ValueField, val: func(c *Card) Value { return c.Defense }},
	"health":    {kind: ValueField, val: func(c *Card) Value { return c.Health }},
	"intellect": {kind: ValueField, val: func(c *Card) Value { return c.Intellect }},
}

// ValueFieldNames lists the numeric fields, in the order statistics are
// reported.
var ValueFieldNames = []string{"cost", "power", "defense", "health", "intellect", "pitch"}

// FieldNames returns all registered field names. Intended for help output.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}

// rawValue exposes the field's value as the loosely typed form handed to
// Where predicates: string, []string, or Value.
func (s fieldSpec) rawValue(c *Card) any {
	switch s.kind {
	case TextField:
		return s.text(c)
	case TextListField:
		return s.list(c)
	default:
		return s.val(c)
	}
}
