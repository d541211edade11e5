package card

import (
	"fmt"
	"strings"
)

// Card types that mark what a hero *is* rather than what class of cards it
// can play. They are excluded when computing deck compatibility.
var nonClassTypes = []string{"Adult", "Hero", "Young"}

// Card represents a Flesh and Blood card. All printings of a card share one
// Card record; the parallel Sets/Identifiers/Rarities lists carry one entry
// per printing, in the same order.
//
// Cards are built once at catalog load time and treated as read-only
// afterwards, with the exception of the user-facing Tags field. Collections
// and decks share pointers into the owning catalog, so a tag added through
// one view is visible everywhere.
type Card struct {
	Name       string `json:"name"`
	Pitch      Value  `json:"pitch"`
	Cost       Value  `json:"cost"`
	Power      Value  `json:"power"`
	Defense    Value  `json:"defense"`
	Health     Value  `json:"health"`
	Intellect  Value  `json:"intellect"`
	Body       string `json:"body,omitempty"`
	FlavorText string `json:"flavor_text,omitempty"`

	// TypeText is the printed type box; Types is its decomposition, in
	// printed order.
	TypeText string   `json:"type_text"`
	Types    []string `json:"types"`

	Keywords       []string `json:"keywords,omitempty"`
	GrantsKeywords []string `json:"grants_keywords,omitempty"`

	// One entry per printing, aligned by index. Foilings may be empty when
	// the feed doesn't carry foiling data.
	Sets        []string `json:"sets"`
	Identifiers []string `json:"identifiers"`
	Rarities    []string `json:"rarities"`
	Foilings    []string `json:"foilings,omitempty"`

	ImageURLs []string `json:"image_urls,omitempty"`

	// Legality maps a format code to whether the card is currently legal
	// there. A format missing from the map counts as legal.
	Legality map[string]bool `json:"legality,omitempty"`

	// Tags is free-form user annotation, the only mutable field.
	Tags []string `json:"tags,omitempty"`
}

// FullName is the card name extended with its pitch value, e.g.
// "Sharpen Steel (3)". Cards without an integer pitch use the bare name.
func (c *Card) FullName() string {
	if p, ok := c.Pitch.Int(); ok {
		return fmt.Sprintf("%s (%d)", c.Name, p)
	}
	return c.Name
}

// HasType reports whether the card's type box contains the given type tag.
func (c *Card) HasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

func (c *Card) IsHero() bool      { return c.HasType("Hero") }
func (c *Card) IsYoung() bool     { return c.HasType("Young") }
func (c *Card) IsEquipment() bool { return c.HasType("Equipment") }
func (c *Card) IsWeapon() bool    { return c.HasType("Weapon") }
func (c *Card) IsToken() bool     { return c.HasType("Token") }
func (c *Card) IsGeneric() bool   { return c.HasType("Generic") }
func (c *Card) IsAction() bool    { return c.HasType("Action") }
func (c *Card) IsAttack() bool    { return c.HasType("Attack") }
func (c *Card) IsInstant() bool   { return c.HasType("Instant") }

// ClassTypes returns the card's types minus the markers that describe what
// a hero is (Hero, Young, Adult). For a hero card this is the set of class
// and talent types its deck may draw from.
func (c *Card) ClassTypes() []string {
	var out []string
	for _, t := range c.Types {
		excluded := false
		for _, e := range nonClassTypes {
			if t == e {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, t)
		}
	}
	return out
}

// IsLegal reports whether the card may be played in the given format.
// Formats absent from the legality map are treated as legal.
func (c *Card) IsLegal(format string) bool {
	if c.Legality == nil {
		return true
	}
	legal, known := c.Legality[format]
	return !known || legal
}

// AddTag appends a user tag unless already present.
func (c *Card) AddTag(tag string) {
	for _, t := range c.Tags {
		if t == tag {
			return
		}
	}
	c.Tags = append(c.Tags, tag)
}

// Printings expands the aligned printing lists into Variant records.
func (c *Card) Printings() []Variant {
	variants := make([]Variant, 0, len(c.Identifiers))
	for i, id := range c.Identifiers {
		v := Variant{
			Identifier: id,
			CardName:   c.FullName(),
		}
		if i < len(c.Sets) {
			v.Set = c.Sets[i]
		}
		if i < len(c.Rarities) {
			v.Rarity = c.Rarities[i]
		}
		if i < len(c.Foilings) {
			v.Foiling = c.Foilings[i]
		} else {
			v.Foiling = StandardFoiling
		}
		variants = append(variants, v)
	}
	return variants
}

// Validate checks the structural invariants every catalog card must hold:
// a name, a non-empty type box, and printing lists aligned index for index.
func (c *Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("card has no name")
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("card %q has no types", c.FullName())
	}
	if len(c.Identifiers) != len(c.Rarities) || len(c.Identifiers) != len(c.Sets) {
		return fmt.Errorf("card %q has misaligned printings: %d identifiers, %d rarities, %d sets",
			c.FullName(), len(c.Identifiers), len(c.Rarities), len(c.Sets))
	}
	if len(c.Foilings) > 0 && len(c.Foilings) != len(c.Identifiers) {
		return fmt.Errorf("card %q has %d foilings for %d printings",
			c.FullName(), len(c.Foilings), len(c.Identifiers))
	}
	return nil
}
