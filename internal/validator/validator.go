package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/runebinder/internal/card"
	"github.com/arcanaland/runebinder/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator lints a loaded catalog for data problems the feed parser lets
// through: suspicious values, dangling set references, identifiers outside
// their set's range.
type Validator struct {
	Catalog *catalog.Catalog
	Results ValidationResults
}

func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{
		Catalog: cat,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	for _, c := range v.Catalog.Cards().Cards() {
		v.validateValues(c)
		v.validateTypes(c)
		v.validatePrintings(c)
	}
	v.validateSets()
	return v.Results
}

// validateValues flags numeric attributes no real card carries.
func (v *Validator) validateValues(c *card.Card) {
	for _, field := range []struct {
		name string
		val  card.Value
	}{
		{"pitch", c.Pitch},
		{"cost", c.Cost},
		{"power", c.Power},
		{"defense", c.Defense},
		{"health", c.Health},
		{"intellect", c.Intellect},
	} {
		if n, ok := field.val.Int(); ok && n < 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: negative %s %d", c.FullName(), field.name, n))
		}
	}
	if p, ok := c.Pitch.Int(); ok && (p < 1 || p > 3) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: pitch %d outside the usual 1-3", c.FullName(), p))
	}
}

func (v *Validator) validateTypes(c *card.Card) {
	if c.TypeText == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: empty type text", c.FullName()))
		return
	}
	// Every decomposed type should appear in the printed type box.
	for _, t := range c.Types {
		if !strings.Contains(c.TypeText, t) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: type %q not present in type text %q", c.FullName(), t, c.TypeText))
		}
	}
	if c.IsHero() && !c.IsYoung() && !c.HasType("Adult") {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: hero is neither Young nor Adult", c.FullName()))
	}
}

func (v *Validator) validatePrintings(c *card.Card) {
	if len(c.Identifiers) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: card has no printings", c.FullName()))
		return
	}
	for _, variant := range c.Printings() {
		if variant.Set == "" || variant.Rarity == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: printing %s is missing its set or rarity", c.FullName(), variant.Identifier))
			continue
		}
		if _, err := v.Catalog.SetByCode(variant.Set); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: printing %s references unknown set %s", c.FullName(), variant.Identifier, variant.Set))
		}
		if !strings.HasPrefix(strings.ToUpper(variant.Identifier), strings.ToUpper(variant.Set)) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: identifier %s does not carry its set code %s", c.FullName(), variant.Identifier, variant.Set))
		}
	}
}

func (v *Validator) validateSets() {
	for _, s := range v.Catalog.Sets() {
		if s.ReleaseDate == "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("set %s: no release date", s.Code))
		}
		if (s.FirstID == "") != (s.LastID == "") {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("set %s: identifier range is half-open (%q..%q)", s.Code, s.FirstID, s.LastID))
		}
	}
}
