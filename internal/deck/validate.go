package deck

import (
	"fmt"

	"github.com/arcanaland/runebinder/internal/card"
)

// IsValid checks the deck against its format's rules and reports the first
// failure. Checks run in a fixed order so the reason is stable: known
// format, hero, main deck size, copy ceiling, banned cards, then pile
// composition. Hero legality can be skipped for formats played with
// out-of-format heroes.
func (d *Deck) IsValid(ignoreHeroLegality bool) (bool, string) {
	rules, known := formats[d.Format]
	if !known {
		return false, fmt.Sprintf("unknown format %q", string(d.Format))
	}

	if reason := d.checkHero(rules); reason != "" {
		return false, reason
	}
	if reason := d.checkSize(rules); reason != "" {
		return false, reason
	}
	if reason := d.checkCopies(rules); reason != "" {
		return false, reason
	}
	if reason := d.checkBanned(ignoreHeroLegality); reason != "" {
		return false, reason
	}
	if reason := d.checkComposition(rules); reason != "" {
		return false, reason
	}
	return true, ""
}

func (d *Deck) checkHero(rules formatRules) string {
	if d.Hero == nil {
		return "deck has no hero"
	}
	if !d.Hero.IsHero() {
		return fmt.Sprintf("%s is not a hero card", d.Hero.FullName())
	}
	switch rules.hero {
	case youngHero:
		if !d.Hero.IsYoung() {
			return fmt.Sprintf("%s requires a young hero, %s is not one", d.Format.Name(), d.Hero.FullName())
		}
	case adultHero:
		if d.Hero.IsYoung() {
			return fmt.Sprintf("%s requires an adult hero, %s is young", d.Format.Name(), d.Hero.FullName())
		}
	}
	return ""
}

func (d *Deck) checkSize(rules formatRules) string {
	n := d.Cards.Len()
	if rules.mainMin > 0 && n < rules.mainMin {
		return fmt.Sprintf("main deck has %d cards, %s requires at least %d", n, d.Format.Name(), rules.mainMin)
	}
	if rules.mainMax > 0 && n > rules.mainMax {
		return fmt.Sprintf("main deck has %d cards, %s allows at most %d", n, d.Format.Name(), rules.mainMax)
	}
	if rules.totalMax > 0 {
		total := d.AllCards(false).Len()
		if total > rules.totalMax {
			return fmt.Sprintf("deck has %d cards in total, %s allows at most %d", total, d.Format.Name(), rules.totalMax)
		}
	}
	return ""
}

func (d *Deck) checkCopies(rules formatRules) string {
	if rules.maxCopies == 0 {
		return ""
	}
	for name, count := range d.Cards.Counts() {
		if count > rules.maxCopies {
			return fmt.Sprintf("%d copies of %s, %s allows at most %d", count, name, d.Format.Name(), rules.maxCopies)
		}
	}
	return ""
}

func (d *Deck) checkBanned(ignoreHeroLegality bool) string {
	for _, c := range d.AllCards(true).Cards() {
		if c.IsHero() && ignoreHeroLegality {
			continue
		}
		if !c.IsLegal(string(d.Format)) {
			return fmt.Sprintf("%s is banned in %s", c.FullName(), d.Format.Name())
		}
	}
	return ""
}

func (d *Deck) checkComposition(rules formatRules) string {
	if rules.invMax > 0 && d.Inventory.Len() > rules.invMax {
		return fmt.Sprintf("inventory has %d cards, %s allows at most %d", d.Inventory.Len(), d.Format.Name(), rules.invMax)
	}
	for _, c := range d.Inventory.Cards() {
		if !c.IsEquipment() && !c.IsWeapon() {
			return fmt.Sprintf("%s is not equipment or a weapon, it cannot live in the inventory", c.FullName())
		}
	}
	for _, c := range d.Cards.Cards() {
		switch {
		case c.IsHero():
			return fmt.Sprintf("%s is a hero, it cannot live in the main deck", c.FullName())
		case c.IsEquipment() || c.IsWeapon():
			return fmt.Sprintf("%s belongs in the inventory, not the main deck", c.FullName())
		case c.IsToken():
			return fmt.Sprintf("%s is a token, it cannot live in the main deck", c.FullName())
		}
		if rules.commonOnly && !hasCommonPrinting(c) {
			return fmt.Sprintf("%s has no common printing, %s decks use commons only", c.FullName(), d.Format.Name())
		}
	}
	for _, c := range d.Tokens.Cards() {
		if !c.IsToken() {
			return fmt.Sprintf("%s is not a token card", c.FullName())
		}
	}
	if reason := d.checkCompatibility(); reason != "" {
		return reason
	}
	return ""
}

// checkCompatibility enforces the class rule: every non-generic card in the
// deck must share a class or talent type with the hero.
func (d *Deck) checkCompatibility() string {
	heroTypes := d.Hero.ClassTypes()
	check := func(c *card.Card) string {
		if c.IsGeneric() || c.IsToken() {
			return ""
		}
		for _, t := range c.ClassTypes() {
			for _, h := range heroTypes {
				if t == h {
					return ""
				}
			}
		}
		return fmt.Sprintf("%s does not match %s's classes %v", c.FullName(), d.Hero.FullName(), heroTypes)
	}
	for _, c := range d.Inventory.Cards() {
		if reason := check(c); reason != "" {
			return reason
		}
	}
	for _, c := range d.Cards.Cards() {
		if reason := check(c); reason != "" {
			return reason
		}
	}
	return ""
}

func hasCommonPrinting(c *card.Card) bool {
	for _, r := range c.Rarities {
		if r == "C" {
			return true
		}
	}
	return false
}
