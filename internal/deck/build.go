package deck

import (
	"strings"

	"github.com/arcanaland/runebinder/internal/card"
)

// inventorySlots is the order equipment slots are filled when auto-building:
// a weapon first, then armor head to chest.
var inventorySlots = []string{"Weapon", "Head", "Legs", "Arms", "Chest"}

// defaultInventoryTarget bounds the inventory for formats without a limit.
const defaultInventoryTarget = 11

// defaultMainTarget is the main-deck size aimed for when the format sets
// no minimum.
const defaultMainTarget = 40

// FilterRelated returns the cards in the pool a hero's deck may use: cards
// sharing a class or talent type with the hero, plus generics. Tokens pass
// the same rule. Heroes are dropped; format limits are not applied here.
func FilterRelated(hero *card.Card, pool *card.List) *card.List {
	heroTypes := hero.ClassTypes()
	related := card.NewList()
	for _, c := range pool.Cards() {
		if c.IsHero() {
			continue
		}
		if c.IsGeneric() || typesOverlap(c.ClassTypes(), heroTypes) {
			related.Add(c)
		}
	}
	return related
}

func typesOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// AutoBuild assembles a deck for the hero from the pool, greedily and
// deterministically: pool order is precedence, so the same pool always
// yields the same deck. Equipment slots are filled first (weapon, then
// head/legs/arms/chest, then whatever fits), then the main deck up to the
// format's target size honoring copy limits and a cap on generic cards
// (pass a negative maxGenericCount for the default of a fifth of the
// target). With honorCounts each pool entry is one owned copy; without it
// every distinct card supplies as many copies as the format allows. Thin
// pools produce a short deck rather than an error; IsValid reports the
// shortfall.
func AutoBuild(name string, format Format, hero *card.Card, pool *card.List, honorCounts bool, maxGenericCount int) *Deck {
	d := New(name, format, hero)
	rules := format.rules()
	related := FilterRelated(hero, pool)

	mainTarget := rules.mainMin
	if mainTarget == 0 {
		mainTarget = defaultMainTarget
	}
	if maxGenericCount < 0 {
		maxGenericCount = mainTarget / 5
	}
	invTarget := rules.invMax
	if invTarget == 0 {
		invTarget = defaultInventoryTarget
	}
	maxCopies := rules.maxCopies
	if maxCopies == 0 {
		maxCopies = mainTarget
	}

	buildInventory(d, related, invTarget)
	buildMain(d, related, rules, honorCounts, mainTarget, maxCopies, maxGenericCount)
	attachTokens(d, pool)
	return d
}

// buildInventory fills one card per slot in slot order, then tops the
// inventory up with any remaining equipment or weapons.
func buildInventory(d *Deck, related *card.List, invTarget int) {
	taken := map[string]bool{}
	for _, slot := range inventorySlots {
		for _, c := range related.Cards() {
			if taken[c.FullName()] || !(c.IsEquipment() || c.IsWeapon()) {
				continue
			}
			if c.HasType(slot) {
				d.AddCard(c, 1)
				taken[c.FullName()] = true
				break
			}
		}
	}
	for _, c := range related.Cards() {
		if d.Inventory.Len() >= invTarget {
			break
		}
		if taken[c.FullName()] || !(c.IsEquipment() || c.IsWeapon()) {
			continue
		}
		d.AddCard(c, 1)
		taken[c.FullName()] = true
	}
}

func buildMain(d *Deck, related *card.List, rules formatRules, honorCounts bool, mainTarget, maxCopies, maxGenericCount int) {
	copies := map[string]int{}
	genericCount := 0
	for _, c := range related.Cards() {
		if d.Cards.Len() >= mainTarget {
			break
		}
		if c.IsEquipment() || c.IsWeapon() || c.IsToken() {
			continue
		}
		if rules.commonOnly && !hasCommonPrinting(c) {
			continue
		}
		full := c.FullName()
		if copies[full] >= maxCopies {
			continue
		}
		if c.IsGeneric() && genericCount >= maxGenericCount {
			continue
		}
		// Each pool entry is one copy when counts are honored; otherwise
		// the first entry supplies as many as the format allows.
		n := 1
		if !honorCounts {
			n = maxCopies
		}
		for i := 0; i < n && d.Cards.Len() < mainTarget && copies[full] < maxCopies; i++ {
			if c.IsGeneric() && genericCount >= maxGenericCount {
				break
			}
			d.AddCard(c, 1)
			copies[full]++
			if c.IsGeneric() {
				genericCount++
			}
		}
	}
}

// attachTokens adds pool tokens that any deck card mentions by name or
// grants as a keyword.
func attachTokens(d *Deck, pool *card.List) {
	deckCards := d.AllCards(false).Cards()
	for _, tok := range pool.Tokens().Cards() {
		if tokenReferenced(tok, deckCards) {
			d.AddCard(tok, 1)
		}
	}
}

func tokenReferenced(tok *card.Card, deckCards []*card.Card) bool {
	for _, c := range deckCards {
		if strings.Contains(c.Body, tok.Name) {
			return true
		}
		for _, kw := range c.GrantsKeywords {
			if kw == tok.Name {
				return true
			}
		}
		for _, kw := range c.Keywords {
			if kw == tok.Name {
				return true
			}
		}
	}
	return false
}
