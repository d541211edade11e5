package deck

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arcanaland/runebinder/internal/card"
	"github.com/arcanaland/runebinder/internal/catalog"
)

// Deck is a playable deck: a hero, the equipment/weapon inventory, the main
// deck, and any token cards the deck generates. The main deck may hold
// duplicates; the inventory and token piles are deduplicated.
type Deck struct {
	Name   string `json:"name"`
	Format Format `json:"format"`

	Hero      *card.Card `json:"hero"`
	Cards     *card.List `json:"cards"`
	Inventory *card.List `json:"inventory"`
	Tokens    *card.List `json:"tokens"`
}

// New builds an empty deck for the given hero and format.
func New(name string, format Format, hero *card.Card) *Deck {
	return &Deck{
		Name:      name,
		Format:    format,
		Hero:      hero,
		Cards:     card.NewList(),
		Inventory: card.NewList(),
		Tokens:    card.NewList(),
	}
}

// AddCard routes a card to the pile its types dictate: tokens to the token
// pile, equipment and weapons to the inventory (both deduplicated), and
// everything else to the main deck count times. Heroes and non-positive
// counts are rejected.
func (d *Deck) AddCard(c *card.Card, count int) error {
	if count <= 0 {
		return &ValidationError{Card: c.FullName(), Reason: fmt.Sprintf("count must be positive, got %d", count)}
	}
	if c.IsHero() {
		return &ValidationError{Card: c.FullName(), Reason: "a deck has exactly one hero, set it on the deck instead"}
	}
	switch {
	case c.IsToken():
		addUnique(d.Tokens, c)
	case c.IsEquipment() || c.IsWeapon():
		addUnique(d.Inventory, c)
	default:
		for i := 0; i < count; i++ {
			d.Cards.Add(c)
		}
	}
	return nil
}

func addUnique(l *card.List, c *card.Card) {
	for _, have := range l.Cards() {
		if have.FullName() == c.FullName() {
			return
		}
	}
	l.Add(c)
}

// AllCards returns every card the deck uses: hero, inventory, main deck,
// and optionally tokens.
func (d *Deck) AllCards(includeTokens bool) *card.List {
	all := card.NewList()
	if d.Hero != nil {
		all.Add(d.Hero)
	}
	all.Add(d.Inventory.Cards()...)
	all.Add(d.Cards.Cards()...)
	if includeTokens {
		all.Add(d.Tokens.Cards()...)
	}
	return all
}

// Statistics summarizes the main deck's numeric fields.
func (d *Deck) Statistics() card.ListStats {
	return d.Cards.Statistics()
}

// Entry is one deck-list line: a count and a card full name.
type Entry struct {
	Count int
	Name  string
}

// ToDeckList renders the deck in presentation order: hero, inventory, then
// the main deck grouped by ascending cost (first-seen order within a cost),
// then tokens when requested.
func (d *Deck) ToDeckList(includeTokens bool) []Entry {
	var entries []Entry
	if d.Hero != nil {
		entries = append(entries, Entry{Count: 1, Name: d.Hero.FullName()})
	}
	for _, c := range d.Inventory.Cards() {
		entries = append(entries, Entry{Count: 1, Name: c.FullName()})
	}
	main := card.NewList(append([]*card.Card(nil), d.Cards.Cards()...)...)
	main.Sort("cost", false)
	counts := main.Counts()
	seen := map[string]bool{}
	for _, c := range main.Cards() {
		full := c.FullName()
		if seen[full] {
			continue
		}
		seen[full] = true
		entries = append(entries, Entry{Count: counts[full], Name: full})
	}
	if includeTokens {
		for _, c := range d.Tokens.Cards() {
			entries = append(entries, Entry{Count: 1, Name: c.FullName()})
		}
	}
	return entries
}

// FromDeckList builds a deck by resolving deck-list entries through the
// catalog. The first hero entry becomes the deck's hero; the rest route
// through AddCard.
func FromDeckList(cat *catalog.Catalog, name string, format Format, entries []Entry) (*Deck, error) {
	d := New(name, format, nil)
	for _, e := range entries {
		c, err := cat.CardByName(e.Name)
		if err != nil {
			return nil, err
		}
		if c.IsHero() {
			if d.Hero == nil {
				d.Hero = c
			}
			continue
		}
		if err := d.AddCard(c, e.Count); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// SaveFile writes the deck to path, as JSON for .json and as "count name"
// deck-list lines for .txt.
func (d *Deck) SaveFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode deck: %w", err)
		}
		return os.WriteFile(path, append(data, '\n'), 0644)
	case ".txt":
		var sb strings.Builder
		for _, e := range d.ToDeckList(true) {
			fmt.Fprintf(&sb, "%d %s\n", e.Count, e.Name)
		}
		return os.WriteFile(path, []byte(sb.String()), 0644)
	default:
		return fmt.Errorf("unsupported deck file extension %q (want .json or .txt)", filepath.Ext(path))
	}
}

// LoadFile reads a deck from path. JSON files carry full card records and
// need no catalog; .txt deck lists are resolved through the given catalog.
func LoadFile(path string, cat *catalog.Catalog) (*Deck, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read deck: %w", err)
		}
		d := New("", "", nil)
		if err := json.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("failed to parse deck %s: %w", path, err)
		}
		return d, nil
	case ".txt":
		if cat == nil {
			return nil, fmt.Errorf("a catalog is required to resolve a .txt deck list")
		}
		entries, err := readDeckList(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return FromDeckList(cat, name, "", entries)
	default:
		return nil, fmt.Errorf("unsupported deck file extension %q (want .json or .txt)", filepath.Ext(path))
	}
}

// readDeckList parses "count name" lines, skipping blanks and # comments.
func readDeckList(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck list: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		count, name, found := strings.Cut(line, " ")
		n, err := strconv.Atoi(count)
		if !found || err != nil {
			return nil, fmt.Errorf("%s:%d: want \"count card name\", got %q", path, lineNo, line)
		}
		entries = append(entries, Entry{Count: n, Name: strings.TrimSpace(name)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck list: %w", err)
	}
	return entries, nil
}
