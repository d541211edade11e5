package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/runebinder/internal/card"
)

// Catalog is the loaded card database: every known card and set, with
// lookup indices by full name, bare name, printing identifier, and set
// code. Catalogs are built once by Load and read-only afterwards; callers
// that need one are handed it explicitly rather than reaching for a global.
type Catalog struct {
	cards []*card.Card
	sets  []*CardSet

	byFullName   map[string]*card.Card
	byName       map[string][]*card.Card
	byIdentifier map[string]*card.Card
	setByCode    map[string]*CardSet
}

// Load reads the card and set feeds and builds the catalog. Structural
// problems — unparseable JSON, invalid cards, duplicate identifiers —
// return a DataFormatError; a catalog either loads whole or not at all.
func Load(cardFeed, setFeed string) (*Catalog, error) {
	cat := &Catalog{
		byFullName:   map[string]*card.Card{},
		byName:       map[string][]*card.Card{},
		byIdentifier: map[string]*card.Card{},
		setByCode:    map[string]*CardSet{},
	}
	if err := cat.loadCards(cardFeed); err != nil {
		return nil, err
	}
	if setFeed != "" {
		if err := cat.loadSets(setFeed); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func (cat *Catalog) loadCards(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read card feed: %w", err)
	}
	var cards []*card.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return &DataFormatError{Source: path, Detail: err.Error()}
	}
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return &DataFormatError{Source: path, Detail: err.Error()}
		}
		full := c.FullName()
		if _, dup := cat.byFullName[full]; dup {
			return &DataFormatError{Source: path, Detail: fmt.Sprintf("duplicate card %q", full)}
		}
		cat.byFullName[full] = c
		cat.byName[c.Name] = append(cat.byName[c.Name], c)
		for _, id := range c.Identifiers {
			key := strings.ToUpper(id)
			if _, dup := cat.byIdentifier[key]; dup {
				return &DataFormatError{Source: path, Detail: fmt.Sprintf("identifier %s printed on two cards", id)}
			}
			cat.byIdentifier[key] = c
		}
		cat.cards = append(cat.cards, c)
	}
	return nil
}

func (cat *Catalog) loadSets(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read set feed: %w", err)
	}
	var sets []*CardSet
	if err := json.Unmarshal(data, &sets); err != nil {
		return &DataFormatError{Source: path, Detail: err.Error()}
	}
	for _, s := range sets {
		if err := s.validate(); err != nil {
			return &DataFormatError{Source: path, Detail: err.Error()}
		}
		key := strings.ToUpper(s.Code)
		if _, dup := cat.setByCode[key]; dup {
			return &DataFormatError{Source: path, Detail: fmt.Sprintf("duplicate set code %s", s.Code)}
		}
		cat.setByCode[key] = s
		cat.sets = append(cat.sets, s)
	}
	return nil
}

// Cards returns every card in the catalog, in feed order, as a queryable
// list.
func (cat *Catalog) Cards() *card.List {
	return card.NewList(cat.cards...)
}

// Sets returns every set in the catalog, in feed order.
func (cat *Catalog) Sets() []*CardSet {
	return cat.sets
}

// CardByName looks a card up by full name ("Sharpen Steel (3)"), falling
// back to the bare name. A bare name shared by several pitch variants
// resolves to the first one the feed listed.
func (cat *Catalog) CardByName(name string) (*card.Card, error) {
	if c, ok := cat.byFullName[name]; ok {
		return c, nil
	}
	if cs := cat.byName[name]; len(cs) > 0 {
		return cs[0], nil
	}
	return nil, &NotFoundError{Kind: "card", Key: name}
}

// CardByIdentifier looks a card up by any of its printing identifiers,
// case-insensitively.
func (cat *Catalog) CardByIdentifier(id string) (*card.Card, error) {
	if c, ok := cat.byIdentifier[strings.ToUpper(id)]; ok {
		return c, nil
	}
	return nil, &NotFoundError{Kind: "card", Key: id}
}

// SetByCode looks a set up by its code, case-insensitively.
func (cat *Catalog) SetByCode(code string) (*CardSet, error) {
	if s, ok := cat.setByCode[strings.ToUpper(code)]; ok {
		return s, nil
	}
	return nil, &NotFoundError{Kind: "set", Key: code}
}

// SetByName looks a set up by its printed name, case-insensitively.
func (cat *Catalog) SetByName(name string) (*CardSet, error) {
	for _, s := range cat.sets {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, &NotFoundError{Kind: "set", Key: name}
}
