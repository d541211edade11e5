package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/runebinder/internal/card"
	"github.com/arcanaland/runebinder/internal/catalog"
)

func chane() *card.Card {
	return &card.Card{
		Name: "Chane", Health: card.Number(20), Intellect: card.Number(4),
		TypeText: "Shadow Runeblade Hero - Young",
		Types:    []string{"Shadow", "Runeblade", "Hero", "Young"},
		Sets:     []string{"MON"}, Identifiers: []string{"MON154"}, Rarities: []string{"T"},
	}
}

func bravo() *card.Card {
	return &card.Card{
		Name: "Bravo, Showstopper", Health: card.Number(40), Intellect: card.Number(4),
		TypeText: "Guardian Hero - Adult",
		Types:    []string{"Guardian", "Hero", "Adult"},
		Sets:     []string{"WTR"}, Identifiers: []string{"WTR001"}, Rarities: []string{"T"},
	}
}

func action(name string, pitch, cost int, types ...string) *card.Card {
	id := fmt.Sprintf("TST%03d", len(name)*7+pitch)
	return &card.Card{
		Name: name, Pitch: card.Number(pitch), Cost: card.Number(cost),
		TypeText: "Action", Types: types,
		Sets: []string{"TST"}, Identifiers: []string{id}, Rarities: []string{"C"},
	}
}

func equipment(name, slot string, types ...string) *card.Card {
	return &card.Card{
		Name: name, Defense: card.Number(1),
		TypeText: "Equipment - " + slot,
		Types:    append(types, "Equipment", slot),
		Sets:     []string{"TST"}, Identifiers: []string{"TST" + name[:3]}, Rarities: []string{"C"},
	}
}

func runebladeAction(name string, pitch int) *card.Card {
	return action(name, pitch, 1, "Runeblade", "Action", "Attack")
}

func TestAddCardRouting(t *testing.T) {
	d := New("test", Blitz, chane())

	require.NoError(t, d.AddCard(runebladeAction("Rift Bind", 1), 2))
	assert.Equal(t, 2, d.Cards.Len())

	fold := equipment("Ebon Fold", "Head", "Shadow")
	require.NoError(t, d.AddCard(fold, 1))
	require.NoError(t, d.AddCard(fold, 1))
	assert.Equal(t, 1, d.Inventory.Len(), "inventory deduplicates")

	token := &card.Card{
		Name: "Soul Shackle", TypeText: "Token", Types: []string{"Shadow", "Runeblade", "Token"},
		Sets: []string{"MON"}, Identifiers: []string{"MON156"}, Rarities: []string{"T"},
	}
	require.NoError(t, d.AddCard(token, 1))
	assert.Equal(t, 1, d.Tokens.Len())
}

func TestAddCardRejections(t *testing.T) {
	d := New("test", Blitz, chane())

	err := d.AddCard(bravo(), 1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	err = d.AddCard(runebladeAction("Rift Bind", 1), 0)
	require.ErrorAs(t, err, &verr)
	err = d.AddCard(runebladeAction("Rift Bind", 1), -3)
	require.ErrorAs(t, err, &verr)
}

func TestIsValidRejectsUnknownFormat(t *testing.T) {
	d := New("test", Format("X"), bravo())
	require.NoError(t, d.AddCard(action("Lone Hammer", 1, 2, "Guardian", "Action", "Attack"), 1))
	ok, reason := d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, `unknown format "X"`)

	// Decks resolved from bare .txt lists start with no format at all.
	d = New("test", "", bravo())
	ok, reason = d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "unknown format")
}

func TestIsValidHeroAgeByFormat(t *testing.T) {
	// Ultimate Pit Fight has no hero-age rule: both heroes get past the
	// hero check and fail later, or not at all.
	d := New("upf young", UltimatePitFight, chane())
	ok, reason := d.IsValid(false)
	assert.True(t, ok, reason)

	d = New("upf adult", UltimatePitFight, bravo())
	ok, reason = d.IsValid(false)
	assert.True(t, ok, reason)

	// Classic Constructed still insists on an adult hero.
	d = New("cc young", ClassicConstructed, chane())
	ok, reason = d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "adult hero")
}

func TestIsValidReportsFirstFailure(t *testing.T) {
	// An adult hero in Blitz fails on the hero before deck size.
	d := New("test", Blitz, bravo())
	ok, reason := d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "young hero")

	// An empty Chane deck fails on main deck size.
	d = New("test", Blitz, chane())
	ok, reason = d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "main deck")
}

func fillMain(t *testing.T, d *Deck, target, maxCopies int) {
	t.Helper()
	i := 0
	for d.Cards.Len() < target {
		c := runebladeAction(fmt.Sprintf("Filler %d", i), i%3+1)
		n := maxCopies
		if left := target - d.Cards.Len(); left < n {
			n = left
		}
		require.NoError(t, d.AddCard(c, n))
		i++
	}
}

func TestIsValidBlitz(t *testing.T) {
	d := New("test", Blitz, chane())
	fillMain(t, d, 40, 2)
	ok, reason := d.IsValid(false)
	assert.True(t, ok, reason)

	// One card over the exact size fails.
	require.NoError(t, d.AddCard(runebladeAction("Overflow", 1), 1))
	ok, reason = d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "at most 40")
}

func TestIsValidCopyCeiling(t *testing.T) {
	d := New("test", Blitz, chane())
	require.NoError(t, d.AddCard(runebladeAction("Rift Bind", 1), 3))
	fillMain(t, d, 40, 2)

	ok, reason := d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "3 copies")
}

func TestIsValidBannedCard(t *testing.T) {
	d := New("test", Blitz, chane())
	banned := runebladeAction("Forbidden Rite", 1)
	banned.Legality = map[string]bool{"B": false}
	require.NoError(t, d.AddCard(banned, 2))
	fillMain(t, d, 40, 2)

	ok, reason := d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "banned")
}

func TestIsValidClassCompatibility(t *testing.T) {
	d := New("test", Blitz, chane())
	require.NoError(t, d.AddCard(action("Crippling Crush", 1, 7, "Guardian", "Action", "Attack"), 2))
	fillMain(t, d, 40, 2)

	ok, reason := d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "classes")
}

func TestIsValidGenericAllowed(t *testing.T) {
	d := New("test", Blitz, chane())
	require.NoError(t, d.AddCard(action("Sink Below", 1, 0, "Generic", "Defense", "Reaction"), 2))
	fillMain(t, d, 40, 2)

	ok, reason := d.IsValid(false)
	assert.True(t, ok, reason)
}

func TestIsValidCommoner(t *testing.T) {
	d := New("test", Commoner, chane())
	majestic := runebladeAction("Rare Power", 1)
	majestic.Rarities = []string{"M"}
	require.NoError(t, d.AddCard(majestic, 2))
	fillMain(t, d, 40, 2)

	ok, reason := d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "common")
}

func TestIsValidClassicConstructed(t *testing.T) {
	d := New("test", ClassicConstructed, bravo())
	for i := 0; i < 20; i++ {
		require.NoError(t, d.AddCard(action(fmt.Sprintf("Hammer %d", i), i%3+1, 2, "Guardian", "Action", "Attack"), 3))
	}
	ok, reason := d.IsValid(false)
	assert.True(t, ok, reason)

	// Push the total over 80 with seven more triples.
	for i := 0; i < 7; i++ {
		require.NoError(t, d.AddCard(action(fmt.Sprintf("Anvil %d", i), i%3+1, 2, "Guardian", "Action", "Attack"), 3))
	}
	ok, reason = d.IsValid(false)
	assert.False(t, ok)
	assert.Contains(t, reason, "in total")
}

func TestIsValidIgnoreHeroLegality(t *testing.T) {
	hero := chane()
	hero.Legality = map[string]bool{"B": false}
	d := New("test", Blitz, hero)
	fillMain(t, d, 40, 2)

	ok, _ := d.IsValid(false)
	assert.False(t, ok)
	ok, reason := d.IsValid(true)
	assert.True(t, ok, reason)
}

func TestToDeckListOrder(t *testing.T) {
	d := New("test", Blitz, chane())
	require.NoError(t, d.AddCard(equipment("Ebon Fold", "Head", "Shadow"), 1))
	expensive := runebladeAction("Finale", 1)
	expensive.Cost = card.Number(5)
	require.NoError(t, d.AddCard(expensive, 1))
	cheap := runebladeAction("Opener", 2)
	cheap.Cost = card.Number(0)
	require.NoError(t, d.AddCard(cheap, 2))

	entries := d.ToDeckList(false)
	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Count: 1, Name: "Chane"}, entries[0])
	assert.Equal(t, Entry{Count: 1, Name: "Ebon Fold"}, entries[1])
	assert.Equal(t, Entry{Count: 2, Name: "Opener (2)"}, entries[2])
	assert.Equal(t, Entry{Count: 1, Name: "Finale (1)"}, entries[3])
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cards := []*card.Card{
		chane(),
		equipment("Ebon Fold", "Head", "Shadow"),
		runebladeAction("Rift Bind", 1),
		runebladeAction("Seeds of Agony", 2),
		action("Sink Below", 1, 0, "Generic", "Defense", "Reaction"),
	}
	data, err := card.NewList(cards...).MarshalJSON()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	cat, err := catalog.Load(path, "")
	require.NoError(t, err)
	return cat
}

func TestFromDeckList(t *testing.T) {
	cat := testCatalog(t)
	entries := []Entry{
		{Count: 1, Name: "Chane"},
		{Count: 1, Name: "Ebon Fold"},
		{Count: 2, Name: "Rift Bind (1)"},
		{Count: 2, Name: "Seeds of Agony (2)"},
	}
	d, err := FromDeckList(cat, "chane blitz", Blitz, entries)
	require.NoError(t, err)
	assert.Equal(t, "Chane", d.Hero.Name)
	assert.Equal(t, 1, d.Inventory.Len())
	assert.Equal(t, 4, d.Cards.Len())

	_, err = FromDeckList(cat, "bad", Blitz, []Entry{{Count: 1, Name: "Missing Card"}})
	var nf *catalog.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestTextRoundTrip(t *testing.T) {
	cat := testCatalog(t)
	d := New("chane blitz", Blitz, chane())
	fold, err := cat.CardByName("Ebon Fold")
	require.NoError(t, err)
	require.NoError(t, d.AddCard(fold, 1))
	rift, err := cat.CardByName("Rift Bind (1)")
	require.NoError(t, err)
	require.NoError(t, d.AddCard(rift, 2))

	path := filepath.Join(t.TempDir(), "deck.txt")
	require.NoError(t, d.SaveFile(path))

	got, err := LoadFile(path, cat)
	require.NoError(t, err)
	assert.Equal(t, "Chane", got.Hero.Name)
	assert.Equal(t, d.Cards.Counts(), got.Cards.Counts())
	assert.Equal(t, d.Inventory.Counts(), got.Inventory.Counts())
}

func TestJSONRoundTrip(t *testing.T) {
	d := New("chane blitz", Blitz, chane())
	require.NoError(t, d.AddCard(equipment("Ebon Fold", "Head", "Shadow"), 1))
	require.NoError(t, d.AddCard(runebladeAction("Rift Bind", 1), 2))

	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, d.SaveFile(path))

	got, err := LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, d.Name, got.Name)
	assert.Equal(t, d.Format, got.Format)
	assert.Equal(t, "Chane", got.Hero.Name)
	assert.Equal(t, d.Cards.Counts(), got.Cards.Counts())
}

func TestDeckListParsing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	content := "# my deck\n1 Chane\n\n2 Rift Bind (1)\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := readDeckList(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Count: 1, Name: "Chane"}, entries[0])
	assert.Equal(t, Entry{Count: 2, Name: "Rift Bind (1)"}, entries[1])

	require.NoError(t, os.WriteFile(path, []byte("not a deck line\n"), 0644))
	_, err = readDeckList(path)
	require.Error(t, err)
}
