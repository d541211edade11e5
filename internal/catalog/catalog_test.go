package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardFeed = `[
  {
    "name": "Sharpen Steel",
    "pitch": 3,
    "cost": 1,
    "defense": 2,
    "type_text": "Generic Action",
    "types": ["Generic", "Action"],
    "sets": ["WTR"],
    "identifiers": ["WTR159"],
    "rarities": ["C"]
  },
  {
    "name": "Sharpen Steel",
    "pitch": 2,
    "cost": 1,
    "defense": 2,
    "type_text": "Generic Action",
    "types": ["Generic", "Action"],
    "sets": ["WTR"],
    "identifiers": ["WTR158"],
    "rarities": ["C"]
  },
  {
    "name": "Chane",
    "health": 20,
    "intellect": 4,
    "type_text": "Shadow Runeblade Hero - Young",
    "types": ["Shadow", "Runeblade", "Hero", "Young"],
    "sets": ["MON"],
    "identifiers": ["MON154"],
    "rarities": ["T"]
  }
]`

const setFeed = `[
  {
    "code": "WTR",
    "name": "Welcome to Rathe",
    "release_date": "2019/10/11",
    "first_id": "WTR000",
    "last_id": "WTR225"
  },
  {
    "code": "MON",
    "name": "Monarch",
    "release_date": "2021/05/07",
    "first_id": "MON000",
    "last_id": "MON306"
  }
]`

func writeFeeds(t *testing.T, cards, sets string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cardPath := filepath.Join(dir, "cards.json")
	setPath := filepath.Join(dir, "sets.json")
	require.NoError(t, os.WriteFile(cardPath, []byte(cards), 0644))
	require.NoError(t, os.WriteFile(setPath, []byte(sets), 0644))
	return cardPath, setPath
}

func TestLoad(t *testing.T) {
	cardPath, setPath := writeFeeds(t, cardFeed, setFeed)

	cat, err := Load(cardPath, setPath)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Cards().Len())
	assert.Len(t, cat.Sets(), 2)
}

func TestCardLookups(t *testing.T) {
	cardPath, setPath := writeFeeds(t, cardFeed, setFeed)
	cat, err := Load(cardPath, setPath)
	require.NoError(t, err)

	c, err := cat.CardByName("Sharpen Steel (2)")
	require.NoError(t, err)
	p, _ := c.Pitch.Int()
	assert.Equal(t, 2, p)

	// Bare names resolve to the first pitch variant the feed listed.
	c, err = cat.CardByName("Sharpen Steel")
	require.NoError(t, err)
	p, _ = c.Pitch.Int()
	assert.Equal(t, 3, p)

	c, err = cat.CardByIdentifier("mon154")
	require.NoError(t, err)
	assert.Equal(t, "Chane", c.Name)

	_, err = cat.CardByName("Nonexistent Card")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "card", nf.Kind)
}

func TestSetLookups(t *testing.T) {
	cardPath, setPath := writeFeeds(t, cardFeed, setFeed)
	cat, err := Load(cardPath, setPath)
	require.NoError(t, err)

	s, err := cat.SetByCode("wtr")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Rathe", s.Name)

	released, ok := s.Released()
	require.True(t, ok)
	assert.Equal(t, 2019, released.Year())

	s, err = cat.SetByName("monarch")
	require.NoError(t, err)
	assert.Equal(t, "MON", s.Code)

	_, err = cat.SetByCode("XYZ")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestLoadRejectsMisalignedPrintings(t *testing.T) {
	bad := `[
  {
    "name": "Broken Card",
    "type_text": "Generic Action",
    "types": ["Generic", "Action"],
    "sets": ["WTR"],
    "identifiers": ["WTR001", "WTR002"],
    "rarities": ["C"]
  }
]`
	cardPath, setPath := writeFeeds(t, bad, setFeed)

	_, err := Load(cardPath, setPath)
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Contains(t, dfe.Error(), "misaligned")
}

func TestLoadRejectsDuplicates(t *testing.T) {
	dup := `[
  {
    "name": "Twin",
    "pitch": 1,
    "type_text": "Generic Action",
    "types": ["Generic", "Action"],
    "sets": ["WTR"],
    "identifiers": ["WTR010"],
    "rarities": ["C"]
  },
  {
    "name": "Twin",
    "pitch": 1,
    "type_text": "Generic Action",
    "types": ["Generic", "Action"],
    "sets": ["WTR"],
    "identifiers": ["WTR011"],
    "rarities": ["C"]
  }
]`
	cardPath, setPath := writeFeeds(t, dup, setFeed)

	_, err := Load(cardPath, setPath)
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Contains(t, dfe.Error(), "duplicate")
}

func TestLoadRejectsBadJSON(t *testing.T) {
	cardPath, setPath := writeFeeds(t, "{not json", setFeed)

	_, err := Load(cardPath, setPath)
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
}

func TestLoadRejectsBadSetDate(t *testing.T) {
	badSets := `[{"code": "WTR", "name": "Welcome to Rathe", "release_date": "October 2019"}]`
	cardPath, setPath := writeFeeds(t, cardFeed, badSets)

	_, err := Load(cardPath, setPath)
	var dfe *DataFormatError
	require.ErrorAs(t, err, &dfe)
	assert.Contains(t, dfe.Error(), "release date")
}

func TestLoadWithoutSetFeed(t *testing.T) {
	cardPath, _ := writeFeeds(t, cardFeed, setFeed)

	cat, err := Load(cardPath, "")
	require.NoError(t, err)
	assert.Empty(t, cat.Sets())
}
