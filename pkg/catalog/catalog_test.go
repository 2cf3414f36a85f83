package catalog

import (
	"testing"
	"time"

	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOutOfStock(t *testing.T) {
	c := New([]Medicine{{Name: "Amoxicillin", Stock: 0}})

	m, found := c.Lookup("amox")
	require.True(t, found)
	assert.Equal(t, "Amoxicillin", m.Name)
	assert.False(t, m.InStock())
}

func TestLookupFirstMatchWins(t *testing.T) {
	c := New([]Medicine{
		{ID: "1", Name: "Vitamin C", Stock: 0},
		{ID: "2", Name: "Vitamin D", Stock: 10},
	})

	m, found := c.Lookup("vitamin")
	require.True(t, found)
	assert.Equal(t, "1", m.ID)
}

func TestLookupNotFound(t *testing.T) {
	_, found := NewDefault().Lookup("ibuprofen")
	assert.False(t, found)
}

func TestLookupEmptyQueryMatchesFirstEntry(t *testing.T) {
	m, found := NewDefault().Lookup("")
	require.True(t, found)
	assert.Equal(t, "MED-001", m.ID)
}

func TestDefaultCatalogStock(t *testing.T) {
	c := NewDefault()

	m, found := c.Lookup("PARACETAMOL")
	require.True(t, found)
	assert.True(t, m.InStock())
	assert.Equal(t, 450, m.Stock)

	m, found = c.Lookup("omepra")
	require.True(t, found)
	assert.False(t, m.InStock())
}

func TestEntriesIsACopy(t *testing.T) {
	c := NewDefault()
	entries := c.Entries()
	entries[0].Stock = 999

	m, _ := c.Lookup("amoxicillin")
	assert.Equal(t, 0, m.Stock)
}

func TestSearch(t *testing.T) {
	c := NewDefault()

	assert.Len(t, c.Search(""), 6)
	assert.Len(t, c.Search("multiple approved"), 2)

	byGeneric := c.Search("acetaminophen")
	require.Len(t, byGeneric, 1)
	assert.Equal(t, "Paracetamol", byGeneric[0].Name)

	byRegulatory := c.Search("fda-ant")
	require.Len(t, byRegulatory, 2)
	assert.Equal(t, "Amoxicillin", byRegulatory[0].Name)
	assert.Equal(t, "Ciprofloxacin", byRegulatory[1].Name)

	assert.Empty(t, c.Search("nothing here"))
}

func TestAccessGate(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	codes := []string{"12345678", "87654321"}
	gate := NewAccessGate(time.UTC)
	gate.now = func() time.Time { return now }
	gate.newCode = func() string {
		c := codes[0]
		codes = codes[1:]
		return c
	}

	day, code := gate.TodayCode()
	assert.Equal(t, "2024-01-15", day)
	assert.Equal(t, "12345678", code)

	_, again := gate.TodayCode()
	assert.Equal(t, code, again, "code is stable within a day")

	assert.ErrorIs(t, gate.Unlock("user-1", "00000000"), domain.ErrInvalidAccessCode)
	assert.False(t, gate.IsUnlocked("user-1"))

	require.NoError(t, gate.Unlock("user-1", "12345678"))
	assert.True(t, gate.IsUnlocked("user-1"))
	assert.False(t, gate.IsUnlocked("user-2"))

	now = now.Add(24 * time.Hour)
	_, next := gate.TodayCode()
	assert.Equal(t, "87654321", next)
	assert.ErrorIs(t, gate.Unlock("user-2", "12345678"), domain.ErrInvalidAccessCode)

	gate.Lock("user-1")
	assert.False(t, gate.IsUnlocked("user-1"))
}

func TestRandomCodeIsEightDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := randomCode()
		assert.Len(t, code, 8)
		assert.NotEqual(t, '0', rune(code[0]))
	}
}
