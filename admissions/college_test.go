package admissions

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCollege(t *testing.T, name string, capacity int, prefs ...string) *College {
	t.Helper()
	c, err := NewCollege(name, capacity, prefs)
	require.NoError(t, err)
	return c
}

func TestCollege_IsFull(t *testing.T) {
	c := mustCollege(t, "MIT", 2, "Alice", "Bob", "Charlie")
	assert.False(t, c.IsFull())
	assert.Equal(t, Outcome{Decision: Accepted}, c.Consider("Alice"))
	assert.False(t, c.IsFull())
	assert.Equal(t, Outcome{Decision: Accepted}, c.Consider("Bob"))
	assert.True(t, c.IsFull())
}

func TestCollege_Prefers(t *testing.T) {
	c := mustCollege(t, "MIT", 2, "Alice", "Bob", "Charlie")
	assert.True(t, c.Prefers("Alice", "Bob"))
	assert.False(t, c.Prefers("Charlie", "Bob"))

	harvard := mustCollege(t, "Harvard", 2, "Bob", "Alice", "Charlie")
	assert.True(t, harvard.Prefers("Bob", "Alice"))
}

func TestCollege_ConsiderEvictsWeakest(t *testing.T) {
	c := mustCollege(t, "MIT", 2, "Alice", "Bob", "Charlie")
	c.Consider("Charlie")
	c.Consider("Bob")
	assert.Equal(t, []string{"Bob", "Charlie"}, c.Accepted())

	outcome := c.Consider("Alice")
	assert.Equal(t, Outcome{Decision: AcceptedWithEviction, Evicted: "Charlie"}, outcome)
	assert.Equal(t, []string{"Alice", "Bob"}, c.Accepted())
	assert.True(t, c.IsFull())
	weakest, ok := c.Weakest()
	assert.True(t, ok)
	assert.Equal(t, "Bob", weakest)
}

func TestCollege_ConsiderRejectsWeaker(t *testing.T) {
	c := mustCollege(t, "Stanford", 1, "Bob", "Charlie", "Alice")
	c.Consider("Charlie")
	assert.Equal(t, Outcome{Decision: Rejected}, c.Consider("Alice"))
	assert.Equal(t, []string{"Charlie"}, c.Accepted())
}

func TestCollege_ConsiderRejectsUnranked(t *testing.T) {
	c := mustCollege(t, "Stanford", 3, "Bob")
	assert.Equal(t, Outcome{Decision: Rejected}, c.Consider("Mallory"))
	assert.Empty(t, c.Accepted())
	_, ok := c.Weakest()
	assert.False(t, ok)
}

func TestCollege_AcceptedStaysInPreferenceOrder(t *testing.T) {
	c := mustCollege(t, "MIT", 4, "A", "B", "C", "D")
	for _, s := range []string{"C", "A", "D", "B"} {
		c.Consider(s)
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, c.Accepted())
	assert.Equal(t, "MIT(4/4): [A B C D]", c.String())
}

func TestNewCollege_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := NewCollege("MIT", capacity, []string{"Alice"})
		require.Error(t, err)
		assert.Equal(t, ErrInvalidCapacity, errors.Cause(err))
	}
}

func TestNewCollege_DuplicatePreference(t *testing.T) {
	_, err := NewCollege("MIT", 1, []string{"Alice", "Alice"})
	require.Error(t, err)
	assert.Equal(t, ErrDuplicateName, errors.Cause(err))
}

func TestNewCollege_EmptyName(t *testing.T) {
	_, err := NewCollege("", 1, []string{"Alice"})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidName, errors.Cause(err))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Rejected", Outcome{}.String())
	assert.Equal(t, "AcceptedWithEviction:Bob",
		Outcome{Decision: AcceptedWithEviction, Evicted: "Bob"}.String())
}
