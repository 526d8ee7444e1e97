package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/gamesim/admissions"
	"github.com/timpalpant/gamesim/pdg"
)

const testScenario = `
colleges:
  - name: Yale
    capacity: 1
    preferences: [Dana, Eli]
students:
  - name: Dana
    preferences: [Yale]
  - name: Eli
    preferences: [Yale]
`

func TestDefault_Market(t *testing.T) {
	g, err := Default().Market()
	require.NoError(t, err)

	result := g.DeferredAcceptance()
	assert.Equal(t, admissions.Matching{
		"Alice":   "MIT",
		"Bob":     "MIT",
		"Charlie": "Harvard",
	}, result.Matching)
}

func TestDefault_Dilemma(t *testing.T) {
	d := Default().Dilemma
	require.NotNil(t, d)
	assert.Equal(t, 2, d.NumActions())
	assert.Equal(t, pdg.DefaultRounds, d.NumRounds())

	alice, bob, err := d.TablePlayers()
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.Name())
	assert.Equal(t, "Bob", bob.Name())
	assert.Equal(t, -3, alice.Payoff(pdg.Cooperate, pdg.Defect))
	assert.Equal(t, 0, bob.Payoff(pdg.Cooperate, pdg.Defect))
	assert.Equal(t, "tit_for_tat", d.Players[0].Strategy)
}

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(testScenario))
	require.NoError(t, err)
	assert.Nil(t, s.Dilemma)

	g, err := s.Market()
	require.NoError(t, err)
	result := g.DeferredAcceptance()
	assert.Equal(t, admissions.Matching{"Dana": "Yale"}, result.Matching)
	assert.Equal(t, []string{"Eli"}, result.Unmatched)
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Colleges)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("colleges:\n  - name: MIT\n    seats: 2\n"))
	assert.Error(t, err)
}

func TestMarket_InvalidCapacity(t *testing.T) {
	s := &Scenario{Colleges: []College{{Name: "MIT", Capacity: 0}}}
	_, err := s.Market()
	require.Error(t, err)
	assert.Equal(t, admissions.ErrInvalidCapacity, errors.Cause(err))
}

func TestDilemma_WrongNumberOfPlayers(t *testing.T) {
	d := &Dilemma{Players: []Player{{Name: "Alice", Payoffs: pdg.DefaultPayoffs}}}
	_, _, err := d.TablePlayers()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "market.yaml")
	require.NoError(t, os.WriteFile(plain, []byte(testScenario), 0644))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(testScenario))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	compressed := filepath.Join(dir, "market.yaml.gz")
	require.NoError(t, os.WriteFile(compressed, buf.Bytes(), 0644))

	for _, filename := range []string{plain, compressed} {
		s, err := Load(filename)
		require.NoError(t, err, filename)
		assert.Len(t, s.Colleges, 1)
		assert.Len(t, s.Students, 2)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadMatching(t *testing.T) {
	m := admissions.Matching{"Alice": "MIT", "Bob": "MIT", "Charlie": "Harvard"}
	filename := filepath.Join(t.TempDir(), "matching.gob.gz")
	require.NoError(t, SaveMatching(filename, m))

	loaded, err := LoadMatching(filename)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestReadMatching_NotGzip(t *testing.T) {
	_, err := ReadMatching(strings.NewReader("not gzip"))
	assert.Error(t, err)
}
