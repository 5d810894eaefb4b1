package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-research/internal/search"
)

func TestNormalizeCompany(t *testing.T) {
	assert.Equal(t, "Acme_Corp", NormalizeCompany("Acme Corp"))
	assert.Equal(t, "Acme_Corp", NormalizeCompany("  Acme   Corp "))
	assert.Equal(t, "Acme", NormalizeCompany("Acme"))
}

func TestCorpusRoundTripPreservesOrder(t *testing.T) {
	// deliberately not in lexical order: a map-based corpus would reorder
	c := &Corpus{}
	c.Add("Zeta question?", []search.Result{{URL: "u1", Title: "t1", Content: "c1"}})
	c.Add("Alpha question?", []search.Result{})
	c.Add("Mid question?", []search.Result{{URL: "u2", Title: "t2"}, {URL: "u3", Title: "t3"}})

	store := NewStore(t.TempDir())
	path, err := store.Save("Acme Corp", c)
	require.NoError(t, err)

	filename := filepath.Base(path)
	assert.Regexp(t, regexp.MustCompile(`^Acme_Corp_\d{8}_\d{6}\.json$`), filename)

	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 3)
	assert.Equal(t, "Zeta question?", loaded.Entries[0].Question)
	assert.Equal(t, "Alpha question?", loaded.Entries[1].Question)
	assert.Equal(t, "Mid question?", loaded.Entries[2].Question)
	assert.Equal(t, c.Entries[0].Results, loaded.Entries[0].Results)
	assert.Len(t, loaded.Entries[2].Results, 2)
}

func TestCorpusMarshalsAsPlainObject(t *testing.T) {
	c := &Corpus{}
	c.Add("Q1?", []search.Result{{URL: "u", Title: "t", Content: "c"}})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	// the wire format stays a plain question→results object
	var generic map[string][]map[string]string
	require.NoError(t, json.Unmarshal(data, &generic))
	require.Contains(t, generic, "Q1?")
	assert.Equal(t, "u", generic["Q1?"][0]["url"])
}

func TestLoadMissingFileFails(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load(filepath.Join(store.Dir, "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformedCorpusFails(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not","an","object"]`), 0o644))

	_, err := store.Load(path)
	require.Error(t, err)
}
