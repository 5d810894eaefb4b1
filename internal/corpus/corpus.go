// Package corpus persists and parses the question→results dataset produced
// by one bulk-search run.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"company-research/internal/search"
)

// Entry pairs one research question with its search results, in the order
// the questions were asked.
type Entry struct {
	Question string
	Results  []search.Result
}

// Corpus is the ordered question→results mapping from one bulk-search run.
// It serializes as a single JSON object whose key order is the question
// order; a plain Go map would lose that order, so marshaling is custom.
type Corpus struct {
	Entries []Entry
}

func (c *Corpus) Add(question string, results []search.Result) {
	c.Entries = append(c.Entries, Entry{Question: question, Results: results})
}

func (c Corpus) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Question)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		results := e.Results
		if results == nil {
			results = []search.Result{}
		}
		val, err := json.Marshal(results)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Corpus) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("corpus: expected JSON object, got %v", tok)
	}

	c.Entries = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		question, ok := tok.(string)
		if !ok {
			return fmt.Errorf("corpus: expected string key, got %v", tok)
		}
		var results []search.Result
		if err := dec.Decode(&results); err != nil {
			return fmt.Errorf("corpus: decoding results for %q: %w", question, err)
		}
		c.Entries = append(c.Entries, Entry{Question: question, Results: results})
	}
	return nil
}

// NormalizeCompany derives the storage key for a company name: whitespace
// collapses to single underscores. "Acme Corp" and "acme corp" stay distinct
// on purpose; the key is an identity, not a canonical form.
func NormalizeCompany(company string) string {
	return strings.Join(strings.Fields(company), "_")
}

// Store writes and reads corpus files under a single directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store { return &Store{Dir: dir} }

const timestampLayout = "20060102_150405"

// Save serializes the whole corpus to <key>_<timestamp>.json in one write
// and returns the file path.
func (s *Store) Save(company string, c *Corpus) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating corpus dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.json", NormalizeCompany(company), time.Now().Format(timestampLayout))
	path := filepath.Join(s.Dir, filename)

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling corpus: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing corpus: %w", err)
	}
	return path, nil
}

// Load reads a corpus file back, preserving question order.
func (s *Store) Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	return &c, nil
}
