// Package catalog holds the read-only word dataset and answers filtered
// random-selection queries over it.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vytor/wordgame/internal/errors"
	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/models"
)

// Format is the encoding of a dataset file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the dataset encoding from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	words        []models.Word
	difficulties []string
	categories   []string
}

// Load reads and validates the dataset at path.
func Load(path string) (*Catalog, error) {
	log := logger.Default().WithPrefix("catalog")
	log.Info("loading word catalog: %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDatasetError(fmt.Sprintf("cannot open word dataset %s", path), err)
	}
	defer f.Close()

	c, err := Parse(f, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	log.Info("word catalog loaded: %d words, %d difficulties, %d categories",
		len(c.words), len(c.difficulties), len(c.categories))
	return c, nil
}

// Parse decodes a dataset from r.
func Parse(r io.Reader, format Format) (*Catalog, error) {
	var ds models.Dataset
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&ds)
	default:
		err = json.NewDecoder(r).Decode(&ds)
	}
	if err != nil {
		return nil, errors.NewDatasetError("malformed word dataset", err)
	}
	return New(ds.Words)
}

// New builds a catalog from words, copying the input.
func New(words []models.Word) (*Catalog, error) {
	if len(words) == 0 {
		return nil, errors.NewDatasetError("word dataset contains no words", nil)
	}

	c := &Catalog{words: make([]models.Word, 0, len(words))}
	difficulties := map[string]struct{}{}
	categories := map[string]struct{}{}

	for i, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			return nil, errors.NewDatasetError(fmt.Sprintf("word #%d has no text", i), nil)
		}
		if len(w.Syllables) == 0 {
			return nil, errors.NewDatasetError(fmt.Sprintf("word %q has no syllables", w.Text), nil)
		}
		w.Syllables = append([]string(nil), w.Syllables...)
		c.words = append(c.words, w)

		if w.Difficulty != "" {
			difficulties[w.Difficulty] = struct{}{}
		}
		if w.Category != "" {
			categories[w.Category] = struct{}{}
		}
	}

	c.difficulties = sortedKeys(difficulties)
	c.categories = sortedKeys(categories)
	return c, nil
}

// Len returns the number of words.
func (c *Catalog) Len() int {
	return len(c.words)
}

// Difficulties returns the distinct non-empty difficulty values present.
func (c *Catalog) Difficulties() []string {
	return append([]string(nil), c.difficulties...)
}

// Categories returns the distinct non-empty category values present.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// SelectWord picks a uniformly random word matching every non-empty filter
// field. When nothing matches it picks from the whole catalog instead.
func (c *Catalog) SelectWord(filter models.WordFilter) models.Word {
	candidates := c.filter(filter)
	if len(candidates) == 0 {
		candidates = c.words
	}
	w := candidates[rand.IntN(len(candidates))]
	w.Syllables = append([]string(nil), w.Syllables...)
	return w
}

func (c *Catalog) filter(f models.WordFilter) []models.Word {
	if f.Difficulty == "" && f.Category == "" {
		return c.words
	}
	var out []models.Word
	for _, w := range c.words {
		if f.Difficulty != "" && w.Difficulty != f.Difficulty {
			continue
		}
		if f.Category != "" && w.Category != f.Category {
			continue
		}
		out = append(out, w)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
