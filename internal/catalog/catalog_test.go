package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/wordgame/internal/catalog"
	"github.com/vytor/wordgame/internal/errors"
	"github.com/vytor/wordgame/internal/models"
)

func sampleWords() []models.Word {
	return []models.Word{
		{Text: "cat", Syllables: []string{"cat"}, Image: "cat.png", Difficulty: "easy", Category: "animals"},
		{Text: "dog", Syllables: []string{"dog"}, Image: "dog.png", Difficulty: "easy", Category: "animals"},
		{Text: "banana", Syllables: []string{"ba", "na", "na"}, Image: "banana.png", Difficulty: "medium", Category: "food"},
		{Text: "butterfly", Syllables: []string{"but", "ter", "fly"}, Image: "butterfly.png", Difficulty: "hard", Category: "animals"},
		{Text: "apple", Syllables: []string{"ap", "ple"}, Image: "apple.png", Difficulty: "easy"},
	}
}

func mustCatalog(t *testing.T, words []models.Word) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(words)
	require.NoError(t, err)
	return c
}

func TestDifficulties_Distinct(t *testing.T) {
	c := mustCatalog(t, sampleWords())
	assert.ElementsMatch(t, []string{"easy", "medium", "hard"}, c.Difficulties())
}

func TestCategories_SkipsEmpty(t *testing.T) {
	c := mustCatalog(t, sampleWords())
	assert.ElementsMatch(t, []string{"animals", "food"}, c.Categories())
}

func TestDifficulties_SkipsEmpty(t *testing.T) {
	c := mustCatalog(t, []models.Word{
		{Text: "cat", Syllables: []string{"cat"}, Difficulty: "easy"},
		{Text: "moon", Syllables: []string{"moon"}},
	})
	assert.Equal(t, []string{"easy"}, c.Difficulties())
	assert.Equal(t, 2, c.Len())

	w := c.SelectWord(models.WordFilter{Difficulty: "easy"})
	assert.Equal(t, "cat", w.Text)
}

func TestSelectWord_RespectsFilters(t *testing.T) {
	c := mustCatalog(t, sampleWords())

	for i := 0; i < 50; i++ {
		w := c.SelectWord(models.WordFilter{Difficulty: "easy", Category: "animals"})
		assert.Contains(t, []string{"cat", "dog"}, w.Text)

		w = c.SelectWord(models.WordFilter{Category: "food"})
		assert.Equal(t, "banana", w.Text)

		w = c.SelectWord(models.WordFilter{Difficulty: "hard"})
		assert.Equal(t, "butterfly", w.Text)
	}
}

func TestSelectWord_FallsBackToWholeCatalog(t *testing.T) {
	c := mustCatalog(t, []models.Word{
		{Text: "cat", Syllables: []string{"cat"}, Difficulty: "easy"},
		{Text: "dog", Syllables: []string{"dog"}, Difficulty: "easy"},
	})

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		w := c.SelectWord(models.WordFilter{Difficulty: "hard"})
		require.Contains(t, []string{"cat", "dog"}, w.Text)
		seen[w.Text] = true
	}
	assert.Len(t, seen, 2, "fallback should draw from every word")
}

func TestSelectWord_UnmatchedCombinationFallsBack(t *testing.T) {
	c := mustCatalog(t, sampleWords())

	w := c.SelectWord(models.WordFilter{Difficulty: "medium", Category: "animals"})
	assert.NotEmpty(t, w.Text)
}

func TestSelectWord_ReturnsCopy(t *testing.T) {
	c := mustCatalog(t, []models.Word{{Text: "cat", Syllables: []string{"cat"}, Difficulty: "easy"}})

	w := c.SelectWord(models.WordFilter{})
	w.Syllables[0] = "mutated"

	assert.Equal(t, "cat", c.SelectWord(models.WordFilter{}).Syllables[0])
}

func TestNew_RejectsInvalidWords(t *testing.T) {
	tests := []struct {
		name  string
		words []models.Word
	}{
		{name: "empty", words: nil},
		{name: "blank text", words: []models.Word{{Text: " ", Syllables: []string{"x"}}}},
		{name: "no syllables", words: []models.Word{{Text: "cat"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(tt.words)
			assert.True(t, errors.HasCode(err, errors.ErrCodeDataset), "got %v", err)
		})
	}
}

func TestParse_JSON(t *testing.T) {
	data := `{"words": [{"word": "tiger", "syllables": ["ti", "ger"], "image": "tiger.png", "difficulty": "medium", "category": "animals"}]}`

	c, err := catalog.Parse(strings.NewReader(data), catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	w := c.SelectWord(models.WordFilter{})
	assert.Equal(t, "tiger", w.Text)
	assert.Equal(t, []string{"ti", "ger"}, w.Syllables)
	assert.Equal(t, "tiger.png", w.Image)
}

func TestParse_YAML(t *testing.T) {
	data := `
words:
  - word: rabbit
    syllables: [rab, bit]
    image: rabbit.png
    difficulty: medium
  - word: elephant
    syllables: [el, e, phant]
    image: elephant.png
    difficulty: hard
    category: animals
`
	c, err := catalog.Parse(strings.NewReader(data), catalog.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.ElementsMatch(t, []string{"medium", "hard"}, c.Difficulties())
	assert.Equal(t, []string{"animals"}, c.Categories())
}

func TestParse_Malformed(t *testing.T) {
	_, err := catalog.Parse(strings.NewReader(`{"words": [`), catalog.FormatJSON)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataset))

	_, err = catalog.Parse(strings.NewReader(`{"words": []}`), catalog.FormatJSON)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataset))
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.yml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  - word: sun\n    syllables: [sun]\n    difficulty: easy\n"), 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"easy"}, c.Difficulties())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataset))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, catalog.FormatYAML, catalog.FormatFromPath("data/words.YAML"))
	assert.Equal(t, catalog.FormatYAML, catalog.FormatFromPath("words.yml"))
	assert.Equal(t, catalog.FormatJSON, catalog.FormatFromPath("words.json"))
	assert.Equal(t, catalog.FormatJSON, catalog.FormatFromPath("words"))
}
