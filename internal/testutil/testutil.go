package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/wordgame/internal/db"
	"github.com/vytor/wordgame/internal/models"
)

// NewTestDB opens an in-memory SQLite database with all migrations applied.
// The dialect pins it to a single connection, so every query sees the same data.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Words returns a small catalog fixture covering every difficulty.
func Words() []models.Word {
	return []models.Word{
		{Text: "cat", Syllables: []string{"cat"}, Image: "/static/images/cat.png", Difficulty: "easy", Category: "animals"},
		{Text: "dog", Syllables: []string{"dog"}, Image: "/static/images/dog.png", Difficulty: "easy", Category: "animals"},
		{Text: "pencil", Syllables: []string{"pen", "cil"}, Image: "/static/images/pencil.png", Difficulty: "medium", Category: "school"},
		{Text: "elephant", Syllables: []string{"el", "e", "phant"}, Image: "/static/images/elephant.png", Difficulty: "hard", Category: "animals"},
	}
}

// StringPtr and IntPtr build AttemptRequest fields.
func StringPtr(s string) *string { return &s }
func IntPtr(i int) *int          { return &i }
