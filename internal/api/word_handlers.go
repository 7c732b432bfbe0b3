package api

import (
	"net/http"
	"strings"

	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/models"
)

type wordResponse struct {
	models.Word
	AudioEnabled bool `json:"audio_enabled"`
}

func (s *Server) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, nonNil(s.Catalog.Difficulties()))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, nonNil(s.Catalog.Categories()))
}

// handleWord returns a random word. Unknown filter values fall back to the
// whole catalog rather than failing.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	filter := models.WordFilter{
		Difficulty: strings.TrimSpace(r.URL.Query().Get("difficulty")),
		Category:   strings.TrimSpace(r.URL.Query().Get("category")),
	}

	word := s.Catalog.SelectWord(filter)
	logger.FromContext(r.Context()).Debug("selected word %q (difficulty=%q category=%q)", word.Text, filter.Difficulty, filter.Category)

	if word.Syllables == nil {
		word.Syllables = []string{}
	}
	writeJSON(w, r, http.StatusOK, wordResponse{Word: word, AudioEnabled: true})
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
