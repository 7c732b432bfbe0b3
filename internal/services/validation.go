package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vytor/wordgame/internal/errors"
	"github.com/vytor/wordgame/internal/models"
)

// Column widths of game_progress.
const (
	maxWordLength       = 100
	maxDifficultyLength = 20
)

// ValidateAttempt turns a decoded request into an Attempt. A nil or blank
// word or difficulty, or a nil score, is a missing field; a zero score is not.
func ValidateAttempt(req models.AttemptRequest) (models.Attempt, error) {
	if req.Word == nil || strings.TrimSpace(*req.Word) == "" {
		return models.Attempt{}, errors.NewValidationError("word", "missing field")
	}
	if req.Difficulty == nil || strings.TrimSpace(*req.Difficulty) == "" {
		return models.Attempt{}, errors.NewValidationError("difficulty", "missing field")
	}
	if req.Score == nil {
		return models.Attempt{}, errors.NewValidationError("score", "missing field")
	}

	word := strings.TrimSpace(*req.Word)
	difficulty := strings.TrimSpace(*req.Difficulty)
	if utf8.RuneCountInString(word) > maxWordLength {
		return models.Attempt{}, errors.NewValidationError("word", fmt.Sprintf("longer than %d characters", maxWordLength))
	}
	if utf8.RuneCountInString(difficulty) > maxDifficultyLength {
		return models.Attempt{}, errors.NewValidationError("difficulty", fmt.Sprintf("longer than %d characters", maxDifficultyLength))
	}

	if *req.Score < models.MinScore || *req.Score > models.MaxScore {
		return models.Attempt{}, errors.NewValidationError("score", fmt.Sprintf("must be between %d and %d", models.MinScore, models.MaxScore))
	}

	return models.Attempt{Word: word, Difficulty: difficulty, Score: *req.Score}, nil
}
