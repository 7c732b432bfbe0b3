package models

import (
	"errors"
	"math"
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Scores and totals are stored in 32-bit integer columns.
const (
	MinScore = math.MinInt32
	MaxScore = math.MaxInt32
)

// ErrTotalScoreOverflow is returned by Apply when the running total would
// leave the storable range.
var ErrTotalScoreOverflow = errors.New("total score out of range")

// Statistics is the singleton aggregate over every recorded attempt.
type Statistics struct {
	TotalScore      int       `json:"total_score"`
	WordsCompleted  int       `json:"words_completed"`
	EasyCompleted   int       `json:"easy_completed"`
	MediumCompleted int       `json:"medium_completed"`
	HardCompleted   int       `json:"hard_completed"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Apply folds one attempt into the counters. Difficulties other than
// easy, medium and hard only move the totals. s is left untouched when the
// new total would overflow.
func (s *Statistics) Apply(a Attempt, at time.Time) error {
	total := int64(s.TotalScore) + int64(a.Score)
	if total < MinScore || total > MaxScore {
		return ErrTotalScoreOverflow
	}
	s.TotalScore = int(total)
	s.WordsCompleted++
	switch a.Difficulty {
	case DifficultyEasy:
		s.EasyCompleted++
	case DifficultyMedium:
		s.MediumCompleted++
	case DifficultyHard:
		s.HardCompleted++
	}
	s.LastUpdated = at
	return nil
}
