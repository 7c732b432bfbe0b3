package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/wordgame/internal/errors"
	"github.com/vytor/wordgame/internal/models"
	"github.com/vytor/wordgame/internal/testutil"
)

func TestValidateAttempt(t *testing.T) {
	str := testutil.StringPtr
	num := testutil.IntPtr

	tests := []struct {
		name      string
		req       models.AttemptRequest
		wantField string
		want      models.Attempt
	}{
		{
			name: "valid",
			req:  models.AttemptRequest{Word: str("cat"), Difficulty: str("easy"), Score: num(5)},
			want: models.Attempt{Word: "cat", Difficulty: "easy", Score: 5},
		},
		{
			name: "zero score is present",
			req:  models.AttemptRequest{Word: str("cat"), Difficulty: str("easy"), Score: num(0)},
			want: models.Attempt{Word: "cat", Difficulty: "easy", Score: 0},
		},
		{
			name: "negative score accepted",
			req:  models.AttemptRequest{Word: str("cat"), Difficulty: str("hard"), Score: num(-2)},
			want: models.Attempt{Word: "cat", Difficulty: "hard", Score: -2},
		},
		{
			name: "unknown difficulty accepted",
			req:  models.AttemptRequest{Word: str("cat"), Difficulty: str("expert"), Score: num(1)},
			want: models.Attempt{Word: "cat", Difficulty: "expert", Score: 1},
		},
		{
			name: "surrounding whitespace trimmed",
			req:  models.AttemptRequest{Word: str("  cat "), Difficulty: str(" easy"), Score: num(1)},
			want: models.Attempt{Word: "cat", Difficulty: "easy", Score: 1},
		},
		{
			name: "largest storable score",
			req:  models.AttemptRequest{Word: str("cat"), Difficulty: str("easy"), Score: num(models.MaxScore)},
			want: models.Attempt{Word: "cat", Difficulty: "easy", Score: models.MaxScore},
		},
		{
			name:      "score above column range",
			req:       models.AttemptRequest{Word: str("cat"), Difficulty: str("easy"), Score: num(models.MaxScore + 1)},
			wantField: "score",
		},
		{
			name:      "score below column range",
			req:       models.AttemptRequest{Word: str("cat"), Difficulty: str("easy"), Score: num(models.MinScore - 1)},
			wantField: "score",
		},
		{
			name:      "missing word",
			req:       models.AttemptRequest{Difficulty: str("easy"), Score: num(5)},
			wantField: "word",
		},
		{
			name:      "blank word",
			req:       models.AttemptRequest{Word: str("   "), Difficulty: str("easy"), Score: num(5)},
			wantField: "word",
		},
		{
			name:      "missing difficulty",
			req:       models.AttemptRequest{Word: str("cat"), Score: num(5)},
			wantField: "difficulty",
		},
		{
			name:      "empty difficulty",
			req:       models.AttemptRequest{Word: str("cat"), Difficulty: str(""), Score: num(5)},
			wantField: "difficulty",
		},
		{
			name:      "missing score",
			req:       models.AttemptRequest{Word: str("cat"), Difficulty: str("easy")},
			wantField: "score",
		},
		{
			name:      "word too long",
			req:       models.AttemptRequest{Word: str(strings.Repeat("a", maxWordLength+1)), Difficulty: str("easy"), Score: num(1)},
			wantField: "word",
		},
		{
			name:      "difficulty too long",
			req:       models.AttemptRequest{Word: str("cat"), Difficulty: str(strings.Repeat("x", maxDifficultyLength+1)), Score: num(1)},
			wantField: "difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAttempt(tt.req)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
			assert.Contains(t, appErr.Message, tt.wantField)
		})
	}
}
