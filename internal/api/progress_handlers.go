package api

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/vytor/wordgame/internal/errors"
	"github.com/vytor/wordgame/internal/models"
)

const maxProgressBodyBytes = 1 << 20

func (s *Server) handleRecordProgress(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAttempt(w, r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ProgressService.Record(r.Context(), req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// decodeAttempt reads the JSON body. A missing, null or empty object body is
// reported as "No data provided"; a score that is not an integer is a
// validation failure.
func decodeAttempt(w http.ResponseWriter, r *http.Request) (models.AttemptRequest, error) {
	var req models.AttemptRequest

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProgressBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return req, errors.NewBadRequestError("request body too large")
		}
		return req, errors.NewBadRequestError("could not read request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return req, errors.NewBadRequestError("No data provided")
	}

	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return req, errors.NewValidationError(typeErr.Field, "has the wrong type")
		}
		return req, errors.NewBadRequestError("invalid JSON body")
	}
	if req.Word == nil && req.Difficulty == nil && req.Score == nil {
		return req, errors.NewBadRequestError("No data provided")
	}
	return req, nil
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	entries, err := s.ProgressService.Recent(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entries)
}
