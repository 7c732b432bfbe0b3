package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/models"
	"github.com/vytor/wordgame/internal/services"
)

// WordCatalog is the read-only word source served by the API.
type WordCatalog interface {
	Difficulties() []string
	Categories() []string
	SelectWord(filter models.WordFilter) models.Word
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	Catalog         WordCatalog
	ProgressService services.ProgressService
	StatsService    services.StatsService
	Store           Pinger

	// StaticDir holds index.html and the /static assets. Empty disables both.
	StaticDir      string
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
