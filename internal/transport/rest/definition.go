package rest

import (
	"context"
	"log/slog"
	"net/http"
)

type definitionService interface {
	Lookup(ctx context.Context, word string) ([]string, error)
}

// DefinitionHandler serves word lookups for the hover popup.
type DefinitionHandler struct {
	svc definitionService
	log *slog.Logger
}

// NewDefinitionHandler creates a DefinitionHandler.
func NewDefinitionHandler(svc definitionService, logger *slog.Logger) *DefinitionHandler {
	return &DefinitionHandler{svc: svc, log: logger.With("handler", "definition")}
}

// Lookup handles GET /api/definitions/{word}. Unknown words yield an empty
// array with 200.
func (h *DefinitionHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	meanings, err := h.svc.Lookup(r.Context(), r.PathValue("word"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if meanings == nil {
		meanings = []string{}
	}

	writeJSON(w, http.StatusOK, meanings)
}
