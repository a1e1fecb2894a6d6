package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/interleave"
	"github.com/heartmarshall/bireader/internal/service/translation"
	"github.com/heartmarshall/bireader/internal/transport/dataloader"
)

// maxTextBodyBytes admits MaxTextLength runes of four-byte UTF-8.
const maxTextBodyBytes = 4*domain.MaxTextLength + 1

// maxURLBodyBytes bounds the body of an import request.
const maxURLBodyBytes = 8 << 10

// translationService defines the minimal interface needed by TranslationHandler.
type translationService interface {
	Translate(ctx context.Context, input translation.TranslateInput) (*domain.TranslationRecord, error)
	ImportURL(ctx context.Context, input translation.ImportURLInput) (*domain.TranslationRecord, error)
	List(ctx context.Context, input translation.ListInput) ([]domain.TranslationRecord, error)
	Get(ctx context.Context, id int64) (*domain.TranslationRecord, error)
	Delete(ctx context.Context, id int64) error
}

// TranslationHandler serves translation REST endpoints.
type TranslationHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc translationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{svc: svc, log: logger.With("handler", "translation")}
}

// List handles GET /api/translations.
func (h *TranslationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := intParam(q.Get("offset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	records, err := h.svc.List(r.Context(), translation.ListInput{
		Language: q.Get("language"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// Create handles POST /api/newtranslation. The body is the raw text.
func (h *TranslationHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxTextBodyBytes))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Translate(r.Context(), translation.TranslateInput{Text: string(body)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// ImportURL handles POST /api/newtranslation/url. The body is the raw URL.
func (h *TranslationHandler) ImportURL(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxURLBodyBytes))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.ImportURL(r.Context(), translation.ImportURLInput{URL: string(body)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Get handles GET /api/translations/{id}.
func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/translations/{id}.
func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Interleaved handles GET /api/translations/{id}/interleaved. With
// definitions=1 the meanings of every hoverable word are included.
func (h *TranslationHandler) Interleaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := interleave.Document{
		Translation: *rec,
		Pairs:       interleave.BuildView(*rec),
	}

	if r.URL.Query().Get("definitions") == "1" {
		defs, err := dataloader.FromContext(r.Context()).Definitions(r.Context(), interleave.LookupKeys(resp.Pairs))
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		resp.Definitions = defs
	}

	writeJSON(w, http.StatusOK, resp)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
