package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/starford/jyotish/internal/apperr"
	"github.com/starford/jyotish/internal/astro"
	"github.com/starford/jyotish/internal/profile"
)

// isValidationError reports whether err stems from input validation rather
// than an internal failure.
func isValidationError(err error) bool {
	var ve validation.Errors
	var eo validation.ErrorObject
	return errors.As(err, &ve) || errors.As(err, &eo) ||
		errors.Is(err, profile.ErrInvalid) ||
		errors.Is(err, astro.ErrUnsupportedVarga) ||
		errors.Is(err, astro.ErrEmptyInput)
}

// decodeChartRequest parses the body and resolves the birth reference.
// On failure it writes the error response and returns false.
func (h *Handler) decodeChartRequest(w http.ResponseWriter, r *http.Request) (ChartRequest, astro.BirthData, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return req, astro.BirthData{}, false
	}
	birth, ok := h.resolveBirth(w, r, req.BirthRef)
	return req, birth, ok
}

// resolveBirth turns a BirthRef into birth data, reading from the vault
// when a profile path is given.
func (h *Handler) resolveBirth(w http.ResponseWriter, r *http.Request, ref BirthRef) (astro.BirthData, bool) {
	switch {
	case ref.Profile != "":
		b, err := h.svc.Birth(r.Context(), ref.Profile)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				writeJSON(w, http.StatusNotFound, errorBody("profile not found: "+ref.Profile))
			} else {
				slog.Error("resolve profile failed", slog.String("path", ref.Profile), slog.String("error", err.Error()))
				writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
			}
			return astro.BirthData{}, false
		}
		return *b, true
	case ref.Birth != nil:
		return *ref.Birth, true
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("either 'birth' or 'profile' is required"))
		return astro.BirthData{}, false
	}
}

// writeChartError maps computation errors to status codes.
func writeChartError(w http.ResponseWriter, op string, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	slog.Error(op+" failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
}

// NatalChart handles POST /api/charts/natal.
func (h *Handler) NatalChart(w http.ResponseWriter, r *http.Request) {
	_, birth, ok := h.decodeChartRequest(w, r)
	if !ok {
		return
	}
	chart, err := astro.NatalChart(birth)
	if err != nil {
		writeChartError(w, "natal chart", err)
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

// VargaChart handles POST /api/charts/varga.
func (h *Handler) VargaChart(w http.ResponseWriter, r *http.Request) {
	req, birth, ok := h.decodeChartRequest(w, r)
	if !ok {
		return
	}
	natal, err := astro.NatalChart(birth)
	if err != nil {
		writeChartError(w, "varga chart", err)
		return
	}
	chart, err := astro.Varga(natal, req.Varga)
	if err != nil {
		writeChartError(w, "varga chart", err)
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

// Dashas handles POST /api/charts/dashas.
func (h *Handler) Dashas(w http.ResponseWriter, r *http.Request) {
	req, birth, ok := h.decodeChartRequest(w, r)
	if !ok {
		return
	}
	levels := req.Levels
	if levels == 0 {
		levels = 3
	}
	periods, err := astro.VimshottariDashas(birth, levels)
	if err != nil {
		writeChartError(w, "dashas", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dashas": periods})
}

// Ashtakavarga handles POST /api/charts/ashtakavarga. An optional varga
// divisor computes the scores over a divisional chart instead of D1.
func (h *Handler) Ashtakavarga(w http.ResponseWriter, r *http.Request) {
	req, birth, ok := h.decodeChartRequest(w, r)
	if !ok {
		return
	}
	chart, err := astro.NatalChart(birth)
	if err != nil {
		writeChartError(w, "ashtakavarga", err)
		return
	}
	if req.Varga > 1 {
		if chart, err = astro.Varga(chart, req.Varga); err != nil {
			writeChartError(w, "ashtakavarga", err)
			return
		}
	}
	data, err := astro.Ashtakavarga(chart)
	if err != nil {
		writeChartError(w, "ashtakavarga", err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// Shadbala handles POST /api/charts/shadbala.
func (h *Handler) Shadbala(w http.ResponseWriter, r *http.Request) {
	_, birth, ok := h.decodeChartRequest(w, r)
	if !ok {
		return
	}
	data, err := astro.Shadbala(birth)
	if err != nil {
		writeChartError(w, "shadbala", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"shadbala": data})
}

// Yogas handles POST /api/charts/yogas.
func (h *Handler) Yogas(w http.ResponseWriter, r *http.Request) {
	_, birth, ok := h.decodeChartRequest(w, r)
	if !ok {
		return
	}
	chart, err := astro.NatalChart(birth)
	if err != nil {
		writeChartError(w, "yogas", err)
		return
	}
	yogas, err := astro.DetectYogas(chart)
	if err != nil {
		writeChartError(w, "yogas", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"yogas": yogas})
}

// Varshaphala handles POST /api/charts/varshaphala.
func (h *Handler) Varshaphala(w http.ResponseWriter, r *http.Request) {
	req, birth, ok := h.decodeChartRequest(w, r)
	if !ok {
		return
	}
	data, err := astro.Varshaphala(birth, req.Year)
	if err != nil {
		writeChartError(w, "varshaphala", err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// Compatibility handles POST /api/compatibility.
func (h *Handler) Compatibility(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	p1, ok := h.resolveBirth(w, r, req.Partner1)
	if !ok {
		return
	}
	p2, ok := h.resolveBirth(w, r, req.Partner2)
	if !ok {
		return
	}
	data, err := astro.Compatibility(p1, p2)
	if err != nil {
		writeChartError(w, "compatibility", err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
