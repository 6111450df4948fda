package facts

import (
	"encoding/json"
	"errors"
	"net/http"

	"animal-facts/internal/middleware"
	"animal-facts/internal/platform/logger"
	"animal-facts/internal/ports/provider"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/fact", getFactHandler(svc, log))
}

type factResponse struct {
	Fact   string `json:"fact"`
	Animal string `json:"animal"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// getFactHandler godoc
// @Summary      Obtiene un fact de un animal
// @Description  Resuelve el selector (cat, dog, o any para sorteo) y consulta el provider upstream correspondiente.
// @Tags         facts
// @Produce      json
// @Param        animal  query     string  true  "Selector de animal (case-insensitive; 'any' sortea uno)"
// @Success      200     {object}  factResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /fact [get]
func getFactHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fact, err := svc.Resolve(r.Context(), r.URL.Query().Get("animal"))
		if err != nil {
			respondError(w, r, log, statusFor(err), err)
			return
		}

		respondOK(w, r, log, fact)
	}
}

// statusFor mapea la taxonomía de errores a status HTTP.
// Mapeo total: errores de validación => 400 (el caller puede corregir),
// cualquier falla de provider o no clasificada => 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingAnimal),
		errors.Is(err, ErrSelectorTooLong),
		errors.Is(err, ErrUnsupportedAnimal):
		return http.StatusBadRequest

	case errors.Is(err, provider.ErrAPIRequest),
		errors.Is(err, provider.ErrAPIResponse),
		errors.Is(err, provider.ErrToText),
		errors.Is(err, provider.ErrDeserialization):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

func respondOK(w http.ResponseWriter, r *http.Request, log logger.Logger, f Fact) {
	payload := factResponse{
		Fact:   f.Text,
		Animal: f.Animal.String(),
	}

	log.Info("animal fact resolved", logger.Fields{
		"request_id": middleware.GetRequestID(r.Context()),
		"fact":       payload.Fact,
		"animal":     payload.Animal,
	})

	writeJSON(w, http.StatusOK, payload)
}

func respondError(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, err error) {
	log.Error("animal fact failed", logger.Fields{
		"request_id": middleware.GetRequestID(r.Context()),
		"status":     status,
		"error":      err.Error(),
	})

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
