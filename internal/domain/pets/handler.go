package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		// Acción de compra: deja la mascota como no disponible.
		pr.Post("/{petID}/purchase", purchasePetHandler(svc))
	})
}

// CreatePetRequest es el cuerpo de alta de una mascota.
type CreatePetRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	// Omitido = true (disponible al entrar al catálogo).
	Available *bool `json:"available"`
}

// UpdatePetRequest reemplaza todos los campos mutables (PUT completo).
type UpdatePetRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available *bool  `json:"available"`
}

// PetResponse es la representación wire de una mascota.
type PetResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}

// ErrorResponse envuelve el mensaje de error de cualquier respuesta != 2xx.
type ErrorResponse struct {
	Error string `json:"error"`
}

// listPetsHandler godoc
// @Summary Lista mascotas
// @Description Devuelve todas las mascotas, o las que coinciden exactamente con los filtros.
// @Tags pets
// @Produce json
// @Param name query string false "filtra por nombre exacto"
// @Param category query string false "filtra por categoría exacta"
// @Param available query boolean false "filtra por disponibilidad"
// @Success 200 {array} PetResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Filter
		q := r.URL.Query()
		if v := strings.TrimSpace(q.Get("name")); v != "" {
			f.Name = &v
		}
		if v := strings.TrimSpace(q.Get("category")); v != "" {
			f.Category = &v
		}
		if v := strings.TrimSpace(q.Get("available")); v != "" {
			b := parseAvailable(v)
			f.Available = &b
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]PetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtiene una mascota por ID
// @Tags pets
// @Produce json
// @Param petID path integer true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {object} ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePetID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crea una mascota
// @Description El ID lo asigna el storage; la respuesta incluye header Location.
// @Tags pets
// @Accept json
// @Produce json
// @Param pet body CreatePetRequest true "mascota a crear"
// @Success 201 {object} PetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isJSONRequest(r) {
			writeError(w, http.StatusUnsupportedMediaType, "content type must be application/json")
			return
		}

		var req CreatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Category:  req.Category,
			Available: req.Available,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "name and category are required")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/pets/%d", p.ID))
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualiza una mascota (reemplazo completo)
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path integer true "ID de la mascota"
// @Param pet body UpdatePetRequest true "campos mutables"
// @Success 200 {object} PetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isJSONRequest(r) {
			writeError(w, http.StatusUnsupportedMediaType, "content type must be application/json")
			return
		}

		id, err := parsePetID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}

		var req UpdatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Name,
			Category:  req.Category,
			Available: req.Available,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "name and category are required")
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "pet not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Elimina una mascota
// @Description Idempotente: borrar un ID inexistente también responde 204.
// @Tags pets
// @Param petID path integer true "ID de la mascota"
// @Success 204 "sin contenido"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePetID(r)
		if err != nil {
			// ID inválido = no existe; el delete sigue siendo no-op.
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// purchasePetHandler godoc
// @Summary Compra una mascota
// @Description Marca la mascota como no disponible. Comprarla dos veces es conflicto.
// @Tags pets
// @Produce json
// @Param petID path integer true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /pets/{petID}/purchase [post]
func purchasePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePetID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}

		p, err := svc.Purchase(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "pet not found")
			case errors.Is(err, ErrNotAvailable):
				writeError(w, http.StatusConflict, "pet already purchased")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func parsePetID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
}

// parseAvailable replica la semántica laxa del filtro original:
// true/1/t (case-insensitive) = disponible, cualquier otro valor = no.
func parseAvailable(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "t":
		return true
	default:
		return false
	}
}

func isJSONRequest(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func toPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Available: p.Available,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
