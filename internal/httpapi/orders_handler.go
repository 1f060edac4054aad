package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/orders"
)

type OrdersHandler struct {
	repo orders.Repository
}

func NewOrdersHandler(repo orders.Repository) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// List serves the whole order book, newest first. Admin only.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, &OrdersResponse{Orders: list})
}

// Mine serves the orders of the authenticated shopper's email.
func (h *OrdersHandler) Mine(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	list, err := h.repo.ListByEmail(r.Context(), session.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, &OrdersResponse{Orders: list})
}

type UpdateStatusRequestDTO struct {
	Status domain.OrderStatus `json:"status"`
}

// UpdateStatus flips an order between pending and completed. Admin
// only; an unknown id leaves the order book untouched.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !req.Status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_status", "status must be pending or completed")
		return
	}

	list, err := h.repo.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &OrdersResponse{Orders: list})
}

// Delete removes an order by id. Admin only.
func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	list, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &OrdersResponse{Orders: list})
}
