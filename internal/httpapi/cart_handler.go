package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/idir2023/argan-project/internal/cart"
	"github.com/idir2023/argan-project/internal/catalog"
	"github.com/idir2023/argan-project/internal/domain"
)

type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Service
}

func NewCartHandler(carts *cart.Manager, catalog *catalog.Service) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total int64             `json:"total"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, status int, items []domain.CartItem) {
	if items == nil {
		items = []domain.CartItem{}
	}
	respondJSON(w, status, &CartResponse{Items: items, Total: cart.Total(items)})
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	h.respondCart(w, http.StatusOK, h.carts.Items(sessionID))
}

// AddItem puts one unit of the product in the session cart, by
// reference to the live catalog.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	products, err := h.catalog.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var product *domain.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	items := h.carts.Add(sessionID, *product)
	h.respondCart(w, http.StatusCreated, items)
}

// UpdateQuantity applies a signed delta to the item; reaching zero
// removes it.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items := h.carts.UpdateQuantity(sessionID, productID, req.Delta)
	h.respondCart(w, http.StatusOK, items)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	items := h.carts.Remove(sessionID, productID)
	h.respondCart(w, http.StatusOK, items)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	h.carts.Clear(sessionID)
	h.respondCart(w, http.StatusOK, nil)
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "product_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return id, true
}
