package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/idir2023/argan-project/internal/catalog"
	"github.com/idir2023/argan-project/internal/domain"
)

type ProductHandler struct {
	catalog *catalog.Service
}

func NewProductHandler(catalog *catalog.Service) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

// List serves the catalog, filtered when a q parameter is present.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		products []domain.Product
		err      error
	)
	if query == "" {
		products, err = h.catalog.List(r.Context())
	} else {
		products, err = h.catalog.Search(r.Context(), query)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products})
}

// Save inserts or updates a product. Admin only.
func (h *ProductHandler) Save(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	products, err := h.catalog.Save(r.Context(), product)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products})
}

// Delete removes a product by id. Admin only.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be a positive integer")
		return
	}

	products, errDelete := h.catalog.Delete(r.Context(), id)
	if errDelete != nil {
		handleServiceError(w, errDelete)
		return
	}

	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products})
}
