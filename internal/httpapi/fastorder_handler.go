package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/idir2023/argan-project/internal/catalog"
	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/notify"
	"github.com/idir2023/argan-project/internal/orders"
)

// Fast orders carry a fixed synthetic customer tail so they stay
// recognizable in the order book.
const (
	fastOrderLastName = "(طلب سريع)"
	fastOrderEmail    = "fast-order@argania.ma"
)

// FastOrderHandler places a one-item cash-on-delivery order straight
// from the product page, bypassing the cart and the checkout flow.
type FastOrderHandler struct {
	catalog *catalog.Service
	repo    orders.Repository

	whatsAppPhone string
	orderEmail    string
}

func NewFastOrderHandler(catalog *catalog.Service, repo orders.Repository, whatsAppPhone, orderEmail string) *FastOrderHandler {
	return &FastOrderHandler{
		catalog:       catalog,
		repo:          repo,
		whatsAppPhone: whatsAppPhone,
		orderEmail:    orderEmail,
	}
}

type FastOrderRequestDTO struct {
	ProductID int64  `json:"product_id"`
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Address   string `json:"address"`
}

type FastOrderResponse struct {
	Order        *domain.Order `json:"order"`
	WhatsAppLink string        `json:"whatsAppLink"`
	MailtoLink   string        `json:"mailtoLink"`
}

func (h *FastOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FastOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	verr := domain.NewValidationError()
	required := map[string]string{
		"firstName": req.FirstName,
		"phone":     req.Phone,
		"city":      req.City,
		"address":   req.Address,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			verr.Add(field, "required")
		}
	}
	if err := verr.ErrOrNil(); err != nil {
		handleServiceError(w, err)
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

	customer := domain.Customer{
		FirstName:     req.FirstName,
		LastName:      fastOrderLastName,
		Phone:         req.Phone,
		Email:         fastOrderEmail,
		Address:       req.Address,
		City:          req.City,
		PaymentMethod: "cod",
	}
	items := []domain.CartItem{{Product: product.Clone(), Quantity: 1}}

	order, err := h.repo.Create(r.Context(), items, customer, product.Price)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, &FastOrderResponse{
		Order:        order,
		WhatsAppLink: notify.FastOrderWhatsAppLink(*order, h.whatsAppPhone),
		MailtoLink:   notify.FastOrderMailtoLink(*order, h.orderEmail),
	})
}
