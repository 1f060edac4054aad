package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/idir2023/argan-project/internal/checkout"
	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/notify"
)

type CheckoutHandler struct {
	service *checkout.Service

	// Confirmation channel endpoints for the success screen.
	whatsAppPhone string
	orderEmail    string
}

func NewCheckoutHandler(service *checkout.Service, whatsAppPhone, orderEmail string) *CheckoutHandler {
	return &CheckoutHandler{
		service:       service,
		whatsAppPhone: whatsAppPhone,
		orderEmail:    orderEmail,
	}
}

type CheckoutStateResponse struct {
	Step     checkout.Step          `json:"step"`
	Shipping checkout.ShippingInfo  `json:"shipping"`
	Method   checkout.PaymentMethod `json:"paymentMethod"`

	// Set once the flow has finished, so the success screen can be
	// rendered from a plain state fetch.
	Order *domain.Order `json:"order,omitempty"`
}

type SubmitResponse struct {
	Order        *domain.Order `json:"order"`
	WhatsAppLink string        `json:"whatsAppLink"`
	MailtoLink   string        `json:"mailtoLink"`
}

func (h *CheckoutHandler) state(c *checkout.Checkout) *CheckoutStateResponse {
	resp := &CheckoutStateResponse{
		Step:     c.Step(),
		Shipping: c.Shipping(),
		Method:   c.Payment().Method,
	}
	if resp.Step.IsTerminal() {
		resp.Order = c.Order()
	}
	return resp
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	c := h.service.Flow(sessionIDFromContext(r.Context()))
	respondJSON(w, http.StatusOK, h.state(c))
}

func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var info checkout.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c := h.service.Flow(sessionIDFromContext(r.Context()))
	if err := c.SubmitShipping(info); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.state(c))
}

func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var info checkout.PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c := h.service.Flow(sessionIDFromContext(r.Context()))
	if err := c.SubmitPayment(info); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.state(c))
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	c := h.service.Flow(sessionIDFromContext(r.Context()))
	if err := c.Back(); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.state(c))
}

// Edit serves the review screen's edit shortcuts back to shipping or
// payment.
func (h *CheckoutHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Step checkout.Step `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c := h.service.Flow(sessionIDFromContext(r.Context()))
	if err := c.Edit(req.Step); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.state(c))
}

// Submit places the order and returns the confirmation deep links for
// the success screen.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	order, err := h.service.Submit(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, &SubmitResponse{
		Order:        order,
		WhatsAppLink: notify.WhatsAppLink(*order, h.whatsAppPhone),
		MailtoLink:   notify.MailtoLink(*order, h.orderEmail),
	})
}

// Reset discards the flow after the success screen's return-to-start
// action. This is a view-level signal, not a re-entry into shipping.
func (h *CheckoutHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.service.Reset(sessionIDFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
