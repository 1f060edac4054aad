package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/idir2023/argan-project/internal/auth"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Products  *ProductHandler
	Cart      *CartHandler
	Checkout  *CheckoutHandler
	Orders    *OrdersHandler
	FastOrder *FastOrderHandler
	Auth      *AuthHandler
	Advisor   *AdvisorHandler
}

// NewRouter wires the storefront API.
func NewRouter(h Handlers, tokens *auth.TokenManager, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionIDMiddleware)
	r.Use(AuthMiddleware(tokens))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Group(func(r chi.Router) {
				r.Use(AdminOnly)
				r.Post("/", h.Products.Save)
				r.Delete("/{id}", h.Products.Delete)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{product_id}", h.Cart.UpdateQuantity)
			r.Delete("/items/{product_id}", h.Cart.RemoveItem)
			r.Delete("/", h.Cart.Clear)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", h.Checkout.Get)
			r.Post("/shipping", h.Checkout.SubmitShipping)
			r.Post("/payment", h.Checkout.SubmitPayment)
			r.Post("/back", h.Checkout.Back)
			r.Post("/edit", h.Checkout.Edit)
			r.Post("/submit", h.Checkout.Submit)
			r.Post("/reset", h.Checkout.Reset)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/fast", h.FastOrder.Create)
			r.Get("/mine", h.Orders.Mine)
			r.Group(func(r chi.Router) {
				r.Use(AdminOnly)
				r.Get("/", h.Orders.List)
				r.Put("/{id}/status", h.Orders.UpdateStatus)
				r.Delete("/{id}", h.Orders.Delete)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/signup", h.Auth.Signup)
			r.Post("/verify", h.Auth.Verify)
			r.Post("/admin", h.Auth.AdminLogin)
		})

		r.Route("/advisor", func(r chi.Router) {
			r.Post("/chat", h.Advisor.Chat)
			r.Post("/image", h.Advisor.GenerateImage)
		})
	})

	return r
}
