package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/idir2023/argan-project/internal/auth"
)

type AuthHandler struct {
	tokens   *auth.TokenManager
	verifier auth.CredentialVerifier
	signup   *auth.SignupFlow
}

func NewAuthHandler(tokens *auth.TokenManager, verifier auth.CredentialVerifier, signup *auth.SignupFlow) *AuthHandler {
	return &AuthHandler{tokens: tokens, verifier: verifier, signup: signup}
}

type LoginRequestDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token   string       `json:"token"`
	Session auth.Session `json:"session"`
}

// Login starts a shopper session. The storefront's auth is simulated:
// an email is enough, there is no shopper password store.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "invalid_email", "email is required")
		return
	}
	if req.Name == "" {
		req.Name = "عميل أرغانيا"
	}

	session := auth.Session{Name: req.Name, Email: req.Email}
	token, err := h.tokens.Issue(session)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &TokenResponse{Token: token, Session: session})
}

type SignupResponse struct {
	State             auth.SignupState `json:"state"`
	ConfirmationToken string           `json:"confirmationToken"`
}

// Signup registers a pending account. The confirmation token would be
// embedded in a verification email; the account stays
// pending-verification until Verify is called with it.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "name and email are required")
		return
	}

	token := h.signup.Begin(req.Name, req.Email)
	respondJSON(w, http.StatusCreated, &SignupResponse{
		State:             auth.StatePendingVerification,
		ConfirmationToken: token,
	})
}

type VerifyRequestDTO struct {
	ConfirmationToken string `json:"confirmationToken"`
}

// Verify completes a signup and opens the session.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.signup.Confirm(req.ConfirmationToken)
	if errors.Is(err, auth.ErrUnknownToken) {
		respondError(w, http.StatusNotFound, "unknown_token", "unknown confirmation token")
		return
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(session)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &TokenResponse{Token: token, Session: session})
}

type AdminLoginRequestDTO struct {
	Password string `json:"password"`
}

// AdminLogin verifies the admin secret against the configured hash and
// issues an admin session token.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if !h.verifier.Verify(req.Password) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "wrong password")
		return
	}

	session := auth.Session{Name: "admin", Admin: true}
	token, err := h.tokens.Issue(session)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &TokenResponse{Token: token, Session: session})
}
