package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/idir2023/argan-project/internal/advisor"
	"github.com/idir2023/argan-project/internal/catalog"
)

type AdvisorHandler struct {
	client  advisor.Client
	catalog *catalog.Service
}

func NewAdvisorHandler(client advisor.Client, catalog *catalog.Service) *AdvisorHandler {
	return &AdvisorHandler{client: client, catalog: catalog}
}

type ChatRequestDTO struct {
	History []advisor.Message `json:"history"`
	Message string            `json:"message"`
}

// Chat streams the advisor's reply as plain text chunks, flushed as
// they arrive so the client can render incrementally. A failed call
// degrades to the fixed fallback message; there is no retry.
func (h *AdvisorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "message is required")
		return
	}

	products, err := h.catalog.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	instruction := advisor.SystemInstruction(products)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	flusher, _ := w.(http.Flusher)

	wrote := false
	errChat := h.client.Chat(r.Context(), instruction, req.History, req.Message, func(text string) {
		wrote = true
		if _, err := w.Write([]byte(text)); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	})
	if errChat != nil && !wrote {
		log.Printf("advisor chat failed: %v", errChat)
		w.Write([]byte(advisor.FallbackMessage))
	}
}

type ImageRequestDTO struct {
	Prompt string       `json:"prompt"`
	Size   advisor.Tier `json:"size"`
}

type ImageResponse struct {
	Image string `json:"image"` // base64-encoded PNG
}

// GenerateImage returns a single generated image. Credential failures
// are distinguished so the UI can prompt for a valid API key.
func (h *AdvisorHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req ImageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "prompt is required")
		return
	}
	if !req.Size.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_size", "size must be 1K, 2K or 4K")
		return
	}

	data, err := h.client.GenerateImage(r.Context(), req.Prompt, req.Size)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &ImageResponse{
		Image: base64.StdEncoding.EncodeToString(data),
	})
}
