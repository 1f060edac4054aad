package advisor

import (
	"context"
	"errors"
)

// Tier selects the resolution of a generated image.
type Tier string

const (
	Tier1K Tier = "1K"
	Tier2K Tier = "2K"
	Tier4K Tier = "4K"
)

// Valid reports whether t is one of the three fixed tiers.
func (t Tier) Valid() bool {
	return t == Tier1K || t == Tier2K || t == Tier4K
}

var (
	// ErrInvalidCredential marks permission and not-found failures
	// from the generative service: the API key is missing, revoked or
	// not authorized for the model. Distinct from generic failures so
	// the UI can prompt for a valid credential.
	ErrInvalidCredential = errors.New("invalid or unauthorized credential")

	// ErrUnavailable covers every other upstream failure. Calls are
	// never retried automatically.
	ErrUnavailable = errors.New("advisor service unavailable")
)

// FallbackMessage is shown in the transcript when a chat call fails.
const FallbackMessage = "عذراً، حدث خطأ تقني. يرجى المحاولة لاحقاً."

// Message is one transcript entry.
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Client is the contract with the external generative AI service. Chat
// streams incremental text chunks through onChunk; the caller appends
// each chunk to the last transcript message. Both calls honor context
// cancellation.
type Client interface {
	Chat(ctx context.Context, systemInstruction string, history []Message, message string, onChunk func(text string)) error
	GenerateImage(ctx context.Context, prompt string, size Tier) ([]byte, error)
}
