package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Signup verification is a two-step state machine: a signup starts as
// pending-verification and becomes verified only when the confirmation
// token is presented back, via the link sent to the shopper.

type SignupState string

const (
	StatePendingVerification SignupState = "pending-verification"
	StateVerified            SignupState = "verified"
)

var ErrUnknownToken = errors.New("unknown confirmation token")

type pendingSignup struct {
	session Session
	state   SignupState
}

// SignupFlow tracks in-flight signups by confirmation token.
type SignupFlow struct {
	mu      sync.Mutex
	pending map[string]*pendingSignup
}

func NewSignupFlow() *SignupFlow {
	return &SignupFlow{pending: make(map[string]*pendingSignup)}
}

// Begin registers a signup and returns the confirmation token to embed
// in the verification link.
func (f *SignupFlow) Begin(name, email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	token := uuid.NewString()
	f.pending[token] = &pendingSignup{
		session: Session{Name: name, Email: email},
		state:   StatePendingVerification,
	}
	return token
}

// Confirm transitions the signup to verified and returns its session.
// Confirming an already-verified signup is a no-op returning the same
// session.
func (f *SignupFlow) Confirm(token string) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.pending[token]
	if !ok {
		return Session{}, ErrUnknownToken
	}

	p.state = StateVerified
	return p.session, nil
}

// State reports the current state of a signup token.
func (f *SignupFlow) State(token string) (SignupState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.pending[token]
	if !ok {
		return "", ErrUnknownToken
	}
	return p.state, nil
}
