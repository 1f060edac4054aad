package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	session := Session{Name: "سارة", Email: "sara@example.com", Admin: true}
	token, err := m.Issue(session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, session, parsed)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("secret-a"), time.Hour)
	parser := NewTokenManager([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue(Session{Email: "sara@example.com"})
	require.NoError(t, err)

	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), -time.Minute)

	token, err := m.Issue(Session{Email: "sara@example.com"})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashSecret("correct horse")
	require.NoError(t, err)

	v := NewBcryptVerifier(hash)
	assert.True(t, v.Verify("correct horse"))
	assert.False(t, v.Verify("wrong horse"))
	assert.False(t, v.Verify(""))
}

func TestBcryptVerifier_MalformedHashNeverVerifies(t *testing.T) {
	v := NewBcryptVerifier("not a bcrypt hash")
	assert.False(t, v.Verify("anything"))
}

func TestSignupFlow_ConfirmTransitionsToVerified(t *testing.T) {
	flow := NewSignupFlow()

	token := flow.Begin("سارة", "sara@example.com")
	require.NotEmpty(t, token)

	state, err := flow.State(token)
	require.NoError(t, err)
	assert.Equal(t, StatePendingVerification, state)

	session, err := flow.Confirm(token)
	require.NoError(t, err)
	assert.Equal(t, "sara@example.com", session.Email)
	assert.False(t, session.Admin)

	state, err = flow.State(token)
	require.NoError(t, err)
	assert.Equal(t, StateVerified, state)
}

func TestSignupFlow_ConfirmIsIdempotent(t *testing.T) {
	flow := NewSignupFlow()
	token := flow.Begin("سارة", "sara@example.com")

	first, err := flow.Confirm(token)
	require.NoError(t, err)
	second, err := flow.Confirm(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSignupFlow_UnknownToken(t *testing.T) {
	flow := NewSignupFlow()

	_, err := flow.Confirm("nope")
	assert.ErrorIs(t, err, ErrUnknownToken)

	_, err = flow.State("nope")
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestSignupFlow_TokensAreUnique(t *testing.T) {
	flow := NewSignupFlow()

	a := flow.Begin("a", "a@example.com")
	b := flow.Begin("b", "b@example.com")
	assert.NotEqual(t, a, b)
}
