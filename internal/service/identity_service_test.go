package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	f := newFixture(t)
	f.register(t, "dup@example.com")

	_, err := f.identity.Register(context.Background(), "dup@example.com", "", "password123")
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.identity.Register(ctx, "", "", "password123")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = f.identity.Register(ctx, "not-an-email", "", "password123")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = f.identity.Register(ctx, "ok@example.com", "", "short")
	assert.ErrorIs(t, err, model.ErrValidation)

	// beyond bcrypt's 72-byte input limit
	_, err = f.identity.Register(ctx, "ok@example.com", "", strings.Repeat("p", 73))
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestRegisteredUserNeverExposesHash(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "safe@example.com")

	got, err := f.identity.GetByID(context.Background(), u.ID)
	require.NoError(t, err)

	// whatever serializes out of the identity store must not contain the hash
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$")
	assert.NotContains(t, string(raw), "hash")
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "login@example.com")

	got, err := f.identity.Authenticate(ctx, "login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.identity.Authenticate(ctx, "login@example.com", "wrong-password")
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	_, err = f.identity.Authenticate(ctx, "ghost@example.com", "password123")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}
