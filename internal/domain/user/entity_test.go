//go:build unit

package user_test

import (
	"testing"

	"lendit/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		errIs    error
	}{
		{name: "valid user", userName: "Alice", email: "alice@example.com"},
		{name: "blank name", userName: " ", email: "alice@example.com", errIs: user.ErrEmptyName},
		{name: "invalid email", userName: "Alice", email: "not-an-email", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", userName: "Alice", email: "alice.example.com", errIs: user.ErrInvalidEmail},
		{name: "empty email", userName: "Alice", email: "", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := user.NewUser(tt.userName, tt.email)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userName, u.Name())
			assert.Equal(t, tt.email, u.Email())
		})
	}
}

func TestUserApplyPatch(t *testing.T) {
	newEmail := "new@example.com"
	badEmail := "nope"
	newName := "Bob"

	t.Run("patches only provided fields", func(t *testing.T) {
		u := user.ReconstructUser(1, "Alice", "alice@example.com")

		require.NoError(t, u.ApplyPatch(nil, &newEmail))
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, newEmail, u.Email())

		require.NoError(t, u.ApplyPatch(&newName, nil))
		assert.Equal(t, newName, u.Name())
		assert.Equal(t, newEmail, u.Email())
	})

	t.Run("rejects invalid email and keeps state", func(t *testing.T) {
		u := user.ReconstructUser(1, "Alice", "alice@example.com")

		err := u.ApplyPatch(nil, &badEmail)
		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, "alice@example.com", u.Email())
	})
}
