package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankview/internal/domain"
	"github.com/iho/bankview/internal/infrastructure/config"
)

func TestDefaultUser(t *testing.T) {
	user, err := defaultUser(&config.Config{DefaultUserName: "Bobby", MemberSince: "1990-01-01"})
	require.NoError(t, err)

	assert.Equal(t, "Bobby", user.DisplayName)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), user.MemberSince)
	assert.False(t, user.LoggedIn)
}

func TestDefaultUser_Invalid(t *testing.T) {
	_, err := defaultUser(&config.Config{DefaultUserName: " ", MemberSince: "1990-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidDisplayName)

	_, err = defaultUser(&config.Config{DefaultUserName: "Bobby", MemberSince: "01/01/1990x"})
	assert.Error(t, err)
}
