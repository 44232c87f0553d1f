package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankview/internal/adapter/http/dto"
)

func TestHomeHandler_Get(t *testing.T) {
	handler := NewHomeHandler(&accountServiceStub{state: sixtyState()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bobby", resp.UserName)
	assert.Equal(t, "60.00", resp.AccountBalance)
	assert.False(t, resp.LoggedIn)
}
