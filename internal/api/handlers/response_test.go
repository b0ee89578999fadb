package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondConflict(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "expired_hold", "hold expired")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "expired_hold", body.Code)
	assert.Equal(t, "hold expired", body.Error)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("ok", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"hall"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "hall", p.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nme":"hall"}`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestParseInt64Param(t *testing.T) {
	id, err := ParseInt64Param("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseInt64Param("0")
	assert.Error(t, err)
	_, err = ParseInt64Param("abc")
	assert.Error(t, err)
}
