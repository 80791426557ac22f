package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGateServer() *Server {
	return NewServer(nil, "test_password", zap.NewNop())
}

func TestAuthorized(t *testing.T) {
	s := newGateServer()

	tests := []struct {
		name string
		body map[string]any
		want bool
	}{
		{
			name: "exact match",
			body: map[string]any{"password": "test_password"},
			want: true,
		},
		{
			name: "wrong password",
			body: map[string]any{"password": "guess"},
			want: false,
		},
		{
			name: "case sensitive",
			body: map[string]any{"password": "Test_Password"},
			want: false,
		},
		{
			name: "missing password",
			body: map[string]any{"name": "Bran"},
			want: false,
		},
		{
			name: "non-string password",
			body: map[string]any{"password": float64(42)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.authorized(tt.body))
		})
	}
}

func TestAuthorizedEmptySecretDeniesEverything(t *testing.T) {
	s := NewServer(nil, "", zap.NewNop())
	assert.False(t, s.authorized(map[string]any{"password": ""}))
}

func TestValidateBody(t *testing.T) {
	s := newGateServer()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "valid object", body: `{"password":"x"}`},
		{name: "empty body", body: "", wantCode: http.StatusBadRequest},
		{name: "not JSON", body: "name=Bran", wantCode: http.StatusBadRequest},
		{name: "truncated JSON", body: `{"name":`, wantCode: http.StatusBadRequest},
		{name: "JSON but not an object", body: `[1,2]`, wantCode: http.StatusBadRequest},
		{name: "JSON null", body: `null`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/cereals", strings.NewReader(tt.body))
			body, errResp := s.validateBody(r)
			if tt.wantCode != 0 {
				require.NotNil(t, errResp)
				assert.Equal(t, tt.wantCode, errResp.StatusCode)
			} else {
				assert.Nil(t, errResp)
				assert.NotNil(t, body)
			}
		})
	}
}

func TestGateStripsPassword(t *testing.T) {
	s := newGateServer()
	r := httptest.NewRequest(http.MethodPost, "/cereals",
		strings.NewReader(`{"name":"Bran","password":"test_password"}`))

	body, errResp := s.gate(r)
	require.Nil(t, errResp)
	assert.NotContains(t, body, "password")
	assert.Equal(t, "Bran", body["name"])
}

func TestGateOrdering(t *testing.T) {
	s := newGateServer()

	// Malformed body answers 400 before the credential is looked at.
	r := httptest.NewRequest(http.MethodPost, "/cereals", strings.NewReader("not json"))
	_, errResp := s.gate(r)
	require.NotNil(t, errResp)
	assert.Equal(t, http.StatusBadRequest, errResp.StatusCode)

	// Well-formed body with a bad credential answers 401.
	r = httptest.NewRequest(http.MethodPost, "/cereals", strings.NewReader(`{"password":"nope"}`))
	_, errResp = s.gate(r)
	require.NotNil(t, errResp)
	assert.Equal(t, http.StatusUnauthorized, errResp.StatusCode)
	assert.Equal(t, "unauthorized", errResp.Message)
}
