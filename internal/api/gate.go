package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dukaforge/pantry/pkg/types"
)

// gate validates and authorizes a mutating request. It returns the decoded
// body on success, or an error envelope: 400 when the body is missing or
// not well-formed JSON, 401 when the password field does not match the
// shared secret. The password key is stripped from the returned mapping.
func (s *Server) gate(r *http.Request) (map[string]any, *types.Response) {
	body, errResp := s.validateBody(r)
	if errResp != nil {
		return nil, errResp
	}
	if !s.authorized(body) {
		return nil, types.NewError("unauthorized", http.StatusUnauthorized, "")
	}
	delete(body, "password")
	return body, nil
}

// validateBody decodes the request body as a JSON object. A nil envelope
// means proceed.
func (s *Server) validateBody(r *http.Request) (map[string]any, *types.Response) {
	raw, err := io.ReadAll(r.Body)
	if err != nil || len(raw) == 0 {
		return nil, types.NewError("request body must be valid JSON", http.StatusBadRequest, "")
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, types.NewError("request body must be valid JSON", http.StatusBadRequest, err.Error())
	}
	if body == nil {
		// A literal null decodes without error but carries nothing.
		return nil, types.NewError("request body must be valid JSON", http.StatusBadRequest, "")
	}
	return body, nil
}

// authorized compares the body's password field against the shared secret.
// Case-sensitive exact match; absent or non-string values fail.
func (s *Server) authorized(body map[string]any) bool {
	password, ok := body["password"].(string)
	return ok && s.secret != "" && password == s.secret
}
