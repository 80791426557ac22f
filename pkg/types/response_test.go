package types

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseSerializationOmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		want string
	}{
		{
			name: "success without payload",
			resp: NewSuccess("created", http.StatusCreated, nil),
			want: `{"status":"success","message":"created","statusCode":201}`,
		},
		{
			name: "error without details",
			resp: NewError("not found", http.StatusNotFound, ""),
			want: `{"status":"error","message":"not found","statusCode":404}`,
		},
		{
			name: "error with details",
			resp: NewError("database query failed", http.StatusInternalServerError, "disk I/O error"),
			want: `{"status":"error","message":"database query failed","statusCode":500,"details":"disk I/O error"}`,
		},
		{
			name: "empty list payload is emitted, not dropped",
			resp: NewSuccess("fetched all cereals", http.StatusOK, []*Cereal{}),
			want: `{"status":"success","message":"fetched all cereals","statusCode":200,"data":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestResponseSerializationKeyOrder(t *testing.T) {
	resp := NewSuccess("found 1 cereals for filters", http.StatusOK, []*Cereal{
		{ID: 1, Name: "Bran", Mfr: "K", Type: "C"},
	})
	resp.Action = "filter"

	got, err := json.Marshal(resp)
	require.NoError(t, err)

	want := `{"status":"success","message":"found 1 cereals for filters",` +
		`"action":"filter","statusCode":200,"data":[{"id":1,"name":"Bran",` +
		`"mfr":"K","type":"C","calories":0,"protein":0,"fat":0,"sodium":0,` +
		`"fiber":0,"carbo":0,"sugars":0,"potass":0,"vitamins":0,"shelf":0,` +
		`"weight":0,"cups":0,"rating":0}]}`
	assert.Equal(t, want, string(got))
}

func TestResponseNeverEmitsNull(t *testing.T) {
	resp := NewError("unauthorized", http.StatusUnauthorized, "")

	got, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "null")
	assert.NotContains(t, string(got), `"data"`)
	assert.NotContains(t, string(got), `"details"`)
	assert.NotContains(t, string(got), `"action"`)
}

func TestResponseSetMessage(t *testing.T) {
	resp := NewSuccess("query executed", http.StatusOK, nil)
	resp.SetMessage("fetched cereal")
	assert.Equal(t, "fetched cereal", resp.Message)
}

func TestResponseIsSuccess(t *testing.T) {
	assert.True(t, NewSuccess("ok", http.StatusOK, nil).IsSuccess())
	assert.False(t, NewError("bad", http.StatusBadRequest, "").IsSuccess())
}
