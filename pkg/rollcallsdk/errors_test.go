package rollcallsdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   APIError
	}{
		{
			name:   "error body",
			status: http.StatusBadRequest,
			body:   `{"error":"invalid_token"}`,
			want:   APIError{StatusCode: 400, Code: ErrorCodeInvalidToken},
		},
		{
			name:   "validation body",
			status: http.StatusBadRequest,
			body:   `{"code":"validation_error","message":"bad","details":{"date":"required"}}`,
			want: APIError{
				StatusCode:  400,
				Code:        ErrorCodeValidation,
				Description: "bad",
				Details:     map[string]string{"date": "required"},
			},
		},
		{
			name:   "not json",
			status: http.StatusBadGateway,
			body:   `<html>`,
			want:   APIError{StatusCode: 502, Code: ErrorCodeServerError, Description: "HTTP 502: Bad Gateway"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErrorResponse(&http.Response{StatusCode: tt.status}, []byte(tt.body))
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.want, *apiErr)
		})
	}

	require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusOK}, nil))
}

func TestSessionSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"kind":"admin","id":"a1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	me, err := c.NewAuthSession("tok").Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "admin", me.Kind)

	_, err = c.NewAuthSession("other").Me(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeUnauthorized, apiErr.Code)
}
