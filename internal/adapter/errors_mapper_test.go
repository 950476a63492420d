package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"json error field", `{"error":"File not found"}`, "File not found"},
		{"json without error", `{"success":false}`, `{"success":false}`},
		{"plain text", "  Bad Gateway \n", "Bad Gateway"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body)))
		})
	}
}

func TestMapHTTPError_UnknownStatusUsesStatusText(t *testing.T) {
	err := mapStatus(http.StatusServiceUnavailable, nil)

	assert.EqualError(t, err, "http 503: Service Unavailable")
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapStatus(http.StatusOK, []byte("{}")))
	assert.NoError(t, mapStatus(http.StatusNoContent, nil))
}

func TestMapStatus_Sentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusRequestEntityTooLarge, ErrRequestTooLarge},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := mapStatus(tt.status, []byte(`{"error":"details"}`))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "details")
		})
	}
}
