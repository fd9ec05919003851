package scans_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jazs69/ai-waste-sorter/internal/scans"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{scans.ErrNotFound, http.StatusNotFound},
		{scans.ErrDuplicate, http.StatusConflict},
		{scans.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{scans.ErrInvalidRequest, http.StatusBadRequest},
		{scans.ErrInvalidFile, http.StatusBadRequest},
		{scans.ErrUnsupportedType, http.StatusBadRequest},
		{scans.ErrClassifyFailed, http.StatusBadGateway},
		{fmt.Errorf("wrapped: %w", scans.ErrClassifyFailed), http.StatusBadGateway},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := scans.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
