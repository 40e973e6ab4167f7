package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name          string
		operation     string
		underlyingErr error
		wantContains  []string
	}{
		{
			name:          "error message includes operation and underlying error",
			operation:     "list_bags",
			underlyingErr: errors.New("connection refused"),
			wantContains:  []string{"list_bags", "connection refused"},
		},
		{
			name:          "timeout is preserved",
			operation:     "list_flights",
			underlyingErr: context.DeadlineExceeded,
			wantContains:  []string{"list_flights", "deadline exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStoreError(tt.operation, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}

			assert.True(t, errors.Is(err, ErrStoreUnavailable))
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.True(t, IsStoreUnavailable(fmt.Errorf("wrapped: %w", err)))
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		message   string
		wantError string
	}{
		{
			name:      "from field validation",
			field:     "from",
			message:   "from is required",
			wantError: "from: from is required",
		},
		{
			name:      "flightStatus field validation",
			field:     "flightStatus",
			message:   "unknown value",
			wantError: "flightStatus: unknown value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			assert.Equal(t, tt.wantError, err.Error())
			assert.True(t, errors.Is(err, ErrInvalidRequest))
		})
	}
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name       string
		checkFunc  func(error) bool
		err        error
		wantResult bool
	}{
		{name: "IsInvalidRequest with sentinel", checkFunc: IsInvalidRequest, err: ErrInvalidRequest, wantResult: true},
		{name: "IsInvalidRequest with wrapped", checkFunc: IsInvalidRequest, err: fmt.Errorf("bind: %w", NewValidationError("to", "is required")), wantResult: true},
		{name: "IsInvalidRequest with store error", checkFunc: IsInvalidRequest, err: NewStoreError("list_bags", errors.New("x")), wantResult: false},
		{name: "IsStoreUnavailable with sentinel", checkFunc: IsStoreUnavailable, err: ErrStoreUnavailable, wantResult: true},
		{name: "IsStoreUnavailable with store error", checkFunc: IsStoreUnavailable, err: NewStoreError("list_flights", errors.New("x")), wantResult: true},
		{name: "IsStoreUnavailable with invalid request", checkFunc: IsStoreUnavailable, err: ErrInvalidRequest, wantResult: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, tt.checkFunc(tt.err))
		})
	}
}
