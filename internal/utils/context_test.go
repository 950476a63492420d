package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "set",
			ctx:    WithCycleID(context.Background(), "0190a1b2-c3d4"),
			wantID: "0190a1b2-c3d4",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "empty",
			ctx:  WithCycleID(context.Background(), ""),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), CycleIDCtxKey, 42),
		},
		{
			name: "plain string key does not collide",
			ctx:  context.WithValue(context.Background(), "cycleID", "x"), //nolint:staticcheck
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := CycleIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "cycleID", CycleIDCtxKey.String())
}
