package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-planner/internal/errors"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "simple", raw: "ivan@example.com", want: "ivan@example.com"},
		{name: "trimmed", raw: "  ivan@example.com ", want: "ivan@example.com"},
		{name: "keeps case", raw: "A@x.com", want: "A@x.com"},
		{name: "empty", raw: "", wantErr: "email address must be provided"},
		{name: "whitespace", raw: "   ", wantErr: "email address must be provided"},
		{name: "no at", raw: "ivan.example.com", wantErr: "'ivan.example.com' is not a valid email address"},
		{name: "no dot in domain", raw: "ivan@example", wantErr: "'ivan@example' is not a valid email address"},
		{name: "inner space", raw: "iv an@example.com", wantErr: "'iv an@example.com' is not a valid email address"},
		{name: "double at", raw: "a@b@c.com", wantErr: "'a@b@c.com' is not a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
				assert.Equal(t, tt.wantErr, apperrors.GetUserMessage(err))
				assert.Equal(t, Email{}, email)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestEmail_Equal(t *testing.T) {
	a, err := NewEmail("ivan@example.com")
	require.NoError(t, err)
	b, err := NewEmail("  ivan@example.com")
	require.NoError(t, err)
	c, err := NewEmail("Ivan@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
	assert.False(t, a.Equal(c), "value equality is exact; case-insensitive matching is a lookup concern")
}
