package service_test

import (
	"testing"

	"dealspace-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_PhoneRule(t *testing.T) {
	v := service.NewValidator()
	require.NotNil(t, v)

	tests := []struct {
		phone string
		valid bool
	}{
		{"+1 555 0100", true},
		{"555-010-0199", true},
		{"555", false},
		{"call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := v.Struct(&service.PhoneRequest{Value: tt.phone})
			assert.Equal(t, tt.valid, err == nil, "phone %q", tt.phone)
		})
	}
}
