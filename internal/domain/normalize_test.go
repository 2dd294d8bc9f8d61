package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeScan(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "long tag keeps trailing six", raw: "AB123456789012", want: "789012"},
		{name: "exactly six digits", raw: "123456", want: "123456"},
		{name: "digits interleaved with letters", raw: "0LA12X34Y56Z78", want: "345678"},
		{name: "whitespace and dashes stripped", raw: " 12-34-56 78 ", want: "345678"},
		{name: "five digits rejected", raw: "LA12345", wantErr: ErrCodeTooShort},
		{name: "no digits rejected", raw: "ABCDEF", wantErr: ErrCodeTooShort},
		{name: "empty rejected", raw: "", wantErr: ErrCodeTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeScan(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeManual(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "exact six digits", input: "123456", want: "123456"},
		{name: "surrounding whitespace trimmed", input: "  123456  ", want: "123456"},
		{name: "seven digits rejected not truncated", input: "1234567", wantErr: ErrCodeNotExact},
		{name: "five digits rejected", input: "12345", wantErr: ErrCodeNotExact},
		{name: "letters rejected", input: "12a456", wantErr: ErrCodeNotExact},
		{name: "inner space rejected", input: "123 456", wantErr: ErrCodeNotExact},
		{name: "empty rejected", input: "", wantErr: ErrCodeNotExact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeManual(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
