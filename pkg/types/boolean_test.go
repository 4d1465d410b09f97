package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "True literal", input: "True", want: true},
		{name: "False literal", input: "False", want: false},
		{name: "lowercase true rejected", input: "true", wantErr: true},
		{name: "uppercase FALSE rejected", input: "FALSE", wantErr: true},
		{name: "numeric rejected", input: "1", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "padded rejected", input: " True", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBool(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBool)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "True", FormatBool(true))
	assert.Equal(t, "False", FormatBool(false))

	for _, b := range []bool{true, false} {
		got, err := ParseBool(FormatBool(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}
