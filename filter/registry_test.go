package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		size     int
		wantName string
	}{
		{"box blur default", "BoxBlur", 0, "BoxBlur(2)"},
		{"blur alias with radius", "blur", 3, "BoxBlur(3)"},
		{"dither 4x4", "Dither4", 0, "Dither4"},
		{"dither 2x2", "DITHER2", 0, "Dither2"},
		{"grayscale", "Grayscale", 0, "Grayscale"},
		{"grey alias", "grey", 0, "Grayscale"},
		{"luminosity", "luminosity", 0, "Luminosity"},
		{"kuwahara default", "Kuwahara", 0, "Kuwahara(7)"},
		{"kuwahara size", " kuwahara ", 5, "Kuwahara(5)"},
		{"websafe ignores size", "websafe", 9, "Websafe"},
		{"diffuse", "Diffuse", 0, "Diffuse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Parse(tt.input, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, k.Name())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("sepia", 0)
	assert.ErrorIs(t, err, ErrUnknownKernel)
	assert.Contains(t, err.Error(), "kuwahara")

	_, err = Parse("", 0)
	assert.ErrorIs(t, err, ErrUnknownKernel)

	_, err = Parse("kuwahara", -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNames_AllParse(t *testing.T) {
	names := Names()
	assert.Len(t, names, 8)
	for _, n := range names {
		_, err := Parse(n, 0)
		assert.NoError(t, err, n)
	}
}
