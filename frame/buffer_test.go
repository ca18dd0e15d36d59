package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"empty", 0, 0},
		{"single pixel", 1, 1},
		{"vga", 640, 480},
		{"odd sizes", 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New(tt.width, tt.height)
			require.NotNil(t, buf)
			assert.Equal(t, tt.width, buf.Width)
			assert.Equal(t, tt.height, buf.Height)
			assert.Len(t, buf.Pix, tt.width*tt.height*3)
		})
	}
}

func TestNew_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { New(-1, 4) })
	assert.Panics(t, func() { New(4, -1) })
}

func TestEnsure_NilAllocates(t *testing.T) {
	buf := Ensure(nil, 4, 2)
	require.NotNil(t, buf)
	assert.Equal(t, 24, buf.Len())
}

func TestEnsure_ReusesMatchingBuffer(t *testing.T) {
	prev := New(4, 2)
	prev.Pix[0] = 42

	buf := Ensure(prev, 4, 2)
	assert.Same(t, prev, buf)
	// Reused storage keeps its old contents.
	assert.Equal(t, byte(42), buf.Pix[0])
}

func TestEnsure_ReallocatesOnDimensionChange(t *testing.T) {
	prev := New(4, 2)

	tests := []struct {
		name          string
		width, height int
	}{
		{"wider", 8, 2},
		{"taller", 4, 3},
		{"transposed", 2, 4},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Ensure(prev, tt.width, tt.height)
			assert.NotSame(t, prev, buf)
			assert.Equal(t, tt.width, buf.Width)
			assert.Equal(t, tt.height, buf.Height)
			assert.Len(t, buf.Pix, tt.width*tt.height*3)
		})
	}
}

func TestPixelAccessors(t *testing.T) {
	buf := New(3, 2)
	buf.SetPixel(2, 1, 10, 20, 30)

	r, g, b := buf.Pixel(2, 1)
	assert.Equal(t, byte(10), r)
	assert.Equal(t, byte(20), g)
	assert.Equal(t, byte(30), b)

	// Row-major, interleaved, no padding.
	assert.Equal(t, []byte{10, 20, 30}, buf.Pix[15:18])
	assert.Equal(t, 15, buf.Offset(2, 1))
}

func TestPixelAccessors_OutOfRangePanics(t *testing.T) {
	buf := New(3, 2)

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}}
	for _, c := range coords {
		assert.Panics(t, func() { buf.Pixel(c[0], c[1]) }, "Pixel(%d,%d)", c[0], c[1])
		assert.Panics(t, func() { buf.SetPixel(c[0], c[1], 0, 0, 0) }, "SetPixel(%d,%d)", c[0], c[1])
	}
}

func TestClone(t *testing.T) {
	buf := New(2, 2)
	buf.Fill(1, 2, 3)

	clone := buf.Clone()
	assert.Equal(t, buf.Pix, clone.Pix)
	assert.True(t, buf.SameSize(clone))

	clone.Pix[0] = 99
	assert.Equal(t, byte(1), buf.Pix[0])
}

func TestSameSize(t *testing.T) {
	a := New(2, 3)
	assert.True(t, a.SameSize(New(2, 3)))
	assert.False(t, a.SameSize(New(3, 2)))
	assert.False(t, a.SameSize(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "640x480", New(640, 480).String())
}
