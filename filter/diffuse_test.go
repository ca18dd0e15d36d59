package filter

import (
	"testing"

	"github.com/opd-ai/rasterkit/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayRow(values ...byte) *frame.Buffer {
	buf := frame.New(len(values), 1)
	for x, v := range values {
		buf.SetPixel(x, 0, v, v, v)
	}
	return buf
}

func grayLevels(buf *frame.Buffer) []byte {
	var out []byte
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.Pixel(x, y)
			if r != g || g != b {
				return nil
			}
			out = append(out, r)
		}
	}
	return out
}

func TestNearestLevel(t *testing.T) {
	tests := []struct {
		name string
		in   [3]float64
		want float64
	}{
		{"black", [3]float64{0, 0, 0}, 0},
		{"exact level", [3]float64{153, 153, 153}, 153},
		{"rounds down", [3]float64{60, 60, 60}, 51},
		{"rounds up", [3]float64{80, 80, 80}, 102},
		{"pure red sums to black", [3]float64{255, 0, 0}, 0},
		{"mixed picks middle", [3]float64{51, 102, 153}, 102},
		{"overshoot clamps to white", [3]float64{300, 290, 280}, 255},
		{"undershoot clamps to black", [3]float64{-20, -5, -9}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nearestLevel(tt.in))
		})
	}
}

func TestDiffuse_SpreadsErrorRight(t *testing.T) {
	// 80 -> 102 (error -22), 80-9.625 -> 51 (error 19.375), 80+8.48 -> 102.
	src := grayRow(80, 80, 80)
	dst := frame.New(3, 1)

	require.NoError(t, NewDiffuse().Apply(dst, src))
	assert.Equal(t, []byte{102, 51, 102}, grayLevels(dst))
}

func TestDiffuse_SpreadsErrorDown(t *testing.T) {
	// A single column only receives the 5/16 share from above.
	src := frame.New(1, 3)
	src.Fill(80, 80, 80)
	dst := frame.New(1, 3)

	// 80 -> 102 (error -22), 80-6.875 -> 51 (error 22.125), 80+6.91 -> 102.
	require.NoError(t, NewDiffuse().Apply(dst, src))
	assert.Equal(t, []byte{102, 51, 102}, grayLevels(dst))
}

func TestDiffuse_LevelFramesUnchanged(t *testing.T) {
	src := frame.New(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			v := byte(x * 51)
			src.SetPixel(x, y, v, v, v)
		}
	}
	dst := frame.New(6, 4)

	require.NoError(t, NewDiffuse().Apply(dst, src))
	assert.Equal(t, src.Pix, dst.Pix)
}

func TestDiffuse_OutputIsGrayWebsafe(t *testing.T) {
	src := createTestFrame(16, 9, 7)
	dst := frame.New(16, 9)

	require.NoError(t, NewDiffuse().Apply(dst, src))
	levels := grayLevels(dst)
	require.Len(t, levels, 16*9, "every output pixel must be gray")
	for _, v := range levels {
		assert.Zero(t, v%websafeStep, "sample %d is not a web-safe level", v)
	}
}

func TestDiffuse_PreservesAverage(t *testing.T) {
	src := frame.New(16, 16)
	src.Fill(128, 128, 128)
	dst := frame.New(16, 16)

	require.NoError(t, NewDiffuse().Apply(dst, src))

	sum := 0
	for _, v := range grayLevels(dst) {
		assert.Contains(t, []byte{102, 153}, v)
		sum += int(v)
	}
	assert.InDelta(t, 128, float64(sum)/256, 4)
}

func TestDiffuse_NotInPlace(t *testing.T) {
	k := NewDiffuse()
	assert.False(t, k.InPlace())
	assert.Equal(t, "Diffuse", k.Name())

	buf := grayRow(10, 20, 30)
	out, spare, err := Apply(k, buf, nil)
	require.NoError(t, err)
	assert.Same(t, buf, spare)
	assert.NotSame(t, buf, out)
}
