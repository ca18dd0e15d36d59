package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/rasterkit/filter"
	"github.com/opd-ai/rasterkit/frame"
	"github.com/opd-ai/rasterkit/imagefile"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, path string) *frame.Buffer {
	t.Helper()
	buf := frame.New(4, 3)
	for i := range buf.Pix {
		buf.Pix[i] = byte(i * 19)
	}
	require.NoError(t, imagefile.Save(path, buf))
	return buf
}

func expected(t *testing.T, name string, src *frame.Buffer) *frame.Buffer {
	t.Helper()
	k, err := filter.Parse(name, 0)
	require.NoError(t, err)
	out, _, err := filter.Apply(k, src.Clone(), nil)
	require.NoError(t, err)
	return out
}

func TestParseCLIFlags(t *testing.T) {
	config, _, err := parseCLIFlags([]string{"-kernel", "websafe", "in.bmp", "out.ppm"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "websafe", config.kernel)
	assert.Equal(t, "in.bmp", config.input)
	assert.Equal(t, "out.ppm", config.output)

	_, _, err = parseCLIFlags([]string{"only.ppm"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected <input> <output>")
}

func TestValidateCLIConfig(t *testing.T) {
	tests := []struct {
		name       string
		config     *CLIConfig
		wantKernel string
		wantErr    bool
	}{
		{"ppm default", &CLIConfig{input: "a.ppm", output: "b.ppm", logLevel: "warn"}, "Grayscale", false},
		{"bmp default", &CLIConfig{input: "a.bmp", output: "b.ppm", logLevel: "warn"}, "Luminosity", false},
		{"explicit", &CLIConfig{kernel: "kuwahara", size: 3, input: "a.ppm", output: "b.bmp", logLevel: "warn"}, "Kuwahara(3)", false},
		{"bad input", &CLIConfig{input: "a.png", output: "b.ppm", logLevel: "warn"}, "", true},
		{"bad output", &CLIConfig{input: "a.ppm", output: "b.gif", logLevel: "warn"}, "", true},
		{"bad level", &CLIConfig{input: "a.ppm", output: "b.ppm", logLevel: "shout"}, "", true},
		{"bad kernel", &CLIConfig{kernel: "emboss", input: "a.ppm", output: "b.ppm", logLevel: "warn"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := validateCLIConfig(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKernel, k.Name())
		})
	}
}

func TestRealMainConvertsByExtension(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	dir := t.TempDir()

	tests := []struct {
		in, out string
		kernel  string
	}{
		{"in.ppm", "out.ppm", filter.NameGrayscale},
		{"in.bmp", "out.bmp", filter.NameLuminosity},
		{"in2.bmp", "out2.ppm", filter.NameLuminosity},
	}

	for _, tt := range tests {
		in := filepath.Join(dir, tt.in)
		out := filepath.Join(dir, tt.out)
		src := writeImage(t, in)

		var stderr bytes.Buffer
		code := realMain([]string{in, out}, &stderr)
		require.Equal(t, 0, code, stderr.String())

		got, err := imagefile.Load(out)
		require.NoError(t, err)
		assert.Equal(t, expected(t, tt.kernel, src), got, tt.in)
	}
}

func TestRealMainOutOfPlaceKernel(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ppm")
	out := filepath.Join(dir, "out.bmp")
	src := writeImage(t, in)

	var stderr bytes.Buffer
	require.Equal(t, 0, realMain([]string{"-kernel", "dither4", in, out}, &stderr), stderr.String())

	got, err := imagefile.Load(out)
	require.NoError(t, err)
	assert.Equal(t, expected(t, filter.NameDither4, src), got)
}

func TestRealMainDebugLogsKernelSelection(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bmp")
	writeImage(t, in)

	var stderr bytes.Buffer
	code := realMain([]string{"-log-level", "debug", in, filepath.Join(dir, "out.bmp")}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "Selected filter kernel")
}

func TestRealMainErrors(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	dir := t.TempDir()

	var stderr bytes.Buffer
	assert.Equal(t, 0, realMain([]string{"-help"}, &stderr))
	assert.Contains(t, stderr.String(), "Usage:")

	stderr.Reset()
	assert.Equal(t, 1, realMain([]string{"a.ppm"}, &stderr))
	assert.Contains(t, stderr.String(), "Configuration error")

	stderr.Reset()
	assert.Equal(t, 1, realMain([]string{"a.tiff", "b.ppm"}, &stderr))

	stderr.Reset()
	missing := filepath.Join(dir, "missing.ppm")
	assert.Equal(t, 1, realMain([]string{missing, filepath.Join(dir, "out.ppm")}, &stderr))
	assert.Contains(t, stderr.String(), "Conversion failed")
}
