package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/rasterkit/filter"
	"github.com/opd-ai/rasterkit/imagefile"
	"github.com/sirupsen/logrus"
)

// CLIConfig holds the parsed command-line options.
type CLIConfig struct {
	kernel   string
	size     int
	logLevel string
	input    string
	output   string
	help     bool
}

func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, *flag.FlagSet, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("imgconv", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.kernel, "kernel", "", "Filter kernel (default: grayscale for .ppm input, luminosity for .bmp)")
	fs.IntVar(&config.size, "size", 0, "Blur radius or Kuwahara window size (0 selects the kernel default)")
	fs.StringVar(&config.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.BoolVar(&config.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if config.help {
		return config, fs, nil
	}
	if fs.NArg() != 2 {
		return nil, fs, fmt.Errorf("expected <input> <output>, got %d arguments", fs.NArg())
	}
	config.input, config.output = fs.Arg(0), fs.Arg(1)
	return config, fs, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Still image converter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [options] <in.ppm|in.bmp> <out.ppm|out.bmp>\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// validateCLIConfig checks both paths and resolves the kernel.
func validateCLIConfig(config *CLIConfig) (filter.Kernel, error) {
	if _, err := imagefile.FormatFor(config.input); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if _, err := imagefile.FormatFor(config.output); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q", config.logLevel)
	}

	name := config.kernel
	if name == "" {
		name = imagefile.DefaultKernel(config.input)
	}
	return filter.Parse(name, config.size)
}

func convert(config *CLIConfig, k filter.Kernel) error {
	buf, err := imagefile.Load(config.input)
	if err != nil {
		return err
	}

	out, _, err := filter.Apply(k, buf, nil)
	if err != nil {
		return fmt.Errorf("applying %s: %w", k.Name(), err)
	}

	return imagefile.Save(config.output, out)
}

func realMain(args []string, stderr io.Writer) int {
	config, fs, err := parseCLIFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) || (err == nil && config.help) {
		printUsage(stderr, fs)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(stderr, "Use -help for usage information.\n")
		return 1
	}

	if level, err := logrus.ParseLevel(config.logLevel); err == nil {
		logrus.SetLevel(level)
		logrus.SetOutput(stderr)
	}

	k, err := validateCLIConfig(config)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	if err := convert(config, k); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"input":    config.input,
			"output":   config.output,
			"kernel":   k.Name(),
			"error":    err.Error(),
		}).Error("Conversion failed")
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}
