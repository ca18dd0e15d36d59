package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/opd-ai/rasterkit/filter"
	"github.com/opd-ai/rasterkit/pipeline"
	"github.com/opd-ai/rasterkit/stream"
	"github.com/sirupsen/logrus"
)

// CLIConfig holds the parsed command-line options.
type CLIConfig struct {
	kernel   string
	size     int
	strict   bool
	digest   bool
	logLevel string
	logFile  string
	help     bool
}

// parseCLIFlags parses args into a configuration.
func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, *flag.FlagSet, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("rasterfilter", flag.ContinueOnError)
	fs.SetOutput(output)

	// Filter configuration
	fs.StringVar(&config.kernel, "kernel", filter.NameKuwahara, "Filter kernel ("+strings.Join(filter.Names(), ", ")+")")
	fs.IntVar(&config.size, "size", 0, "Blur radius or Kuwahara window size (0 selects the kernel default)")

	// Error policy
	fs.BoolVar(&config.strict, "strict", false, "Exit with status 1 on malformed or truncated input")
	fs.BoolVar(&config.digest, "digest", false, "Log a BLAKE2b-256 digest of every output frame at debug level")

	// Logging configuration
	fs.StringVar(&config.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&config.logFile, "log-file", "", "Log file path (default: stderr)")

	// Help
	fs.BoolVar(&config.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return config, fs, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Streaming raster filter")
	fmt.Fprintln(w, "=======================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reads concatenated P6 frames from stdin, filters each one and writes")
	fmt.Fprintln(w, "the results to stdout in the same format.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [options] < input > output\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  # Edge-preserving smoothing with a 9x9 window\n")
	fmt.Fprintf(w, "  %s -kernel kuwahara -size 9 < in.ppm > out.ppm\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  # Fail loudly on damaged input\n")
	fmt.Fprintf(w, "  %s -kernel grayscale -strict < in.ppm > out.ppm\n", fs.Name())
}

// validateCLIConfig validates the configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.size < 0 {
		return fmt.Errorf("size cannot be negative")
	}
	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q", config.logLevel)
	}
	return nil
}

// setupLogging configures the global logger. The returned closer releases
// the log file, if any.
func setupLogging(config *CLIConfig, stderr io.Writer) (io.Closer, error) {
	level, err := logrus.ParseLevel(config.logLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if config.logFile == "" {
		logrus.SetOutput(stderr)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(config.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}

// setupSignalHandling cancels the run on interrupt. The frame in flight is
// completed first.
func setupSignalHandling(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		sig := <-sigChan
		logrus.WithFields(logrus.Fields{
			"function": "setupSignalHandling",
			"signal":   sig.String(),
		}).Warn("Received signal, stopping after current frame")
		cancel()
	}()
}

// run filters stdin to stdout with the given kernel.
func run(ctx context.Context, config *CLIConfig, k filter.Kernel, stdin io.Reader, stdout io.Writer) (pipeline.Stats, error) {
	p, err := pipeline.New(stream.NewReader(stdin), stream.NewWriter(stdout), pipeline.Config{
		Kernel: k,
		Strict: config.strict,
		Digest: config.digest,
	})
	if err != nil {
		return pipeline.Stats{}, err
	}
	return p.Run(ctx)
}

// realMain returns the process exit status.
func realMain(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config, fs, err := parseCLIFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stderr, fs)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(stderr, "Use -help for usage information.\n")
		return 1
	}

	if config.help {
		printUsage(stderr, fs)
		return 0
	}

	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(stderr, "Use -help for usage information.\n")
		return 1
	}

	closer, err := setupLogging(config, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Logging setup failed: %v\n", err)
		return 1
	}
	defer closer.Close()

	// Built after logging so kernel selection reaches the configured log.
	k, err := filter.Parse(config.kernel, config.size)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(stderr, "Use -help for usage information.\n")
		return 1
	}

	stats, err := run(ctx, config, k, stdin, stdout)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"kernel":   k.Name(),
			"frames":   stats.Frames,
			"error":    err.Error(),
		}).Error("Filter failed")
		return 1
	}
	return 0
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandling(cancel)

	code := realMain(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
