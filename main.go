// Command png2ppm decodes an 8-bit truecolor PNG file and writes it out as
// plain-text PPM (P3).
//
// Usage:
//
//	png2ppm <input.png>
//
// The output file is the input path with its extension replaced by .ppm,
// unless PNG2PPM_OUTPUT overrides it. Progress goes to stdout, diagnostics
// and structured logs to stderr and the rotating log file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"png2ppm/core"
	"png2ppm/logging"
	"png2ppm/pngdec"
	"png2ppm/ppm"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one decode and returns the process exit code. Kept separate
// from main so deferred cleanup runs before os.Exit.
func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: png2ppm <input.png>")
		return core.ExitCodeError
	}
	inputPath := args[0]

	// Best-effort .env load; a missing file just means env-only config.
	_ = godotenv.Load()

	cfg, err := core.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "png2ppm: %v\n", err)
		return core.ExitCodeError
	}

	logger := logging.NewLogger(cfg.DevMode, cfg.LogFile, cfg.LogLevel)
	defer logger.Sync()
	log := logger.With(
		zap.String("job_id", core.NewJobID()),
		zap.String("input", inputPath),
	)

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = derivePPMPath(inputPath)
	}

	status := color.New(color.FgCyan)
	status.Printf("decoding %s\n", inputPath)

	data, err := core.LoadInput(inputPath, cfg.MaxFileSize)
	if err != nil {
		return fail(log, "loading input", err)
	}
	log.Info("input loaded", zap.Int("bytes", len(data)))

	img, rec, err := pngdec.Decode(data, log)
	if err != nil {
		return fail(log, "decoding", err)
	}
	fmt.Printf("decoded %dx%d image, %d bytes per pixel\n",
		img.Header.Width, img.Header.Height, img.Header.PixelSize())

	if err := ppm.WriteFile(outputPath, img); err != nil {
		return fail(log, "writing output", err)
	}
	log.Info("decode complete", rec.Fields()...)

	color.New(color.FgGreen).Printf("wrote %s\n", outputPath)
	return core.ExitCodeSuccess
}

// fail reports an error to stderr and the log and returns the error exit code.
func fail(log *zap.Logger, stage string, err error) int {
	fmt.Fprintf(os.Stderr, "png2ppm: %s: %v\n", stage, err)
	log.Error(stage+" failed", zap.Error(err))
	return core.ExitCodeError
}

// derivePPMPath replaces the input path's extension with .ppm.
func derivePPMPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".ppm"
}
