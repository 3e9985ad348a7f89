package denoise

import (
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// deepFilterOutputSuffix is appended by the DeepFilter CLI to the files it
// writes into the output directory.
const deepFilterOutputSuffix = "_DeepFilterNet3"

// DeepFilter invokes the DeepFilterNet command line tool to remove
// background noise from an audio file. Every failure mode of the external
// tool (missing binary, non-zero exit, missing or empty output) is absorbed
// into a false return so callers can fall back to the original audio.
type DeepFilter struct {
	binaryPath string
}

// NewDeepFilter creates a DeepFilter denoiser using the given binary path
func NewDeepFilter(binaryPath string) *DeepFilter {
	if binaryPath == "" {
		binaryPath = "deepFilter"
	}
	return &DeepFilter{binaryPath: binaryPath}
}

// Denoise runs the DeepFilter CLI on inputPath and moves the produced file
// to outputPath. The input file is left untouched.
func (d *DeepFilter) Denoise(ctx context.Context, inputPath, outputPath string) bool {
	if _, err := exec.LookPath(d.binaryPath); err != nil {
		log.Printf("[WARN] DeepFilter binary %q not found: %v", d.binaryPath, err)
		return false
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Printf("[ERROR] Failed to create denoise output directory: %v", err)
		return false
	}

	cmd := exec.CommandContext(ctx, d.binaryPath, inputPath, "-o", outputDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Printf("[ERROR] DeepFilter failed on %s: %v\nOutput: %s", inputPath, err, string(output))
		return false
	}

	// DeepFilter names its output <stem>_DeepFilterNet3<ext> in the
	// output directory
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	produced := filepath.Join(outputDir, strings.TrimSuffix(base, ext)+deepFilterOutputSuffix+ext)

	info, err := os.Stat(produced)
	if err != nil {
		log.Printf("[ERROR] DeepFilter did not produce expected output %s: %v", produced, err)
		return false
	}
	if info.Size() == 0 {
		log.Printf("[ERROR] DeepFilter output %s is empty", produced)
		os.Remove(produced)
		return false
	}

	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		log.Printf("[ERROR] Failed to replace existing output %s: %v", outputPath, err)
		return false
	}
	if err := os.Rename(produced, outputPath); err != nil {
		log.Printf("[ERROR] Failed to move DeepFilter output into place: %v", err)
		return false
	}

	log.Printf("[DEBUG] Denoised %s -> %s (%d bytes)", inputPath, outputPath, info.Size())
	return true
}
