package denoise

import "context"

// Disabled is a denoiser that always reports failure, which makes the
// pipeline ship the original audio unchanged. Used when no noise reduction
// tool is deployed.
type Disabled struct{}

// NewDisabled creates a denoiser that never denoises
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Denoise always reports failure without touching either path
func (Disabled) Denoise(ctx context.Context, inputPath, outputPath string) bool {
	return false
}
