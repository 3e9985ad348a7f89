package denoise

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeepFilter_DefaultBinary(t *testing.T) {
	d := NewDeepFilter("")
	assert.Equal(t, "deepFilter", d.binaryPath)

	custom := NewDeepFilter("/opt/df/bin/deepFilter")
	assert.Equal(t, "/opt/df/bin/deepFilter", custom.binaryPath)
}

func TestDeepFilter_Denoise_MissingBinary(t *testing.T) {
	d := NewDeepFilter("definitely-not-an-installed-binary")
	ok := d.Denoise(context.Background(), "in.wav", filepath.Join(t.TempDir(), "out.wav"))
	assert.False(t, ok)
}

func TestDeepFilter_Denoise_MovesOutputIntoPlace(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "take.wav")
	require.NoError(t, os.WriteFile(inputPath, []byte("noisy audio"), 0644))

	// Fake CLI that mimics the real tool's output naming
	script := `#!/bin/sh
in="$1"
out="$3"
base=$(basename "$in")
stem="${base%.*}"
cp "$in" "$out/${stem}_DeepFilterNet3.wav"
`
	binary := writeFakeBinary(t, "deepFilter", script)

	outputPath := filepath.Join(dir, "cleaned", "take_cleaned.wav")
	d := NewDeepFilter(binary)
	ok := d.Denoise(context.Background(), inputPath, outputPath)
	require.True(t, ok)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("noisy audio"), data)

	// The intermediate file was renamed, not copied
	_, err = os.Stat(filepath.Join(dir, "cleaned", "take_DeepFilterNet3.wav"))
	assert.True(t, os.IsNotExist(err))

	// The input is untouched
	raw, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("noisy audio"), raw)
}

func TestDeepFilter_Denoise_EmptyOutputIsFailure(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "take.wav")
	require.NoError(t, os.WriteFile(inputPath, []byte("noisy audio"), 0644))

	script := `#!/bin/sh
in="$1"
out="$3"
base=$(basename "$in")
stem="${base%.*}"
: > "$out/${stem}_DeepFilterNet3.wav"
`
	binary := writeFakeBinary(t, "deepFilter", script)

	outputPath := filepath.Join(dir, "cleaned", "take_cleaned.wav")
	d := NewDeepFilter(binary)
	ok := d.Denoise(context.Background(), inputPath, outputPath)
	assert.False(t, ok)

	_, err := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err))
}

func TestDeepFilter_Denoise_NonZeroExitIsFailure(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "take.wav")
	require.NoError(t, os.WriteFile(inputPath, []byte("noisy audio"), 0644))

	binary := writeFakeBinary(t, "deepFilter", "#!/bin/sh\nexit 1\n")

	d := NewDeepFilter(binary)
	ok := d.Denoise(context.Background(), inputPath, filepath.Join(dir, "cleaned", "take_cleaned.wav"))
	assert.False(t, ok)
}

func TestDisabled_Denoise(t *testing.T) {
	d := NewDisabled()
	outputPath := filepath.Join(t.TempDir(), "out.wav")

	ok := d.Denoise(context.Background(), "in.wav", outputPath)
	assert.False(t, ok)

	_, err := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err))
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake CLI scripts need a POSIX shell")
	}
}

func writeFakeBinary(t *testing.T, name, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}
