package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
)

const cleanedContentType = "audio/wav"

// Processor processes one audio file end-to-end: download, denoise (with
// fallback to the original), upload of the cleaned artifact, transcription
// and persistence of the outcome.
type Processor struct {
	gateway     Gateway
	blobs       BlobStore
	denoiser    Denoiser
	transcriber Transcriber
	tempDir     string
}

// NewProcessor creates a new audio file processor. Temp files are written
// under tempDir, namespaced by file id so overlapping runs cannot collide.
func NewProcessor(gateway Gateway, blobs BlobStore, denoiser Denoiser, transcriber Transcriber, tempDir string) *Processor {
	return &Processor{
		gateway:     gateway,
		blobs:       blobs,
		denoiser:    denoiser,
		transcriber: transcriber,
		tempDir:     tempDir,
	}
}

// Process runs the full per-file pipeline. It returns true only when every
// step succeeded; on any failure the file is marked failed with the error
// message and false is returned. Failures never propagate to the caller,
// keeping one bad file from aborting the batch.
func (p *Processor) Process(ctx context.Context, fileID, rawPath string) bool {
	if err := p.process(ctx, fileID, rawPath); err != nil {
		log.Printf("[ERROR] Processing file %s failed: %v", fileID, err)
		if updateErr := p.gateway.UpdateAudioFileStatus(ctx, fileID, models.AudioFileStatusFailed, err.Error()); updateErr != nil {
			log.Printf("[ERROR] Failed to record failure on file %s: %v", fileID, updateErr)
		}
		return false
	}
	return true
}

func (p *Processor) process(ctx context.Context, fileID, rawPath string) error {
	if err := p.gateway.UpdateAudioFileStatus(ctx, fileID, models.AudioFileStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to claim file: %w", err)
	}

	data, err := p.blobs.Download(ctx, rawPath)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", rawPath, err)
	}
	log.Printf("[DEBUG] Downloaded %s (%d bytes) for file %s", rawPath, len(data), fileID)

	filename := path.Base(rawPath)
	rawTemp := filepath.Join(p.tempDir, "raw", fmt.Sprintf("%s_%s", fileID, filename))
	cleanedTemp := filepath.Join(p.tempDir, "cleaned", fmt.Sprintf("%s_%s", fileID, CleanedName(filename)))

	// Temp files must be removed on every exit path
	defer func() {
		removeTempFile(rawTemp)
		removeTempFile(cleanedTemp)
	}()

	if err := writeTempFile(rawTemp, data); err != nil {
		return fmt.Errorf("failed to stage raw audio: %w", err)
	}

	if ok := p.denoiser.Denoise(ctx, rawTemp, cleanedTemp); !ok {
		// Degraded but acceptable: ship the original audio unmodified
		log.Printf("[WARN] Noise reduction failed for file %s, using original audio", fileID)
		if err := writeTempFile(cleanedTemp, data); err != nil {
			return fmt.Errorf("failed to stage fallback audio: %w", err)
		}
	}

	cleanedData, err := os.ReadFile(cleanedTemp)
	if err != nil {
		return fmt.Errorf("failed to read cleaned audio: %w", err)
	}

	cleanedStoragePath := CleanedPath(rawPath)
	if err := p.blobs.Upload(ctx, cleanedStoragePath, cleanedData, cleanedContentType); err != nil {
		return fmt.Errorf("failed to upload cleaned audio to %s: %w", cleanedStoragePath, err)
	}
	log.Printf("[DEBUG] Uploaded cleaned audio for file %s to %s", fileID, cleanedStoragePath)

	if err := p.gateway.UpdateAudioFileCleanedPath(ctx, fileID, cleanedStoragePath); err != nil {
		return fmt.Errorf("failed to record cleaned path: %w", err)
	}

	text, err := p.transcriber.Transcribe(ctx, cleanedData, filename)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	if err := p.gateway.UpdateAudioFileTranscription(ctx, fileID, text, models.AudioFileStatusCompleted); err != nil {
		return fmt.Errorf("failed to persist transcription: %w", err)
	}

	log.Printf("[DEBUG] File %s completed (%d characters)", fileID, len(text))
	return nil
}

func writeTempFile(fullPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func removeTempFile(fullPath string) {
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("[ERROR] Failed to remove temp file %s: %v", fullPath, err)
	}
}
