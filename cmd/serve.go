package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chimlimhao/SpeechDataPrepTool/api"
	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/database"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/auth"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/denoise"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/pipeline"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/projects"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/storage"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/students"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/transcription"
	"github.com/chimlimhao/SpeechDataPrepTool/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the speech data preparation API server with the configured settings.

Example:
  speechprep serve
  speechprep serve --port 9090
  speechprep serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, deps, err := buildDependencies(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Failed to close database: %v", err)
		}
	}()

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	log.Printf("[INFO] Starting Speech Data Prep API server on %s:%d", serverHost, serverPort)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		log.Printf("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Printf("[INFO] Server gracefully stopped")
	return nil
}

// buildDependencies wires the database, services and pipeline from config
func buildDependencies(ctx context.Context, cfg *config.Config) (*database.DB, *types.Dependencies, error) {
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	blobs, err := buildBlobStore(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	var denoiser pipeline.Denoiser
	switch cfg.Denoise.Backend {
	case "deepfilter":
		denoiser = denoise.NewDeepFilter(cfg.Denoise.BinaryPath)
	default:
		log.Printf("[WARN] Noise reduction disabled, raw audio will be transcribed as-is")
		denoiser = denoise.NewDisabled()
	}

	transcriber := transcription.NewClient(transcription.Config{
		BaseURL: cfg.Transcription.ServiceURL,
		Timeout: cfg.Transcription.Timeout,
	})

	projectRepo := projects.NewRepository(db.DB)
	processor := pipeline.NewProcessor(projectRepo, blobs, denoiser, transcriber, cfg.Storage.TempDir)
	orchestrator := pipeline.NewOrchestrator(projectRepo, processor)

	var verifier auth.Verifier
	if cfg.Auth.JWTSecret != "" {
		verifier = auth.NewHMACVerifier(cfg.Auth.JWTSecret)
	} else {
		log.Printf("[WARN] No JWT secret configured, falling back to X-User-ID header auth")
	}

	deps := &types.Dependencies{
		DB:             db,
		ProjectService: projects.NewService(projectRepo),
		StudentService: students.NewService(students.NewRepository(db.DB)),
		Runner:         orchestrator,
		Verifier:       verifier,
	}
	return db, deps, nil
}

// buildBlobStore selects the blob store implementation from config
func buildBlobStore(ctx context.Context, cfg *config.Config) (pipeline.BlobStore, error) {
	switch cfg.Storage.Backend {
	case "filesystem":
		return storage.NewFilesystemStore(cfg.Storage.BasePath)
	case "minio":
		return storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.Storage.Minio.Endpoint,
			AccessKey: cfg.Storage.Minio.AccessKey,
			SecretKey: cfg.Storage.Minio.SecretKey,
			UseSSL:    cfg.Storage.Minio.UseSSL,
			Bucket:    cfg.Storage.Bucket,
		})
	case "supabase":
		return storage.NewSupabaseStore(storage.SupabaseConfig{
			URL:            cfg.Storage.Supabase.URL,
			ServiceRoleKey: cfg.Storage.Supabase.ServiceRoleKey,
			Bucket:         cfg.Storage.Bucket,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
