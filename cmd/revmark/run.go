package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oiime/logrusbun"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"github.com/revmark/revmark/config"
	"github.com/revmark/revmark/pkg/auth"
	"github.com/revmark/revmark/pkg/extractors"
	"github.com/revmark/revmark/pkg/models"
	"github.com/revmark/revmark/pkg/server"
	"github.com/revmark/revmark/pkg/store/postgres"
)

const (
	ErrReviewStoreTypeNotSet = "store.type must be set"
	ErrPostgresDSNNotSet     = "store.postgres.dsn must be set"
	ReviewStoreTypePostgres  = "postgres"
)

// run is the entrypoint for the revmark server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring revmark: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting revmark server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV, initializes
// the review store, and creates the phrase extractor client
func NewAppState(cfg *config.Config) *models.AppState {
	appState := &models.AppState{
		Config: cfg,
	}

	if cfg.Extractor.Enabled {
		appState.Extractor = extractors.NewClient(cfg)
		log.Info("Using phrase extractor at: ", cfg.Extractor.ServerURL)
	}

	initializeReviewStore(appState)
	setupSignalHandler(appState)
	setupPurgeProcessor(context.Background(), appState)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
	if dumpConfig {
		redacted := *cfg
		redacted.Auth.Secret = "**redacted**"
		out, err := json.MarshalIndent(redacted, "", "  ")
		if err != nil {
			log.Fatalf("Failed to dump config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// initializeReviewStore initializes the review store based on the config file / ENV
func initializeReviewStore(appState *models.AppState) {
	if appState.Config.Store.Type == "" {
		log.Fatal(ErrReviewStoreTypeNotSet)
	}

	switch appState.Config.Store.Type {
	case ReviewStoreTypePostgres:
		if appState.Config.Store.Postgres.DSN == "" {
			log.Fatal(ErrPostgresDSNNotSet)
		}
		db, err := postgres.NewPostgresConn(appState.Config.Store.Postgres.DSN)
		if err != nil {
			log.Fatal(err)
		}
		if appState.Config.Log.Level == "debug" {
			pgDebugLogging(db)
		}
		reviewStore, err := postgres.NewPostgresReviewStore(context.Background(), db)
		if err != nil {
			log.Fatal(err)
		}
		appState.ReviewStore = reviewStore
	default:
		log.Fatal(
			fmt.Sprintf(
				"store.type (%s) is not supported",
				appState.Config.Store.Type,
			),
		)
	}

	log.Info("Using review store: ", appState.Config.Store.Type)
}

func pgDebugLogging(db *bun.DB) {
	db.AddQueryHook(logrusbun.NewQueryHook(logrusbun.QueryHookOptions{
		LogSlow:         time.Second,
		Logger:          log,
		QueryLevel:      logrus.DebugLevel,
		ErrorLevel:      logrus.ErrorLevel,
		SlowLevel:       logrus.WarnLevel,
		MessageTemplate: "{{.Operation}}[{{.Duration}}]: {{.Query}}",
		ErrorTemplate:   "{{.Operation}}[{{.Duration}}]: {{.Query}}: {{.Error}}",
	}))
}

// setupSignalHandler sets up a signal handler to close the ReviewStore connection on termination
func setupSignalHandler(appState *models.AppState) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		if err := appState.ReviewStore.Close(); err != nil {
			log.Errorf("Error closing ReviewStore connection: %v", err)
		}
		os.Exit(0)
	}()
}

// setupPurgeProcessor sets up a go routine to purge soft-deleted records from
// the ReviewStore at a regular interval. It's cancellable via the passed context.
// If Config.Data.PurgeEvery is 0, this function does nothing.
func setupPurgeProcessor(ctx context.Context, appState *models.AppState) {
	interval := time.Duration(appState.Config.Data.PurgeEvery) * time.Minute
	if interval == 0 {
		log.Debug("purge delete processor disabled")
		return
	}

	log.Infof("Starting purge delete processor. Purging every %v", interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping purge delete processor")
				return
			default:
				err := appState.ReviewStore.PurgeDeleted(ctx)
				if err != nil {
					log.Errorf("error purging deleted records: %v", err)
				}
			}
			time.Sleep(interval)
		}
	}()
}
