package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/lightfingers/internal/ai"
	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/envstruct"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/logging"
	"github.com/myrjola/lightfingers/internal/planner"
	"github.com/myrjola/lightfingers/internal/pprofserver"
	"github.com/myrjola/lightfingers/internal/repositories"
	"github.com/myrjola/lightfingers/internal/sqlite"
)

type config struct {
	Addr      string `env:"LIGHTFINGERS_ADDR" envDefault:"localhost:4000"`
	PprofPort string `env:"LIGHTFINGERS_PPROF_PORT" envDefault:":6060"`
	SQLiteURL string `env:"LIGHTFINGERS_SQLITE_URL" envDefault:"./lightfingers.sqlite"`
	OpenAIKey string `env:"OPENAI_API_KEY" envDefault:""`
}

type application struct {
	logger     *slog.Logger
	catalog    *catalog.Catalog
	planner    *planner.Planner
	campaigns  *repositories.CampaignRepository
	clueWriter *ai.ClueWriter
}

func main() {
	ctx := context.Background()

	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// A .env file is a development convenience, not a requirement.
	_ = godotenv.Load()

	var cfg config
	if err := envstruct.Populate(&cfg, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error reading configuration", errors.SlogError(err))
		os.Exit(1)
	}

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	gameCatalog, err := catalog.Load()
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error loading catalog", errors.SlogError(err))
		os.Exit(1)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error connecting to database", errors.SlogError(err))
		os.Exit(1)
	}

	var clueWriter *ai.ClueWriter
	if cfg.OpenAIKey != "" {
		clueWriter = ai.NewClueWriter(cfg.OpenAIKey, gameCatalog, logger)
	} else {
		logger.LogAttrs(ctx, slog.LevelWarn, "no OpenAI key configured, clue rendering disabled")
	}

	app := application{
		logger:     logger,
		catalog:    gameCatalog,
		planner:    planner.New(gameCatalog, logger),
		campaigns:  repositories.NewCampaignRepository(db, logger),
		clueWriter: clueWriter,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server error", errors.SlogError(err))
		os.Exit(1)
	}
}
