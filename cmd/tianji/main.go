package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tianji/internal/cli"
	"github.com/alexanderramin/tianji/internal/db"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/alexanderramin/tianji/internal/llm"
	"github.com/alexanderramin/tianji/internal/repository"
	"github.com/alexanderramin/tianji/internal/service"
	"github.com/alexanderramin/tianji/internal/zhouyi"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tianji/tianji.db
	dbPath := os.Getenv("TIANJI_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tianji", "tianji.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	profileRepo := repository.NewSQLiteProfileRepo(database)
	readingRepo := repository.NewSQLiteReadingRepo(database)

	// Unit of work for the divination transaction (reading + quota stamp).
	uow := db.NewSQLiteUnitOfWork(database)

	// Intelligence services are always constructed: a disabled config
	// blanks the API key, which pins every reading to the deterministic
	// fallback instead of branching on nil services in the CLI.
	llmCfg := llm.LoadConfig()
	if !llmCfg.Enabled {
		llmCfg.APIKey = ""
	}
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOpenAIClient(llmCfg, observer)

	analysisSvc := intelligence.NewAnalysisService(client, observer)
	coupleSvc := intelligence.NewCoupleService(client, observer)
	personaSvc := intelligence.NewPersonaService(client, observer)

	chartSvc := service.NewChartService()

	app := &cli.App{
		Profiles:   service.NewProfileService(profileRepo),
		Readings:   service.NewReadingService(readingRepo),
		Charts:     chartSvc,
		Compat:     service.NewCompatibilityService(chartSvc, coupleSvc),
		Divination: service.NewDivinationService(profileRepo, uow, zhouyi.NewCaster(), analysisSvc),
		Analysis:   analysisSvc,
		Persona:    personaSvc,
	}

	// Detect interactive terminal for the bare-command session entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
