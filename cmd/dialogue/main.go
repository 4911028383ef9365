package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/cli"
	"github.com/alexanderramin/scenariodialogue/internal/config"
	"github.com/alexanderramin/scenariodialogue/internal/db"
	"github.com/alexanderramin/scenariodialogue/internal/intelligence"
	"github.com/alexanderramin/scenariodialogue/internal/llm"
	"github.com/alexanderramin/scenariodialogue/internal/observability"
	"github.com/alexanderramin/scenariodialogue/internal/profiles"
	"github.com/alexanderramin/scenariodialogue/internal/repository"
	"github.com/alexanderramin/scenariodialogue/internal/rules"
	"github.com/alexanderramin/scenariodialogue/internal/sentiment"
	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/mattn/go-isatty"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	dbPath, err := config.DBPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logEnabled := envBool("DIALOGUE_LOG")
	var spanWriter io.Writer
	if logEnabled {
		spanWriter = os.Stderr
	}
	shutdown := observability.Init(ctx, stderrLogger(logEnabled), observability.Config{
		ServiceName:  "dialogue",
		Version:      version,
		StdoutWriter: spanWriter,
	})
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(flushCtx)
	}()

	var observers []service.UseCaseObserver
	if logEnabled {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire repositories
	scenarioRepo := repository.NewSQLiteScenarioRepo(database)
	predictionRepo := repository.NewSQLitePredictionRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire engines
	catalog := profiles.NewCatalog()
	ruleEngine := rules.NewEngine(catalog)
	sentimentEngine := sentiment.NewEngine(catalog, cfg.Sentiment)

	// Wire services
	scenarios := service.NewScenarioService(scenarioRepo, uow, observers...)
	dialogue := service.NewDialogueService(catalog, ruleEngine, scenarios, enhancer(), observers...)
	explore := service.NewExploreService(scenarios, sentimentEngine, observers...)

	app := &cli.App{
		Catalog:     catalog,
		Scenarios:   scenarios,
		Dialogue:    dialogue,
		Predictions: service.NewPredictionService(catalog, predictionRepo, scenarios, dialogue, observers...),
		Explore:     explore,
		Reports:     service.NewReportService(scenarios, dialogue, explore, observers...),
		Preferences: service.NewPreferencesService(settingsRepo, observers...),
		Config:      cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// enhancer builds the language model tiers: local Ollama first, then the
// Anthropic cloud tier when an API key is present. Nil when both are off.
func enhancer() service.ResponseEnhancer {
	llmCfg := llm.LoadConfig()

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	var tiers []intelligence.Tier
	if llmCfg.Enabled {
		tiers = append(tiers, intelligence.Tier{
			Method:  intelligence.MethodOllama,
			Client:  llm.NewOllamaClient(llmCfg, observer),
			Timeout: time.Duration(llmCfg.TaskTimeout(llm.TaskEnhanceResponse)) * time.Millisecond,
		})
	}
	if llmCfg.Cloud.Enabled {
		tiers = append(tiers, intelligence.Tier{
			Method:  intelligence.MethodCloud,
			Client:  llm.NewAnthropicClient(llmCfg, llm.NewAnthropicMessager(llmCfg.Cloud.APIKey), observer),
			Timeout: time.Duration(llmCfg.Cloud.TimeoutMs) * time.Millisecond,
		})
	}
	if len(tiers) == 0 {
		return nil
	}
	return intelligence.NewEnhancer(tiers...)
}

func stderrLogger(enabled bool) *slog.Logger {
	if !enabled {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func envBool(name string) bool {
	v, _ := strconv.ParseBool(os.Getenv(name))
	return v
}
