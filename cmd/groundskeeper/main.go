package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattjoyce/groundskeeper/internal/api"
	"github.com/mattjoyce/groundskeeper/internal/classifier"
	"github.com/mattjoyce/groundskeeper/internal/config"
	"github.com/mattjoyce/groundskeeper/internal/log"
	"github.com/mattjoyce/groundskeeper/internal/naming"
	"github.com/mattjoyce/groundskeeper/internal/notion"
	"github.com/mattjoyce/groundskeeper/internal/registry"
	"github.com/mattjoyce/groundskeeper/internal/rules"
	"github.com/mattjoyce/groundskeeper/internal/secrets"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "serve":
		os.Exit(runServe(args))
	case "run":
		os.Exit(runOnce(args))
	case "version":
		fmt.Printf("groundskeeper version %s\n", version)
		os.Exit(0)
	case "help", "--help", "-h":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`groundskeeper - Workspace hygiene automation for document databases

Usage:
  groundskeeper <command> [flags]

Commands:
  serve             Start the trigger HTTP server in foreground
  run               Run rules once against all configured workspaces
  version           Show version information
  help              Show this help message

Run Flags:
  --config <path>   Path to configuration file (default ./config.yaml)
  --rule <name>     Rule to run: naming, assign, nudge, accountability,
                    punctuation, or all (default all)
`)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "./config.yaml"
	}
	return config.Load(path)
}

// buildSecretStore selects the secret store backend from config.
func buildSecretStore(cfg *config.Config) secrets.Store {
	if cfg.Secrets.Kind == "dir" {
		return secrets.NewDirStore(cfg.Secrets.Dir)
	}
	return secrets.NewEnvStore()
}

// buildValidator wires the naming judge: the AI classifier when enabled
// and its key resolves, the bare heuristic otherwise.
func buildValidator(cfg *config.Config, store secrets.Store) naming.Validator {
	logger := log.WithComponent("main")
	if !cfg.Classifier.Enabled {
		return naming.NewHeuristic()
	}

	key, err := store.Get(cfg.Classifier.KeySecret, secrets.LatestVersion)
	if err != nil {
		logger.Warn("classifier key unavailable, naming falls back to heuristic",
			"secret", cfg.Classifier.KeySecret, "error", err)
		return naming.NewHeuristic()
	}

	opts := []classifier.Option{
		classifier.WithModel(cfg.Classifier.Model),
		classifier.WithMaxTokens(cfg.Classifier.MaxTokens),
	}
	if cfg.Classifier.BaseURL != "" {
		opts = append(opts, classifier.WithBaseURL(cfg.Classifier.BaseURL))
	}
	return naming.NewAIValidator(classifier.New(key, opts...))
}

func buildEngine(cfg *config.Config) *rules.Engine {
	store := buildSecretStore(cfg)
	validator := buildValidator(cfg, store)
	factory := func(ws registry.Workspace) rules.DocumentAPI {
		return notion.New(ws.Token, notion.WithPageSize(cfg.Rules.PageSize))
	}
	return rules.NewEngine(factory, validator, cfg.Rules)
}

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel, cfg.Service.LogFormat)
	logger := log.WithComponent("main")
	logger.Info("groundskeeper starting", "version", version)

	engine := buildEngine(cfg)
	loader := registry.NewLoader(cfg.Registry)
	server := api.New(api.Config{Listen: cfg.Service.Listen}, engine, loader, log.WithComponent("api"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("trigger server failed", "error", err)
		return 1
	}
	logger.Info("groundskeeper stopped")
	return 0
}

func runOnce(args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	ruleName := fs.String("rule", "all", "Rule to run, or all")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel, cfg.Service.LogFormat)
	logger := log.WithComponent("main")

	names := rules.Names()
	if *ruleName != "all" {
		if !rules.Known(*ruleName) {
			fmt.Fprintf(os.Stderr, "Unknown rule: %s\n", *ruleName)
			return 1
		}
		names = []string{*ruleName}
	}

	workspaces := registry.NewLoader(cfg.Registry).Load()
	if len(workspaces) == 0 {
		fmt.Println("no workspace available")
		return 0
	}

	engine := buildEngine(cfg)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, name := range names {
		reports, err := engine.Run(ctx, name, workspaces)
		if err != nil {
			logger.Error("rule run failed", "rule", name, "error", err)
			fmt.Println("an error occurred")
			return 1
		}
		for _, report := range reports {
			fmt.Println(report.Summary())
		}
	}
	return 0
}
