package main

import (
	"flag"
	"fmt"
	"os"

	"todomatic/internal/config"
	"todomatic/internal/logs"
	"todomatic/internal/storage"
	"todomatic/internal/tasks"
	"todomatic/internal/ui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config.toml")
	seedFlag := flag.String("seed", "", "Seed file (.db, .sqlite, .yaml) overriding seed_path")
	flag.Parse()

	configPath := *configFlag
	if configPath == "" {
		configPath = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != "" {
		cfg.SeedPath = *seedFlag
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	seed := cfg.Seed
	if cfg.SeedPath != "" {
		seed, err = storage.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load seed: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := tasks.NewStore(seed, tasks.NewIDGenerator())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid seed: %v\n", err)
		os.Exit(1)
	}
	store.SetFilter(cfg.StartFilter())
	logs.Logger.Printf("starting with %d tasks, filter %s", len(seed), store.Filter())

	if err := ui.Run(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
