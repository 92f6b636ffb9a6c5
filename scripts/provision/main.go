package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"device-telemetry/internal/config"
	"device-telemetry/internal/partition"
	"device-telemetry/internal/storage"
)

// Creates the history partition of each device id given as an argument.
// Safe to run repeatedly.
func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: provision [-config path] device_id...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "Error opening storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	partitions := partition.New(partition.Config{Backend: store})
	failed := false
	for _, deviceID := range flag.Args() {
		if err := partitions.EnsurePartition(ctx, deviceID); err != nil {
			slog.ErrorContext(ctx, "Error creating partition", "device_id", deviceID, "error", err)
			failed = true
			continue
		}
		slog.InfoContext(ctx, "Partition ready", "device_id", deviceID)
	}
	if failed {
		store.Close()
		os.Exit(1)
	}
}
