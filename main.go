package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"device-telemetry/internal/api"
	"device-telemetry/internal/cache"
	"device-telemetry/internal/config"
	"device-telemetry/internal/engine"
	"device-telemetry/internal/kafka"
	"device-telemetry/internal/mqtt"
	"device-telemetry/internal/partition"
	"device-telemetry/internal/processors/ingest"
	"device-telemetry/internal/processors/sweeper"
	"device-telemetry/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (defaults to ./config.yaml when present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...", "storage", cfg.Storage.Driver)

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "Error opening storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	stateCache := cache.New()
	if err := stateCache.Hydrate(ctx, store); err != nil {
		slog.ErrorContext(ctx, "Error hydrating cache", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "Cache hydrated with initial data", "devices", stateCache.Len())
	stateCache.Dump()

	engineCfg := engine.Config{
		Repository: store,
		History:    partition.New(partition.Config{Backend: store}),
		Cache:      stateCache,
		Debounce:   cfg.Engine.Debounce,
	}
	var publisher *kafka.SnapshotPublisher
	if cfg.Kafka.PublishHistory {
		publisher = kafka.NewSnapshotPublisher(kafka.PublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.HistoryTopic,
		})
		engineCfg.Notifier = publisher
	}
	eng := engine.New(engineCfg)

	wg := sync.WaitGroup{}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.New(api.Config{Service: eng}).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	wg.Go(func() {
		slog.InfoContext(ctx, "HTTP server listening...", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	})

	var wIngest *ingest.Ingest
	if cfg.Kafka.Enabled {
		wIngest = ingest.New(ingest.Config{
			Brokers:         cfg.Kafka.Brokers,
			ConsumerGroupID: cfg.Kafka.ConsumerGroupID,
			ConsumerTopic:   cfg.Kafka.UpdatesTopic,
			Engine:          eng,
		})
		wg.Go(func() {
			wIngest.Run(ctx)
		})
	}

	var wSweeper *sweeper.Sweeper
	if cfg.Sweeper.Interval > 0 {
		wSweeper = sweeper.New(sweeper.Config{
			Interval: cfg.Sweeper.Interval,
			Engine:   eng,
		})
		wg.Go(func() {
			wSweeper.Run(ctx)
		})
	}

	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(ctx, mqtt.Config{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			QoS:      cfg.MQTT.QoS,
		}, mqtt.NewHandler(eng))
		if err != nil {
			slog.ErrorContext(ctx, "Error connecting to MQTT broker", "error", err)
			cancel()
		}
	}

	select {
	case <-sigs:
	case <-ctx.Done():
	}
	slog.InfoContext(ctx, "Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "Error shutting down HTTP server", "error", err)
	}
	if mqttClient != nil {
		mqttClient.Close(shutdownCtx)
	}

	wg.Wait()

	if wIngest != nil {
		wIngest.Close(shutdownCtx)
	}
	if wSweeper != nil {
		wSweeper.Close(shutdownCtx)
	}
	if publisher != nil {
		publisher.Close(shutdownCtx)
	}
}
