package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/payments-engine/internal/api_gateway"
	"github.com/payments-engine/internal/api_gateway/handler"
	"github.com/payments-engine/internal/config"
	"github.com/payments-engine/internal/engine"
	"github.com/payments-engine/internal/logger"
	"github.com/payments-engine/internal/platform/messaging/producers"
	"github.com/payments-engine/internal/processor"
)

func main() {
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("api_gateway")
	if err != nil {
		// logger is not initialized yet
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg, os.Stdout)

	log.Info("starting payments API gateway",
		"app_name", cfg.Application.Name,
		"env", cfg.Application.Env,
	)

	// Optional dead-letter channel for rejected records; nil when the topic
	// is not configured.
	rejectedProducer, err := producers.NewRejectedRecordProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("failed to initialize rejected-record producer", "error", err)
		os.Exit(1)
	}

	eng := engine.New()

	var rejections processor.RejectionPublisher
	if rejectedProducer != nil {
		rejections = rejectedProducer
	}
	baseService := processor.NewService(eng, rejections, log)

	poolService, err := processor.NewWorkerPoolService(baseService, cfg.WorkerPool.Size, log)
	if err != nil {
		log.Error("failed to initialize worker pool", "error", err)
		os.Exit(1)
	}

	accountHandler := handler.NewAccountHandler(log, poolService)
	transactionHandler := handler.NewTransactionHandler(log, poolService)

	server := api_gateway.NewServer(log, cfg, accountHandler, transactionHandler)

	errChan := make(chan error, 1)
	go func() {
		log.Info("listening", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serviceErr error
	select {
	case <-quit:
		log.Info("shutdown signal received")
	case err := <-errChan:
		log.Error("server error occurred", "error", err)
		serviceErr = err
	}

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("error stopping HTTP server", "error", err)
	}

	poolService.Shutdown()

	if rejectedProducer != nil {
		if err := rejectedProducer.Close(); err != nil {
			log.Error("error closing rejected-record producer", "error", err)
		}
	}

	if serviceErr != nil {
		log.Error("gateway shutdown with errors", "error", serviceErr)
		os.Exit(1)
	}
	log.Info("gateway shutdown completed")
}
