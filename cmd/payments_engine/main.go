package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/payments-engine/internal/config"
	"github.com/payments-engine/internal/engine"
	"github.com/payments-engine/internal/logger"
	"github.com/payments-engine/internal/platform/csvio"
	"github.com/payments-engine/internal/processor"
)

// The batch binary: reads the transaction stream from the single positional
// argument, applies every record in arrival order, logs rejections to stderr
// and writes the final report CSV to stdout. A malformed record or an I/O
// failure aborts the run before any report is produced.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.LoadConfig("payments_engine")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries the report.
	log := logger.NewLogger(cfg, os.Stderr)

	input, err := os.Open(os.Args[1])
	if err != nil {
		log.Error("failed to open input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	defer input.Close()

	eng := engine.New()
	service := processor.NewService(eng, nil, log)
	reader := csvio.NewReader(input)

	ctx := context.Background()
	for {
		tx, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Error("fatal decode error", "error", err)
			os.Exit(1)
		}

		// Rejections are already reported by the service; the stream
		// continues with the next record.
		_ = service.ProcessTransaction(ctx, tx)
	}

	if err := csvio.WriteReport(os.Stdout, eng.Report()); err != nil {
		log.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}
