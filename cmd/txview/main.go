// Command txview shows the transaction history chart in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/client"
	"github.com/zoomie/transations/internal/config"
	"github.com/zoomie/transations/internal/logger"
	"github.com/zoomie/transations/internal/tui"
)

func main() {
	cfg := config.Load()

	apiURL := flag.String("api", cfg.APIBaseURL, "base URL of the transactions API")
	timeout := flag.Duration("timeout", 0, "request timeout (0 waits indefinitely)")
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	// The terminal belongs to the chart, so logs are only written to a file.
	if *logFile != "" {
		if err := logger.InitFile(cfg.AppEnv, *logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	log := logger.With(zap.String("api", *apiURL))

	opts := []client.Option{client.WithLogger(log)}
	if *timeout > 0 {
		opts = append(opts, client.WithTimeout(*timeout))
	}
	api := client.New(*apiURL, opts...)

	m := tui.New(context.Background(), api, log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Error("txview failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
