package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/client"
	"github.com/zoomie/transations/internal/config"
	"github.com/zoomie/transations/internal/database"
	"github.com/zoomie/transations/internal/handlers"
	"github.com/zoomie/transations/internal/logger"
	"github.com/zoomie/transations/internal/statement"
	"github.com/zoomie/transations/internal/storage"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.String("path", cfg.DatabaseURL), zap.Error(err))
	}
	defer db.Close()

	repo := database.NewRepository(db)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	ctx := context.Background()
	if cfg.Debug {
		logger.Warn("Debug mode: replacing the default user's transactions with mock data", zap.String("path", cfg.MockDataPath))
		if err := seedDefaultUser(ctx, repo, cfg.MockDataPath); err != nil {
			logger.Fatal("Failed to seed default user", zap.Error(err))
		}
	}

	api := client.New(cfg.APIBaseURL, client.WithLogger(logger.Log))

	h, err := handlers.New(ctx, repo, store, api, "web/templates", cfg.MockDataPath)
	if err != nil {
		logger.Fatal("Failed to initialize handlers", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("url", "http://localhost:"+cfg.ServerPort))
		for _, ip := range lanIPs() {
			logger.Info("LAN access", zap.String("url", "http://"+ip+":"+cfg.ServerPort))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", zap.Error(err))
	}
}

// seedDefaultUser loads the mock statement into the default user's history.
func seedDefaultUser(ctx context.Context, repo *database.Repository, path string) error {
	userID, err := repo.EnsureDefaultUser(ctx)
	if err != nil {
		return err
	}
	entries, err := statement.ParseFile(path)
	if err != nil {
		return err
	}
	if err := repo.ReplaceTransactions(ctx, userID, statement.ToTransactions(userID, entries)); err != nil {
		return err
	}
	logger.Debug("Seeded default user", zap.Int64("user_id", userID), zap.Int("transactions", len(entries)))
	return nil
}

func lanIPs() []string {
	var ips []string
	ifaces, err := net.Interfaces()
	if err != nil {
		return ips
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip = ip.To4(); ip != nil {
				ips = append(ips, ip.String())
			}
		}
	}
	return ips
}
