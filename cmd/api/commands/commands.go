package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookline/core/internal/adapters/repository/jsonfile"
	"github.com/bookline/core/internal/application/services"
	"github.com/bookline/core/internal/infrastructure/config"
	"github.com/bookline/core/internal/infrastructure/logger"
	"github.com/bookline/core/internal/infrastructure/server"
	"github.com/bookline/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Bookline API server",
		Long:  "Start the Bookline API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewDataCommand creates the data management command with subcommands
func NewDataCommand() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Data directory commands",
		Long:  "Initialize and seed the flat-file collections",
	}

	dataCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the data directory and empty collection files",
		Run: func(cmd *cobra.Command, args []string) {
			runDataInit()
		},
	})

	dataCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Populate the catalog and a sample customer",
		Run: func(cmd *cobra.Command, args []string) {
			runDataSeed()
		},
	})

	return dataCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Bookline version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Bookline Core v1.0.0")
		},
	}
}

func bootstrap() (*config.Config, *logger.Logger, *jsonfile.Store) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	store := jsonfile.New(cfg.Storage.Dir, appLogger)
	if err := store.EnsureFiles(jsonfile.Collections()...); err != nil {
		appLogger.Fatal("Failed to initialize data directory", "error", err, "dir", cfg.Storage.Dir)
	}

	return cfg, appLogger, store
}

func runServer() {
	cfg, appLogger, store := bootstrap()
	defer appLogger.Close()

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting Bookline API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_dir", cfg.Storage.Dir,
	)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed to start", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
	}
}

func runDataInit() {
	cfg, appLogger, _ := bootstrap()
	defer appLogger.Close()

	appLogger.Info("Data directory ready", "dir", cfg.Storage.Dir)
}

func runDataSeed() {
	_, appLogger, store := bootstrap()
	defer appLogger.Close()

	catalog := services.NewCatalogService(jsonfile.NewServiceRepository(store), appLogger)
	customers := services.NewCustomerService(
		jsonfile.NewCustomerRepository(store),
		jsonfile.NewAppointmentRepository(store),
		appLogger,
	)

	ctx := context.Background()

	seedServices := []ports.CreateServiceRequest{
		{Title: "Haircut", Duration: intPtr(30), Price: floatPtr(20)},
		{Title: "Beard trim", Duration: intPtr(15), Price: floatPtr(10)},
		{Title: "Cut & shave", Duration: intPtr(45), Price: floatPtr(28)},
	}
	for _, req := range seedServices {
		if _, err := catalog.Create(ctx, req); err != nil {
			appLogger.Fatal("Failed to seed service", "error", err, "title", req.Title)
		}
	}

	if _, err := customers.Create(ctx, ports.CreateCustomerRequest{
		Name:  "Walk-in",
		Phone: "",
	}); err != nil {
		appLogger.Fatal("Failed to seed customer", "error", err)
	}

	appLogger.Info("Seed data written", "services", len(seedServices), "customers", 1)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
