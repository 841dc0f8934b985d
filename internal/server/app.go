// Package server initializes and runs the credkeeper server.
// It builds the logger, opens the configured account store, starts the gRPC
// endpoint and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	gs "github.com/dmitrijs2005/credkeeper/internal/server/grpc"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
)

// logOutput is where the server writes its structured log.
var logOutput io.Writer = os.Stdout

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	credentials *services.CredentialService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logOutput, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rm, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	cs := services.NewCredentialService(rm.Accounts(), logger.With("module", "credentials"))

	return &App{config: c, logger: logger, repos: rm, credentials: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves gRPC until ctx is cancelled or a termination signal arrives,
// then closes the account store.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.config.StoreKind)

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.credentials)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", runErr.Error())
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "store close failed", "error", err.Error())
		if runErr == nil {
			runErr = err
		}
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
