package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sign-in/internal/config"
	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/internal/service"
	"github.com/MKhiriev/go-sign-in/internal/workers"
	"github.com/MKhiriev/go-sign-in/models"
)

// App runs a single negotiation and, when configured, keeps the metrics
// endpoint up until the process is interrupted.
type App struct {
	negotiation service.NegotiationService
	workers     *workers.Workers
	strategy    models.StrategyKind
	out         io.Writer
	logger      *logger.Logger
}

// NewApp validates the configured strategy and builds the [App].
func NewApp(cfg config.ClientApp, services *service.ClientServices, ws *workers.Workers, logger *logger.Logger) (*App, error) {
	strategy, err := models.ParseStrategyKind(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("client strategy: %w", err)
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}

	return &App{
		negotiation: services.NegotiationService,
		workers:     ws,
		strategy:    strategy,
		out:         os.Stdout,
		logger:      logger,
	}, nil
}

// Run implements [Client]. It stops on SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(a.logger.WithContext(ctx))
}

func (a *App) run(ctx context.Context) error {
	workersCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	workersDone := make(chan error, 1)
	go func() {
		workersDone <- a.workers.Run(workersCtx)
	}()

	out, err := a.negotiation.Negotiate(ctx, a.strategy, nil)
	fmt.Fprintf(a.out, "strategy: %s\nstatus: %s\n", out.Strategy, out.Status)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
	}

	if a.workers.Len() > 0 && ctx.Err() == nil {
		a.logger.Info().Str("func", "App.run").Msg("negotiation done, serving metrics until interrupted")
		select {
		case <-ctx.Done():
		case werr := <-workersDone:
			if werr != nil {
				return fmt.Errorf("workers: %w", werr)
			}
			return negotiationError(a.strategy, err)
		}
	}

	cancelWorkers()
	if werr := <-workersDone; werr != nil {
		a.logger.Err(werr).Str("func", "App.run").Msg("worker stopped with error")
	}

	return negotiationError(a.strategy, err)
}

func negotiationError(strategy models.StrategyKind, err error) error {
	if err != nil {
		return fmt.Errorf("negotiation %s: %w", strategy, err)
	}
	return nil
}
