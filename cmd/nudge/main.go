package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"nudge/config"
	"nudge/internal/delivery"
	"nudge/internal/delivery/http"
	httpmiddleware "nudge/internal/delivery/http/middleware"
	"nudge/internal/delivery/http/router/handler"
	deliverymiddleware "nudge/internal/delivery/middleware"
	"nudge/internal/domain/service"
	"nudge/internal/infra/auth"
	"nudge/internal/infra/firebase"
	logs "nudge/internal/infra/log"
	"nudge/internal/infra/notification"
	"nudge/internal/infra/persistence/firestore"
	"nudge/internal/infra/reconcile"
	"nudge/internal/infra/timer"
	"nudge/internal/usecase"
	"nudge/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			wireTimerTable,
			restoreTimers,
			startReconciler,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		newLocation,
		timer.NewTable,
		asTimerService,
	)
}

// newLocation resolves the configured timezone once so every component
// computes fire times in the same location.
func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

// asTimerService exposes the timer table under its domain interface.
func asTimerService(table *timer.Table) service.TimerService {
	return table
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewReminderRepository,
			firestore.NewDeviceTokenSource,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFCMPresenter,
			auth.NewFirebaseVerifier,
			reconcile.NewReconciler,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newAlarmScheduler,
			impl.NewDispatcher,
			impl.NewBootRecovery,
			impl.NewReminderService,
		),
	)
}

// newAlarmScheduler creates the scheduler with its grace window from config.
func newAlarmScheduler(timers service.TimerService, loc *time.Location, cfg *config.Config, logger *slog.Logger) usecase.AlarmScheduler {
	return impl.NewAlarmScheduler(timers, loc, cfg.Timer.Grace, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReminderHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// wireTimerTable connects the timer table to the dispatcher. Done here
// rather than in a constructor because the dispatcher itself registers
// timers through the table.
func wireTimerTable(lc fx.Lifecycle, table *timer.Table, dispatcher usecase.Dispatcher) {
	table.SetHandler(dispatcher.OnFire)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			table.Stop()

			return nil
		},
	})
}

// restoreTimers re-registers every enabled reminder at process start.
// A failed restore is logged but does not abort startup: the reconcile
// job repairs the table on its next run.
func restoreTimers(lc fx.Lifecycle, recovery usecase.BootRecovery, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := recovery.RestoreAll(ctx); err != nil {
				logger.Warn("Timer restore failed at startup", slog.Any("error", err))
			}

			return nil
		},
	})
}

func startReconciler(lc fx.Lifecycle, cfg *config.Config, reconciler *reconcile.Reconciler) {
	if cfg.Reconcile != nil && !cfg.Reconcile.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return reconciler.Start()
		},
		OnStop: func(ctx context.Context) error {
			reconciler.Stop()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
