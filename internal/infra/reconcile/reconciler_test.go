package reconcile

import (
	"context"
	"log/slog"
	"testing"

	"nudge/config"
	"nudge/internal/domain/entity"
	mockRepo "nudge/internal/mocks/repository"
	mockSvc "nudge/internal/mocks/service"
	mockUC "nudge/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcilerFixtures struct {
	reconciler *Reconciler
	repo       *mockRepo.MockReminderRepository
	scheduler  *mockUC.MockAlarmScheduler
	timers     *mockSvc.MockTimerService
}

func createTestReconciler(t *testing.T) reconcilerFixtures {
	repo := mockRepo.NewMockReminderRepository(t)
	scheduler := mockUC.NewMockAlarmScheduler(t)
	timers := mockSvc.NewMockTimerService(t)

	cfg := &config.Config{Reconcile: &config.ReconcileConfig{Enabled: true, CronSpec: "0 3 * * *"}}
	reconciler := NewReconciler(cfg, repo, scheduler, timers, slog.Default())

	return reconcilerFixtures{
		reconciler: reconciler,
		repo:       repo,
		scheduler:  scheduler,
		timers:     timers,
	}
}

func TestReconciler_Run_ReschedulesOnlyMissingTimers(t *testing.T) {
	fx := createTestReconciler(t)
	ctx := context.Background()

	registered := &entity.Reminder{ID: "rem-1", UserID: "user-1", Hour: 8, Repeat: entity.RepeatDaily, Type: entity.TypeMeal, Enabled: true}
	missing := &entity.Reminder{ID: "rem-2", UserID: "user-2", Hour: 9, Repeat: entity.RepeatDaily, Type: entity.TypeWeight, Enabled: true}

	fx.repo.EXPECT().
		ListAllEnabled(ctx).
		Return([]*entity.Reminder{registered, missing}, nil)

	fx.timers.EXPECT().
		Keys().
		Return([]int32{registered.UniqueID()})

	fx.scheduler.EXPECT().Schedule(ctx, missing).Return()

	err := fx.reconciler.Run(ctx)
	require.NoError(t, err)
}

func TestReconciler_Run_ListError(t *testing.T) {
	fx := createTestReconciler(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		ListAllEnabled(ctx).
		Return(nil, errors.New("store unavailable"))

	err := fx.reconciler.Run(ctx)
	assert.Error(t, err)
}

func TestReconciler_Run_NothingMissing(t *testing.T) {
	fx := createTestReconciler(t)
	ctx := context.Background()

	reminder := &entity.Reminder{ID: "rem-1", UserID: "user-1", Hour: 8, Repeat: entity.RepeatDaily, Type: entity.TypeMeal, Enabled: true}

	fx.repo.EXPECT().
		ListAllEnabled(ctx).
		Return([]*entity.Reminder{reminder}, nil)

	fx.timers.EXPECT().
		Keys().
		Return([]int32{reminder.UniqueID()})

	err := fx.reconciler.Run(ctx)
	require.NoError(t, err)
}
