package impl

import (
	"context"
	"log/slog"
	"testing"

	"nudge/internal/domain/entity"
	mockRepo "nudge/internal/mocks/repository"
	mockUC "nudge/internal/mocks/usecase"
	"nudge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bootRecoveryFixtures holds all test dependencies for boot recovery tests.
type bootRecoveryFixtures struct {
	recovery  usecase.BootRecovery
	repo      *mockRepo.MockReminderRepository
	scheduler *mockUC.MockAlarmScheduler
}

func createTestBootRecovery(t *testing.T) bootRecoveryFixtures {
	repo := mockRepo.NewMockReminderRepository(t)
	scheduler := mockUC.NewMockAlarmScheduler(t)
	recovery := NewBootRecovery(repo, scheduler, slog.Default())

	return bootRecoveryFixtures{
		recovery:  recovery,
		repo:      repo,
		scheduler: scheduler,
	}
}

func TestBootRecovery_RestoreUser_SchedulesOnlyEnabled(t *testing.T) {
	fx := createTestBootRecovery(t)
	ctx := context.Background()

	mealReminder := &entity.Reminder{ID: "rem-1", UserID: "user-1", Hour: 8, Repeat: entity.RepeatDaily, Type: entity.TypeMeal, Enabled: true}
	weightReminder := &entity.Reminder{ID: "rem-2", UserID: "user-1", Hour: 21, Repeat: entity.RepeatDaily, Type: entity.TypeWeight, Enabled: true}
	disabledReminder := &entity.Reminder{ID: "rem-3", UserID: "user-1", Hour: 12, Repeat: entity.RepeatOnce, Type: entity.TypeMeal, Enabled: false}

	fx.repo.EXPECT().
		List(ctx, "user-1").
		Return([]*entity.Reminder{mealReminder, weightReminder, disabledReminder}, nil)

	fx.scheduler.EXPECT().Schedule(ctx, mealReminder).Return()
	fx.scheduler.EXPECT().Schedule(ctx, weightReminder).Return()

	err := fx.recovery.RestoreUser(ctx, "user-1")
	require.NoError(t, err)
}

func TestBootRecovery_RestoreUser_EmptyUserIsNoOp(t *testing.T) {
	fx := createTestBootRecovery(t)

	// No store reads, no schedule calls.
	err := fx.recovery.RestoreUser(context.Background(), "")
	require.NoError(t, err)
}

func TestBootRecovery_RestoreUser_ListError(t *testing.T) {
	fx := createTestBootRecovery(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		List(ctx, "user-1").
		Return(nil, errors.New("store unavailable"))

	err := fx.recovery.RestoreUser(ctx, "user-1")
	assert.Error(t, err)
}

func TestBootRecovery_RestoreAll(t *testing.T) {
	fx := createTestBootRecovery(t)
	ctx := context.Background()

	first := &entity.Reminder{ID: "rem-1", UserID: "user-1", Hour: 8, Repeat: entity.RepeatDaily, Type: entity.TypeMeal, Enabled: true}
	second := &entity.Reminder{ID: "rem-2", UserID: "user-2", Hour: 9, Repeat: entity.RepeatOnce, Type: entity.TypeWeight, Enabled: true}

	fx.repo.EXPECT().
		ListAllEnabled(ctx).
		Return([]*entity.Reminder{first, second}, nil)

	fx.scheduler.EXPECT().Schedule(ctx, first).Return()
	fx.scheduler.EXPECT().Schedule(ctx, second).Return()

	err := fx.recovery.RestoreAll(ctx)
	require.NoError(t, err)
}

func TestBootRecovery_RestoreAll_ListError(t *testing.T) {
	fx := createTestBootRecovery(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		ListAllEnabled(ctx).
		Return(nil, errors.New("store unavailable"))

	err := fx.recovery.RestoreAll(ctx)
	assert.Error(t, err)
}
