package usecase_test

import (
	"context"
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository/mocks"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_ListByPNR(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepository(ctrl)
	svc := usecase.NewNotificationService(repo, newTestMetrics(), logger.NewNop())

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.EXPECT().ListByPNR(gomock.Any(), "XYZ789").Return([]entity.Notification{
		{ID: "a", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "b", CreatedAt: base.Add(time.Minute)},
	}, nil)

	ns, err := svc.ListByPNR(context.Background(), " xyz789 ")
	require.NoError(t, err)
	require.Len(t, ns, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{ns[0].ID, ns[1].ID, ns[2].ID})

	_, err = svc.ListByPNR(context.Background(), "")
	assert.True(t, entity.IsValidation(err))
}

func TestNotificationService_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to INFO", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNotificationRepository(ctrl)
		svc := usecase.NewNotificationService(repo, newTestMetrics(), logger.NewNop())

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *entity.Notification) (string, error) {
				assert.Equal(t, "ABC123", n.PNR)
				assert.Equal(t, entity.NotificationInfo, n.Type)
				assert.Equal(t, "Counter 4 is open", n.Message)
				n.ID = "n1"
				return n.ID, nil
			})

		n, err := svc.Notify(ctx, usecase.NotifyCommand{PNR: "abc123", Message: " Counter 4 is open "})
		require.NoError(t, err)
		assert.Equal(t, "n1", n.ID)
	})

	t.Run("gate change is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNotificationRepository(ctrl)
		svc := usecase.NewNotificationService(repo, newTestMetrics(), logger.NewNop())

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return("n2", nil)

		n, err := svc.Notify(ctx, usecase.NotifyCommand{PNR: "ABC123", Message: "Gate 12", Type: "gate_change"})
		require.NoError(t, err)
		assert.Equal(t, entity.NotificationGateChange, n.Type)
	})

	tests := []struct {
		name string
		cmd  usecase.NotifyCommand
	}{
		{name: "missing pnr", cmd: usecase.NotifyCommand{Message: "hi"}},
		{name: "missing message", cmd: usecase.NotifyCommand{PNR: "ABC123"}},
		{name: "disruption types are reserved", cmd: usecase.NotifyCommand{PNR: "ABC123", Message: "x", Type: entity.NotificationCancelled}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := usecase.NewNotificationService(mocks.NewMockNotificationRepository(ctrl), newTestMetrics(), logger.NewNop())

			_, err := svc.Notify(ctx, tc.cmd)
			assert.True(t, entity.IsValidation(err))
		})
	}
}
