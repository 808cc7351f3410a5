package service_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	repo_mocks "github.com/Astemirdum/library-catalog/library/internal/repository/mocks"
	"github.com/Astemirdum/library-catalog/library/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestService_ActivityStats(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		activity := repo_mocks.NewMockActivityRepository(c)
		event := kafka.NewEvent(kafka.EventBookBorrowed, testNow)
		activity.EXPECT().RecordEvent(gomock.Any(), event).Return(nil)
		activity.EXPECT().PatronActivity(gomock.Any()).
			Return([]model.PatronActivity{{PatronID: "123456", Borrowed: 2, FeesPaid: 1.5}}, nil)

		s := newTestService(t, repo_mocks.NewMockRepository(c), service.WithActivity(activity))
		require.NoError(t, s.RecordEvent(context.Background(), event))

		stats, err := s.GetActivityStats(context.Background())
		require.NoError(t, err)
		require.Len(t, stats.Data, 1)
		require.Equal(t, 2, stats.Data[0].Borrowed)
	})

	t.Run("db error", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		activity := repo_mocks.NewMockActivityRepository(c)
		activity.EXPECT().PatronActivity(gomock.Any()).Return(nil, errors.New("conn refused"))

		_, err := newTestService(t, repo_mocks.NewMockRepository(c), service.WithActivity(activity)).
			GetActivityStats(context.Background())
		require.ErrorIs(t, err, errs.ErrInternal)
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		s := newTestService(t, repo_mocks.NewMockRepository(c))

		require.NoError(t, s.RecordEvent(context.Background(), kafka.NewEvent(kafka.EventFeePaid, testNow)))
		stats, err := s.GetActivityStats(context.Background())
		require.NoError(t, err)
		require.Empty(t, stats.Data)
	})
}
