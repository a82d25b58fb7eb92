package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/port/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOncePassesCurrentTime(t *testing.T) {
	pub := mocks.NewMockMarketingUseCase(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	pub.EXPECT().PublishDuePosts(mock.Anything, at).Return(2, nil).Once()

	s, err := New(pub, configs.Scheduler{Spec: "@every 1h"}, discard())
	require.NoError(t, err)
	s.now = func() time.Time { return at }
	defer s.Stop()

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRunOnceReportsErrors(t *testing.T) {
	pub := mocks.NewMockMarketingUseCase(t)
	pub.EXPECT().PublishDuePosts(mock.Anything, mock.Anything).Return(1, errors.New("db down")).Once()

	s, err := New(pub, configs.Scheduler{Spec: "@every 1h"}, discard())
	require.NoError(t, err)
	defer s.Stop()

	n, err := s.RunOnce(context.Background())
	assert.EqualError(t, err, "db down")
	assert.Equal(t, 1, n)
}

func TestRunOnceSkipsOverlappingSweep(t *testing.T) {
	pub := mocks.NewMockMarketingUseCase(t)
	s, err := New(pub, configs.Scheduler{Spec: "@every 1h"}, discard())
	require.NoError(t, err)
	defer s.Stop()

	s.running.Store(true)
	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInvalidSchedule(t *testing.T) {
	_, err := New(mocks.NewMockMarketingUseCase(t), configs.Scheduler{Spec: "every now and then"}, discard())
	assert.Error(t, err)
}

func TestStartStopDoesNotLeak(t *testing.T) {
	pub := mocks.NewMockMarketingUseCase(t)
	pub.EXPECT().PublishDuePosts(mock.Anything, mock.Anything).Return(0, nil).Maybe()

	s, err := New(pub, configs.Scheduler{Spec: "@every 1s"}, discard())
	require.NoError(t, err)
	s.Start()
	s.Stop()
}
