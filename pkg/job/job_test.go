package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/intranet/pkg/job"
)

func TestService_RunsJobsUntilCancelled(t *testing.T) {
	t.Parallel()

	var ok, failing, panicking atomic.Int32

	s := job.NewService().
		RegisterJob("ok", 5*time.Millisecond, func(context.Context) error {
			ok.Add(1)
			return nil
		}).
		RegisterJob("failing", 5*time.Millisecond, func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}).
		RegisterJob("panicking", 5*time.Millisecond, func(context.Context) error {
			panicking.Add(1)
			panic("boom")
		})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	s.Stop()

	stopped := ok.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, stopped, ok.Load())
}

func TestService_TryRegisterJob(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	s := job.NewService().
		TryRegisterJob(false, "disabled", time.Second, noop).
		TryRegisterJob(true, "no interval", 0, noop).
		TryRegisterJob(true, "enabled", time.Second, noop)

	require.Equal(t, 1, s.Len())
}
