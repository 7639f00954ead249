package schedule_test

import (
	"context"
	"sync"
	"testing"

	"github.com/herohde/vantage/internal/qos"
	"github.com/herohde/vantage/pkg/schedule"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestWorkerNamingByPolicy(t *testing.T) {
	tests := []struct {
		cfg   schedule.Config
		names []string
	}{
		{
			cfg:   schedule.Config{Policy: schedule.None, Threads: 3},
			names: []string{"worker-0", "worker-1", "worker-2"},
		},
		{
			cfg:   schedule.Config{Policy: schedule.FastBias, Threads: 2},
			names: []string{"p-core-0", "p-core-1"},
		},
		{
			cfg:   schedule.Config{Policy: schedule.EfficientBias, Threads: 2},
			names: []string{"e-core-0", "e-core-1"},
		},
		{
			cfg:   schedule.Config{Policy: schedule.Mixed, Threads: 4, MixedRatio: lang.Some(0.5)},
			names: []string{"p-core-0", "p-core-1", "e-core-2", "e-core-3"},
		},
	}

	for _, tt := range tests {
		for i, want := range tt.names {
			assert.Equal(t, want, tt.cfg.WorkerName(i))
		}
	}
}

func TestQoSClassByPolicy(t *testing.T) {
	ctx := context.Background()

	p := schedule.NewPool(ctx, schedule.Config{Policy: schedule.Mixed, Threads: 4, MixedRatio: lang.Some(0.25)})
	assert.Equal(t, qos.UserInitiated, p.QoSClass(0))
	assert.Equal(t, qos.Background, p.QoSClass(1))
	assert.Equal(t, qos.Background, p.QoSClass(3))

	none := schedule.NewPool(ctx, schedule.Config{Policy: schedule.None, Threads: 2})
	assert.Equal(t, qos.Default, none.QoSClass(0))
}

func TestNewPoolFallsBackOnInvalidConfig(t *testing.T) {
	ctx := context.Background()

	p := schedule.NewPool(ctx, schedule.Config{Policy: schedule.Mixed, Threads: 4})
	assert.Equal(t, 4, p.Size())
	assert.Equal(t, "worker-0", p.WorkerName(0))
	assert.Equal(t, qos.Default, p.QoSClass(0))

	zero := schedule.NewPool(ctx, schedule.Config{Policy: schedule.None, Threads: 0})
	assert.Equal(t, 1, zero.Size())
}

func TestPoolGoRunsAllWorkersBoundedBySize(t *testing.T) {
	ctx := context.Background()
	p := schedule.NewPool(ctx, schedule.Config{Policy: schedule.None, Threads: 2})

	var mu sync.Mutex
	var seen []int
	for i := 0; i < 6; i++ {
		i := i
		p.Go(i, func(ctx context.Context) error {
			mu.Lock()
			seen = append(seen, i)
			mu.Unlock()
			return nil
		})
	}

	assert.NoError(t, p.Wait())
	assert.Len(t, seen, 6)
}

func TestPoolGoPropagatesError(t *testing.T) {
	ctx := context.Background()
	p := schedule.NewPool(ctx, schedule.Config{Policy: schedule.None, Threads: 2})

	boom := assert.AnError
	p.Go(0, func(ctx context.Context) error { return boom })
	p.Go(1, func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, p.Wait(), boom)
}
