// Package schedule builds bounded worker pools with per-worker QoS hints for
// heterogeneous (performance/efficiency core) CPUs, on top of
// golang.org/x/sync's errgroup and semaphore.
package schedule

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Policy selects how pool workers are QoS-hinted.
type Policy int

const (
	// None applies no QoS hint; workers inherit the default class.
	None Policy = iota
	// FastBias hints every worker user-initiated (performance-core preference).
	FastBias
	// EfficientBias hints every worker background (efficiency-core preference).
	EfficientBias
	// Mixed hints the first floor(N*MixedRatio) workers user-initiated and the
	// rest background.
	Mixed
)

func (p Policy) String() string {
	switch p {
	case FastBias:
		return "fast-bias"
	case EfficientBias:
		return "efficient-bias"
	case Mixed:
		return "mixed"
	default:
		return "none"
	}
}

// Config parameterizes NewPool.
type Config struct {
	// Policy selects the QoS-hinting scheme. Zero value is None.
	Policy Policy
	// Threads is the pool's worker count and concurrency bound. Must be >= 1.
	Threads int
	// MixedRatio is the fraction, in [0, 1], of workers hinted user-initiated
	// under Mixed. Required (and validated) only when Policy == Mixed.
	MixedRatio lang.Optional[float64]
}

func (c Config) String() string {
	if r, ok := c.MixedRatio.V(); ok {
		return fmt.Sprintf("%v(threads=%v, ratio=%.2f)", c.Policy, c.Threads, r)
	}
	return fmt.Sprintf("%v(threads=%v)", c.Policy, c.Threads)
}

func (c Config) validate() error {
	if c.Threads <= 0 {
		return fmt.Errorf("threads must be >= 1, was %v", c.Threads)
	}
	if c.Policy == Mixed {
		r, ok := c.MixedRatio.V()
		if !ok {
			return fmt.Errorf("mixed policy requires a MixedRatio")
		}
		if r < 0 || r > 1 {
			return fmt.Errorf("mixed ratio must be in [0, 1], was %v", r)
		}
	}
	return nil
}

// fastWorkers returns how many of cfg.Threads workers are hinted
// user-initiated, given cfg is valid.
func (c Config) fastWorkers() int {
	switch c.Policy {
	case FastBias:
		return c.Threads
	case EfficientBias:
		return 0
	case Mixed:
		r, _ := c.MixedRatio.V()
		return int(float64(c.Threads) * r)
	default:
		return 0
	}
}

// WorkerName returns the stable trace name for worker i under cfg: worker-<i>
// for None, p-core-<i>/e-core-<i> for the QoS-biased policies.
func (c Config) WorkerName(i int) string {
	if c.Policy == None {
		return fmt.Sprintf("worker-%d", i)
	}
	if i < c.fastWorkers() {
		return fmt.Sprintf("p-core-%d", i)
	}
	return fmt.Sprintf("e-core-%d", i)
}
