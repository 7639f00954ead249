// Package recovery wraps a search thunk with a panic-catching boundary that
// retries exactly once. It exists so a worker fault surfaced by
// pkg/parallel.SearchWithFault (or a genuine bug anywhere beneath it) costs
// one retry instead of the whole process.
package recovery

import (
	"context"

	"github.com/herohde/vantage/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// WithRecovery invokes thunk under a recover() boundary. If thunk panics,
// thunk is invoked exactly once more, unprotected: a second panic propagates
// to the caller uncaught. injectPanicAt only decides logging: the caught
// fault is logged as a warning when injectPanicAt is set, and not logged
// otherwise. WithRecovery does not suppress injection on the retry; a thunk
// built around pkg/parallel.SearchWithFault must clear its own injection
// index after the first call.
//
// This imposes no overhead on the fault-free path beyond the thunk call
// itself and a single recover() check.
func WithRecovery(ctx context.Context, thunk func() (board.Move, int32, error), injectPanicAt lang.Optional[int]) (board.Move, int32, error) {
	m, score, err, fault := tryOnce(thunk)
	if fault == nil {
		return m, score, err
	}

	if _, injected := injectPanicAt.V(); injected {
		logw.Warningf(ctx, "Recovered injected search fault: %v. Retrying once", fault)
	}

	return thunk()
}

// tryOnce runs thunk and reports any recovered panic value alongside its
// normal return values. fault is nil iff thunk returned without panicking.
func tryOnce(thunk func() (board.Move, int32, error)) (m board.Move, score int32, err error, fault any) {
	defer func() {
		if r := recover(); r != nil {
			fault = r
		}
	}()
	m, score, err = thunk()
	return
}
