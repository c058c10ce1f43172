package screen

import (
	"context"
	"log/slog"
	"sync"

	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// scope runs a screen's actions in the background. Closing it cancels the
// context every action receives.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *slog.Logger
	name   string
}

func newScope(parent context.Context, logger *slog.Logger, name string) *scope {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(parent)
	return &scope{ctx: ctx, cancel: cancel, logger: logger.With(slog.String("screen", name)), name: name}
}

func (s *scope) launch(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Wait blocks until every launched action has returned.
func (s *scope) Wait() { s.wg.Wait() }

// Close cancels running actions and waits for them.
func (s *scope) Close() {
	s.cancel()
	s.wg.Wait()
}

// run posts Loading, then the action's terminal result from the background.
func run[T any](s *scope, live *Live[resource.Resource[T]], action string, fn func(ctx context.Context) resource.Resource[T]) {
	live.Post(resource.Loading[T]())
	s.launch(func(ctx context.Context) {
		res := fn(ctx)
		if res.IsError() {
			s.logger.Warn("action failed", slog.String("action", action), slog.Any("error", res.Err()))
		}
		live.Post(res)
	})
}

// fire runs an action whose only outcome is an error to log.
func (s *scope) fire(action string, fn func(ctx context.Context) error) {
	s.launch(func(ctx context.Context) {
		if err := fn(ctx); err != nil {
			s.logger.Warn("action failed", slog.String("action", action), slog.Any("error", err))
		}
	})
}
