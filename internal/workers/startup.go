package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-cards/internal/logger"
)

// StartupWorker runs a [Starter] once in the background, so the server can
// accept requests while the user batch is still being fetched.
type StartupWorker struct {
	ctx     context.Context
	starter Starter

	once sync.Once
	done chan struct{}
	err  error

	logger *logger.Logger
}

func NewStartupWorker(ctx context.Context, starter Starter, logger *logger.Logger) *StartupWorker {
	return &StartupWorker{
		ctx:     ctx,
		starter: starter,
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// Run launches the startup goroutine. Calls after the first do nothing.
func (w *StartupWorker) Run() {
	w.once.Do(func() {
		go func() {
			defer close(w.done)

			w.logger.Info().Msg("startup fetch started")
			w.err = w.starter.Startup(w.ctx)
			if w.err != nil {
				w.logger.Warn().Err(w.err).Msg("startup finished with error")
				return
			}
			w.logger.Info().Msg("startup fetch finished")
		}()
	})
}

// Done is closed once the startup step has returned.
func (w *StartupWorker) Done() <-chan struct{} {
	return w.done
}

// Err returns the startup error. It is only meaningful after Done is closed.
func (w *StartupWorker) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}
