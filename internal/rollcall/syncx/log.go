package syncx

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
)

// LogAdapter accepts every push and logs it. Nothing leaves the process.
type LogAdapter struct {
	logger *slog.Logger
}

func NewLogAdapter(logger *slog.Logger) *LogAdapter {
	return &LogAdapter{logger: logger}
}

func (a *LogAdapter) PushAttendance(_ context.Context, records []Record) (PushResult, error) {
	a.logger.Info("sync push attendance", "count", len(records))
	return PushResult{Pushed: len(records)}, nil
}

func (a *LogAdapter) PullSessions(context.Context) ([]domain.Session, error) {
	a.logger.Info("sync pull sessions")
	return []domain.Session{}, nil
}

func (a *LogAdapter) Status() Status {
	return Status{Mode: "stub", Message: "Cloud sync not configured"}
}
