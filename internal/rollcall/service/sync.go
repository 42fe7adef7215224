package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/syncx"
)

type SyncService struct {
	Store   store.Store
	Adapter syncx.Adapter
}

// Push ships a session's attendance through the adapter.
func (s *SyncService) Push(ctx context.Context, sessionID string) (syncx.PushResult, error) {
	if err := requireSession(ctx, s.Store, sessionID); err != nil {
		return syncx.PushResult{}, err
	}
	rows, err := s.Store.Attendance().ListForExport(ctx, sessionID)
	if err != nil {
		return syncx.PushResult{}, fmt.Errorf("list attendance: %w", err)
	}
	return s.Adapter.PushAttendance(ctx, syncx.RecordsFromRoster(rows))
}

func (s *SyncService) PullSessions(ctx context.Context) ([]domain.Session, error) {
	return s.Adapter.PullSessions(ctx)
}

func (s *SyncService) Status() syncx.Status {
	return s.Adapter.Status()
}
