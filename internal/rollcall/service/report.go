package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
)

// ExportColumns is the header row of ExportCSV.
var ExportColumns = []string{"marked_at", "method", "phone", "name"}

// summaryDays is how far back Summary counts sessions per date.
const summaryDays = 7

type ReportService struct {
	Store store.Store
}

// Roster lists a session's attendees, latest mark first.
func (s *ReportService) Roster(ctx context.Context, sessionID string) ([]domain.RosterEntry, error) {
	if err := requireSession(ctx, s.Store, sessionID); err != nil {
		return nil, err
	}
	return s.Store.Attendance().ListBySession(ctx, sessionID)
}

// ExportCSV writes a session's attendance to w, earliest mark first.
func (s *ReportService) ExportCSV(ctx context.Context, sessionID string, w io.Writer) error {
	if err := requireSession(ctx, s.Store, sessionID); err != nil {
		return err
	}
	rows, err := s.Store.Attendance().ListForExport(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("list attendance: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.MarkedAt.UTC().Format(time.RFC3339),
			string(r.Method),
			deref(r.Phone),
			r.Name,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary reports totals plus sessions per date over the last week.
func (s *ReportService) Summary(ctx context.Context, now time.Time) (domain.Summary, error) {
	since := now.UTC().AddDate(0, 0, -summaryDays).Format(domain.DateLayout)
	return s.Store.Stats().Summary(ctx, since)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
