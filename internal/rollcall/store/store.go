package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a Tx can hand out the same repos bound to the
// transaction.
type Store interface {
	Users() Users
	Admins() Admins
	Sessions() Sessions
	SessionTokens() SessionTokens
	Attendance() Attendance
	Stats() Stats

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByPhone(ctx context.Context, phone string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts u. A clash on phone, email or mahatma id returns
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error
}

type Admins interface {
	GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error)
	CreateAdmin(ctx context.Context, a domain.Admin) error
	IsEmpty(ctx context.Context) (bool, error)
}

// SessionPatch carries the fields of an update; nil leaves a field unchanged.
type SessionPatch struct {
	Date      *string
	StartTime *string
	EndTime   *string
}

type Sessions interface {
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// ListSessions returns every session, newest date first.
	ListSessions(ctx context.Context) ([]domain.Session, error)

	CreateSession(ctx context.Context, s domain.Session) error

	// UpdateSession applies patch and bumps updated_at to now.
	UpdateSession(ctx context.Context, id string, patch SessionPatch, now time.Time) (domain.Session, error)
}

type SessionTokens interface {
	// CreateSessionToken appends a token row. Rows are never updated.
	CreateSessionToken(ctx context.Context, t domain.SessionToken) error

	// LatestValid returns the most recently created token for sessionID whose
	// interval covers now, or ErrNotFound.
	LatestValid(ctx context.Context, sessionID string, now time.Time) (domain.SessionToken, error)

	// CountForSession returns how many tokens were ever issued for sessionID.
	CountForSession(ctx context.Context, sessionID string) (int, error)
}

// Outcome tags the result of Attendance.InsertIfAbsent.
type Outcome int

const (
	Inserted Outcome = iota + 1
	AlreadyExists
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case AlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// InsertResult carries the row that now exists for the (user, session) pair:
// the new row when Outcome is Inserted, the earlier one when AlreadyExists.
type InsertResult struct {
	Outcome    Outcome
	Attendance domain.Attendance
}

type Attendance interface {
	// InsertIfAbsent records a unless a row for (a.UserID, a.SessionID)
	// exists. A duplicate is never an error.
	InsertIfAbsent(ctx context.Context, a domain.Attendance) (InsertResult, error)

	GetByUserSession(ctx context.Context, userID, sessionID string) (domain.Attendance, error)

	// ListBySession returns the roster for sessionID, newest mark first.
	ListBySession(ctx context.Context, sessionID string) ([]domain.RosterEntry, error)

	// ListForExport returns the roster for sessionID, oldest mark first.
	ListForExport(ctx context.Context, sessionID string) ([]domain.RosterEntry, error)
}

type Stats interface {
	// Summary counts sessions, attendance and distinct attendees, plus
	// sessions per date for dates on or after since (YYYY-MM-DD).
	Summary(ctx context.Context, since string) (domain.Summary, error)
}
