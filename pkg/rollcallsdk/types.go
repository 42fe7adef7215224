package rollcallsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every non-validation error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ValidationErrorResponse is returned when request validation fails.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
	Engine   string `json:"engine"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Authentication
// ============================================================================

type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=6,max=20"`
}

type RequestOTPResponse struct {
	RequestID string `json:"requestId"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=6,max=20"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// RegisterRequest needs a password plus a phone or an email.
type RegisterRequest struct {
	Phone     string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	Name      string `json:"name,omitempty" validate:"max=120"`
	MahatmaID string `json:"mahatmaId,omitempty" validate:"max=64"`
	Age       *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender    string `json:"gender,omitempty" validate:"max=32"`
	Location  string `json:"location,omitempty" validate:"max=120"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	ID        string    `json:"id"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	MahatmaID *string   `json:"mahatmaId,omitempty"`
	Name      string    `json:"name,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is returned by every login flow. User is set for user logins,
// Admin for administrator logins.
type AuthResponse struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	User      *User      `json:"user,omitempty"`
	Admin     *Admin     `json:"admin,omitempty"`
}

type MeResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	User *User  `json:"user,omitempty"`
}

// ============================================================================
// Sessions and QR tokens
// ============================================================================

type Session struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SessionResponse struct {
	Session Session `json:"session"`
}

type SessionListResponse struct {
	Sessions []Session `json:"sessions"`
}

type CreateSessionRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

// UpdateSessionRequest changes only the fields that are set.
type UpdateSessionRequest struct {
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ValidFrom time.Time `json:"validFrom"`
	ValidTo   time.Time `json:"validTo"`
}

type QRResponse struct {
	Token     string    `json:"token"`
	ValidFrom time.Time `json:"validFrom"`
	ValidTo   time.Time `json:"validTo"`
	Payload   string    `json:"payload"`
	QRDataURL string    `json:"qrDataUrl"`
}

// ============================================================================
// Attendance
// ============================================================================

// MarkRequest carries either SessionID and Token, or the raw scanned Payload.
type MarkRequest struct {
	SessionID string `json:"sessionId,omitempty" validate:"required_without=Payload"`
	Token     string `json:"token,omitempty" validate:"required_without=Payload"`
	Payload   string `json:"payload,omitempty"`
	DeviceID  string `json:"deviceId,omitempty" validate:"max=128"`
}

type ManualMarkRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

type MarkResponse struct {
	Status       string    `json:"status"` // "marked" or "already_marked"
	AttendanceID string    `json:"attendanceId"`
	MarkedAt     time.Time `json:"markedAt"`
	Method       string    `json:"method"`
}

const (
	StatusMarked        = "marked"
	StatusAlreadyMarked = "already_marked"
)

type AttendanceRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SessionID string    `json:"sessionId"`
	MarkedAt  time.Time `json:"markedAt"`
	Method    string    `json:"method"`
	DeviceID  *string   `json:"deviceId,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	MahatmaID *string   `json:"mahatmaId,omitempty"`
}

type RosterResponse struct {
	Attendance []AttendanceRecord `json:"attendance"`
}

// ============================================================================
// Reporting and sync
// ============================================================================

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type SummaryResponse struct {
	Sessions      int        `json:"sessions"`
	Attendance    int        `json:"attendance"`
	UniqueUsers   int        `json:"uniqueUsers"`
	LastSevenDays []DayCount `json:"lastSevenDays"`
}

type SyncStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SyncPushRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type SyncPushResult struct {
	Pushed   int    `json:"pushed"`
	Location string `json:"location,omitempty"`
}

type SyncPushResponse struct {
	Result SyncPushResult `json:"result"`
}
