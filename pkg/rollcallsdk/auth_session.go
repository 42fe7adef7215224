package rollcallsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *AuthSession) get(ctx context.Context, path string, out any) error {
	resp, err := s.client.do(ctx, http.MethodGet, path, s.token, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, http.StatusOK)
}

func (s *AuthSession) send(ctx context.Context, method, path string, body, out any, status int) error {
	resp, err := s.client.do(ctx, method, path, s.token, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, status)
}

func (s *AuthSession) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.get(ctx, "/api/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the session's credential.
func (s *AuthSession) Logout(ctx context.Context) error {
	resp, err := s.client.do(ctx, http.MethodPost, "/api/auth/logout", s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *AuthSession) ListSessions(ctx context.Context) ([]Session, error) {
	var out SessionListResponse
	if err := s.get(ctx, "/api/sessions", &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

func (s *AuthSession) GetSession(ctx context.Context, id string) (*Session, error) {
	var out SessionResponse
	if err := s.get(ctx, "/api/sessions/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out.Session, nil
}

func (s *AuthSession) CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	var out SessionResponse
	if err := s.send(ctx, http.MethodPost, "/api/sessions", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Session, nil
}

func (s *AuthSession) UpdateSession(ctx context.Context, id string, req UpdateSessionRequest) (*Session, error) {
	var out SessionResponse
	if err := s.send(ctx, http.MethodPut, "/api/sessions/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Session, nil
}

// IssueToken returns the session's token for the current window.
func (s *AuthSession) IssueToken(ctx context.Context, sessionID string) (*TokenResponse, error) {
	var out TokenResponse
	path := "/api/sessions/" + url.PathEscape(sessionID) + "/token"
	if err := s.send(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthSession) GetQR(ctx context.Context, sessionID string) (*QRResponse, error) {
	var out QRResponse
	if err := s.get(ctx, "/api/sessions/"+url.PathEscape(sessionID)+"/qr", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetQRPNG returns the current QR code as PNG bytes.
func (s *AuthSession) GetQRPNG(ctx context.Context, sessionID string) ([]byte, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/api/sessions/"+url.PathEscape(sessionID)+"/qr.png", s.token, nil)
	if err != nil {
		return nil, err
	}
	return readBody(resp, http.StatusOK)
}

func (s *AuthSession) Mark(ctx context.Context, sessionID, token, deviceID string) (*MarkResponse, error) {
	return s.mark(ctx, MarkRequest{SessionID: sessionID, Token: token, DeviceID: deviceID})
}

// MarkPayload submits the raw text scanned from a QR code.
func (s *AuthSession) MarkPayload(ctx context.Context, payload, deviceID string) (*MarkResponse, error) {
	return s.mark(ctx, MarkRequest{Payload: payload, DeviceID: deviceID})
}

func (s *AuthSession) mark(ctx context.Context, req MarkRequest) (*MarkResponse, error) {
	var out MarkResponse
	if err := s.send(ctx, http.MethodPost, "/api/attendance/mark", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthSession) MarkManual(ctx context.Context, sessionID, userID string) (*MarkResponse, error) {
	var out MarkResponse
	req := ManualMarkRequest{SessionID: sessionID, UserID: userID}
	if err := s.send(ctx, http.MethodPost, "/api/attendance/manual", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthSession) Roster(ctx context.Context, sessionID string) ([]AttendanceRecord, error) {
	var out RosterResponse
	if err := s.get(ctx, "/api/attendance/session/"+url.PathEscape(sessionID), &out); err != nil {
		return nil, err
	}
	return out.Attendance, nil
}

// ExportCSV returns the session's attendance as CSV.
func (s *AuthSession) ExportCSV(ctx context.Context, sessionID string) ([]byte, error) {
	path := "/api/admin/attendance/export?sessionId=" + url.QueryEscape(sessionID)
	resp, err := s.client.do(ctx, http.MethodGet, path, s.token, nil)
	if err != nil {
		return nil, err
	}
	return readBody(resp, http.StatusOK)
}

func (s *AuthSession) Summary(ctx context.Context) (*SummaryResponse, error) {
	var out SummaryResponse
	if err := s.get(ctx, "/api/admin/stats/summary", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthSession) SyncStatus(ctx context.Context) (*SyncStatusResponse, error) {
	var out SyncStatusResponse
	if err := s.get(ctx, "/api/sync/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthSession) SyncPush(ctx context.Context, sessionID string) (*SyncPushResult, error) {
	var out SyncPushResponse
	req := SyncPushRequest{SessionID: sessionID}
	if err := s.send(ctx, http.MethodPost, "/api/sync/push", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

func (s *AuthSession) PullSessions(ctx context.Context) ([]Session, error) {
	var out SessionListResponse
	if err := s.get(ctx, "/api/sync/pull-sessions", &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}
