package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"log/slog"
	"sync"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	otpPeriod = 300 // seconds a login code stays valid
	otpSkew   = 1   // neighbouring periods accepted on verify
)

var otpOpts = totp.ValidateOpts{
	Period:    otpPeriod,
	Skew:      otpSkew,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// OTPSender delivers a login code to a phone.
type OTPSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// LogOTPSender writes codes to the log instead of delivering them. It is
// the only sender shipped; an SMS gateway slots in behind the interface.
// The code itself is logged at Debug only.
type LogOTPSender struct {
	Logger *slog.Logger
}

func (s LogOTPSender) SendOTP(_ context.Context, phone, code string) error {
	s.Logger.Info("otp issued", "phone", phone)
	s.Logger.Debug("otp code", "phone", phone, "code", code)
	return nil
}

// otpSecret derives a per-phone TOTP secret from the server key, so no
// per-phone secret needs storing.
func otpSecret(key []byte, phone string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte("otp:" + phone))
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(mac.Sum(nil)[:20])
}

type pendingOTP struct {
	requestID string
	expiresAt time.Time
}

// otpRequests tracks which phones asked for a code, making every code
// single-use and verify-after-request only.
type otpRequests struct {
	mu      sync.Mutex
	pending map[string]pendingOTP
}

func (r *otpRequests) put(phone string, p pendingOTP) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		r.pending = make(map[string]pendingOTP)
	}
	r.pending[phone] = p
}

// active reports whether phone has an unexpired request at now.
func (r *otpRequests) active(phone string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pending[phone]
	return ok && now.Before(p.expiresAt)
}

// take removes and returns the pending request for phone.
func (r *otpRequests) take(phone string) (pendingOTP, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pending[phone]
	delete(r.pending, phone)
	return p, ok
}

func (r *otpRequests) evictExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for phone, p := range r.pending {
		if !now.Before(p.expiresAt) {
			delete(r.pending, phone)
			n++
		}
	}
	return n
}
