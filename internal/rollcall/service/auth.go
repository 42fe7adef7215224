package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrInvalidOTP          = errors.New("invalid_otp")
	ErrIdentifierTaken     = errors.New("identifier already registered")
	ErrInvalidRegistration = errors.New("phone or email and a password are required")
	ErrUnauthenticated     = errors.New("unknown or expired bearer token")
)

// PasswordHasher is satisfied by cryptox.Argon2Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// AuthService runs the login flows and owns bearer issuance.
type AuthService struct {
	Store     store.Store
	Bearers   bearer.Store
	Hasher    PasswordHasher
	OTPSender OTPSender
	OTPKey    []byte

	// BearerTTL bounds credential lifetime; zero means credentials live
	// until logout or restart.
	BearerTTL time.Duration

	otp otpRequests
}

// OTPRequest is returned by RequestOTP.
type OTPRequest struct {
	RequestID string
	ExpiresIn time.Duration
}

// LoginResult carries a freshly minted bearer credential.
type LoginResult struct {
	Token     string
	Principal bearer.Principal
	ExpiresAt time.Time
	User      *domain.User
	Admin     *domain.Admin
}

type RegisterInput struct {
	Phone     string
	Email     string
	Password  string
	Name      string
	MahatmaID string
	Age       *int
	Gender    string
	Location  string
}

// RequestOTP sends phone a six digit code valid for five minutes.
func (s *AuthService) RequestOTP(ctx context.Context, phone string, now time.Time) (OTPRequest, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return OTPRequest{}, ErrInvalidOTP
	}

	code, err := totp.GenerateCodeCustom(otpSecret(s.OTPKey, phone), now, otpOpts)
	if err != nil {
		return OTPRequest{}, fmt.Errorf("generate otp: %w", err)
	}

	req := OTPRequest{RequestID: uuid.NewString(), ExpiresIn: otpPeriod * time.Second}
	s.otp.put(phone, pendingOTP{requestID: req.RequestID, expiresAt: now.Add(req.ExpiresIn)})

	if err := s.OTPSender.SendOTP(ctx, phone, code); err != nil {
		s.otp.take(phone)
		return OTPRequest{}, fmt.Errorf("send otp: %w", err)
	}
	return req, nil
}

// VerifyOTP checks code for phone, creating the user on first login, and
// issues a user bearer credential. A code is accepted at most once.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, code string, now time.Time) (LoginResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || !s.otp.active(phone, now) {
		return LoginResult{}, ErrInvalidOTP
	}

	ok, err := totp.ValidateCustom(strings.TrimSpace(code), otpSecret(s.OTPKey, phone), now, otpOpts)
	if err != nil || !ok {
		return LoginResult{}, ErrInvalidOTP
	}
	if _, ok := s.otp.take(phone); !ok {
		// A concurrent verify consumed it first.
		return LoginResult{}, ErrInvalidOTP
	}

	user, err := s.Store.Users().GetUserByPhone(ctx, phone)
	if errors.Is(err, store.ErrNotFound) {
		user = domain.User{ID: idx.New().String(), Phone: &phone, CreatedAt: now.UTC()}
		err = s.Store.Users().CreateUser(ctx, user)
		if errors.Is(err, store.ErrAlreadyExists) {
			user, err = s.Store.Users().GetUserByPhone(ctx, phone)
		} else if err == nil {
			slogx.FromContext(ctx).Info("user created by otp", "user_id", user.ID)
		}
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("resolve user: %w", err)
	}

	return s.issueUser(ctx, user, now)
}

// Register creates a password user identified by phone and/or email.
func (s *AuthService) Register(ctx context.Context, in RegisterInput, now time.Time) (LoginResult, error) {
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if (in.Phone == "" && in.Email == "") || in.Password == "" {
		return LoginResult{}, ErrInvalidRegistration
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return LoginResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Phone:        optional(in.Phone),
		Email:        optional(in.Email),
		MahatmaID:    optional(strings.TrimSpace(in.MahatmaID)),
		Name:         strings.TrimSpace(in.Name),
		Age:          in.Age,
		Gender:       optional(in.Gender),
		Location:     optional(in.Location),
		PasswordHash: &hash,
		CreatedAt:    now.UTC(),
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return LoginResult{}, ErrIdentifierTaken
		}
		return LoginResult{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return s.issueUser(ctx, user, now)
}

// Login authenticates by email (identifier containing "@") or phone.
func (s *AuthService) Login(ctx context.Context, identifier, password string, now time.Time) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	var (
		user domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.Store.Users().GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.Store.Users().GetUserByPhone(ctx, identifier)
	}
	if errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if user.PasswordHash == nil || s.Hasher.Verify(password, *user.PasswordHash) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	return s.issueUser(ctx, user, now)
}

// AdminLogin authenticates an administrator.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string, now time.Time) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	admin, err := s.Store.Admins().GetAdminByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("lookup admin: %w", err)
	}
	if s.Hasher.Verify(password, admin.PasswordHash) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	res, err := s.issue(ctx, bearer.Principal{Kind: bearer.KindAdmin, ID: admin.ID, Name: admin.Username}, now)
	if err != nil {
		return LoginResult{}, err
	}
	res.Admin = &admin
	return res, nil
}

// EnsureDefaultAdmin seeds an administrator when none exists. It reports
// whether one was created.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string, now time.Time) (bool, error) {
	empty, err := s.Store.Admins().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if !empty {
		return false, nil
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	err = s.Store.Admins().CreateAdmin(ctx, domain.Admin{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now.UTC(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

// Logout evicts token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Bearers.Evict(ctx, token)
}

// Resolve returns the principal behind token.
func (s *AuthService) Resolve(ctx context.Context, token string) (bearer.Principal, error) {
	entry, ok, err := s.Bearers.Get(ctx, token)
	if err != nil {
		return bearer.Principal{}, err
	}
	if !ok {
		return bearer.Principal{}, ErrUnauthenticated
	}
	return entry.Principal, nil
}

// Profile returns the user record behind a user principal.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// EvictExpiredOTPRequests drops code requests that can no longer verify.
func (s *AuthService) EvictExpiredOTPRequests(now time.Time) int {
	return s.otp.evictExpired(now)
}

func (s *AuthService) issueUser(ctx context.Context, user domain.User, now time.Time) (LoginResult, error) {
	res, err := s.issue(ctx, bearer.Principal{Kind: bearer.KindUser, ID: user.ID, Name: user.Name}, now)
	if err != nil {
		return LoginResult{}, err
	}
	res.User = &user
	return res, nil
}

func (s *AuthService) issue(ctx context.Context, p bearer.Principal, now time.Time) (LoginResult, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return LoginResult{}, err
	}

	entry := bearer.Entry{Principal: p, IssuedAt: now.UTC()}
	if s.BearerTTL > 0 {
		entry.ExpiresAt = entry.IssuedAt.Add(s.BearerTTL)
	}
	if err := s.Bearers.Put(ctx, token, entry); err != nil {
		return LoginResult{}, fmt.Errorf("store bearer: %w", err)
	}

	slogx.FromContext(ctx).Info("bearer issued",
		"principal_kind", p.Kind, "principal_id", p.ID, "fingerprint", cryptox.ShortFingerprint(token))
	return LoginResult{Token: token, Principal: p, ExpiresAt: entry.ExpiresAt}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
