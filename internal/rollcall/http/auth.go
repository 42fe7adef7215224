package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// AuthHandler serves the login flows and the principal endpoints.
type AuthHandler struct {
	AuthService *service.AuthService
	Clock       func() time.Time
}

// HandleRequestOTP godoc
//
//	@Summary		Request Login Code
//	@Description	Sends a six digit one-time code to the phone number. The code is valid for five minutes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.RequestOTPRequest			true	"Phone number"
//	@Success		200		{object}	rollcallsdk.RequestOTPResponse			"requestId, expiresIn"
//	@Failure		400		{object}	rollcallsdk.ValidationErrorResponse	"code, message, details"
//	@Failure		500		{object}	rollcallsdk.ErrorResponse				"error, error_description"
//	@Router			/api/auth/request-otp [post].
func (h *AuthHandler) HandleRequestOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rollcallsdk.RequestOTPRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.AuthService.RequestOTP(ctx, req.Phone, h.Clock())
	if err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			httpx.WriteError(w, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidRequest, "phone is required")
			return
		}
		slogx.FromContext(ctx).Error("failed to send otp", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "Failed to send code")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.RequestOTPResponse{
		RequestID: res.RequestID,
		ExpiresIn: int(res.ExpiresIn / time.Second),
	})
}

// HandleVerifyOTP godoc
//
//	@Summary		Verify Login Code
//	@Description	Exchanges a one-time code for a bearer token. The user is created on first login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.VerifyOTPRequest	true	"Phone and code"
//	@Success		200		{object}	rollcallsdk.AuthResponse		"token, user"
//	@Failure		400		{object}	rollcallsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse		"invalid_otp"
//	@Router			/api/auth/verify-otp [post].
func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.VerifyOTPRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.AuthService.VerifyOTP(r.Context(), req.Phone, req.Code, h.Clock())
	h.writeLogin(w, r, http.StatusOK, res, err)
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Creates a password user identified by phone and/or email and logs them in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.RegisterRequest	true	"Registration"
//	@Success		201		{object}	rollcallsdk.AuthResponse	"token, user"
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	rollcallsdk.ErrorResponse	"identifier_taken"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		MahatmaID: req.MahatmaID,
		Age:       req.Age,
		Gender:    req.Gender,
		Location:  req.Location,
	}, h.Clock())
	h.writeLogin(w, r, http.StatusCreated, res, err)
}

// HandleLogin godoc
//
//	@Summary		Password Login
//	@Description	Authenticates a user by email or phone and password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	rollcallsdk.AuthResponse	"token, user"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"invalid_credentials"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Identifier, req.Password, h.Clock())
	h.writeLogin(w, r, http.StatusOK, res, err)
}

// HandleAdminLogin godoc
//
//	@Summary		Administrator Login
//	@Description	Authenticates an administrator and returns an admin bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.AdminLoginRequest	true	"Credentials"
//	@Success		200		{object}	rollcallsdk.AuthResponse		"token, admin"
//	@Failure		400		{object}	rollcallsdk.ValidationErrorResponse	"missing fields"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse		"invalid_credentials"
//	@Router			/api/admin/login [post].
func (h *AuthHandler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.AdminLoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.AuthService.AdminLogin(r.Context(), req.Username, req.Password, h.Clock())
	h.writeLogin(w, r, http.StatusOK, res, err)
}

func (h *AuthHandler) writeLogin(w http.ResponseWriter, r *http.Request, status int, res service.LoginResult, err error) {
	if err == nil {
		httpx.WriteJSON(w, status, toAuthResponse(res))
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, rollcallsdk.ErrorCodeInvalidCredentials, "")
	case errors.Is(err, service.ErrInvalidOTP):
		httpx.WriteError(w, http.StatusUnauthorized, rollcallsdk.ErrorCodeInvalidOTP, "")
	case errors.Is(err, service.ErrIdentifierTaken):
		httpx.WriteError(w, http.StatusConflict, rollcallsdk.ErrorCodeIdentifierTaken, "Phone or email already registered")
	case errors.Is(err, service.ErrInvalidRegistration):
		httpx.WriteError(w, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidRequest, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "Failed to log in")
	}
}

// HandleLogout godoc
//
//	@Summary		Logout
//	@Description	Revokes the presented bearer token.
//	@Tags			Auth
//	@Success		204
//	@Failure		401	{object}	rollcallsdk.ErrorResponse	"unauthorized"
//	@Security		BearerAuth
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.AuthService.Logout(ctx, httpx.BearerFromContext(ctx)); err != nil {
		slogx.FromContext(ctx).Error("failed to evict bearer", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe godoc
//
//	@Summary		Current Principal
//	@Description	Returns the principal behind the bearer token, with the user profile for user principals.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.MeResponse		"kind, id, name, user"
//	@Failure		401	{object}	rollcallsdk.ErrorResponse	"unauthorized"
//	@Security		BearerAuth
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFromContext(ctx)

	resp := rollcallsdk.MeResponse{Kind: string(p.Kind), ID: p.ID, Name: p.Name}
	if p.Kind == bearer.KindUser {
		u, err := h.AuthService.Profile(ctx, p.ID)
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, rollcallsdk.ErrorCodeUserNotFound, "")
			return
		case err != nil:
			slogx.FromContext(ctx).Error("failed to load profile", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
			return
		}
		user := toUser(u)
		resp.User = &user
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
