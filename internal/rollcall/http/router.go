package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"

	_ "github.com/aussiebroadwan/rollcall/api/rollcall" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	bearers bearer.Store
	engine  *qrtoken.Engine

	// Clock is read once per request. Tests pin it to move between windows.
	// Bearer expiry is stamped with it, so the bearer store must share it.
	Clock func() time.Time

	// QRImageSize is the edge length of rendered QR codes in pixels.
	QRImageSize int

	AuthService    *service.AuthService
	SessionService *service.SessionService
	Ledger         *service.Ledger
	Recorder       *service.Recorder
	ReportService  *service.ReportService
	SyncService    *service.SyncService
}

func NewRouter(
	st store.Store,
	bearers bearer.Store,
	engine *qrtoken.Engine,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		bearers:      bearers,
		engine:       engine,
		Clock:        time.Now,
		QRImageSize:  qrtoken.DefaultImageSize,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAuth()
	r.registerSessions()
	r.registerAttendance()
	r.registerAdmin()
	r.registerSync()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rollcall Attendance Service API
//	@version		0.1.0
//	@description	QR code attendance tracking. Administrators schedule sessions and project a QR code whose token
//	@description	rotates every window; attendees scan it with the app to mark themselves present.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/rollcall
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque bearer token from a login endpoint. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.engine))
	r.Mux.Handle("GET /api/health", HealthHandler())
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, Clock: r.Clock}

	r.Mux.HandleFunc("POST /api/auth/request-otp", h.HandleRequestOTP)
	r.Mux.HandleFunc("POST /api/auth/verify-otp", h.HandleVerifyOTP)
	r.Mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/admin/login", h.HandleAdminLogin)

	// Any authenticated principal
	r.Mux.Handle("POST /api/auth/logout", r.secured(h.HandleLogout))
	r.Mux.Handle("GET /api/auth/me", r.secured(h.HandleMe))
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{SessionService: r.SessionService, Clock: r.Clock}
	qr := &QRHandler{Ledger: r.Ledger, ImageSize: r.QRImageSize, Clock: r.Clock}

	r.Mux.Handle("GET /api/sessions", r.secured(h.HandleList))
	r.Mux.Handle("GET /api/sessions/{id}", r.secured(h.HandleGet))
	r.Mux.Handle("POST /api/sessions", r.secured(h.HandleCreate, bearer.KindAdmin))
	r.Mux.Handle("PUT /api/sessions/{id}", r.secured(h.HandleUpdate, bearer.KindAdmin))

	r.Mux.Handle("POST /api/sessions/{id}/token", r.secured(qr.HandleToken, bearer.KindAdmin))
	r.Mux.Handle("GET /api/sessions/{id}/qr", r.secured(qr.HandleQR, bearer.KindAdmin))
	r.Mux.Handle("GET /api/sessions/{id}/qr.png", r.secured(qr.HandlePNG, bearer.KindAdmin))
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{Recorder: r.Recorder, ReportService: r.ReportService, Clock: r.Clock}

	r.Mux.Handle("POST /api/attendance/mark", r.secured(h.HandleMark, bearer.KindUser))
	r.Mux.Handle("POST /api/attendance/manual", r.secured(h.HandleManual, bearer.KindAdmin))
	r.Mux.Handle("GET /api/attendance/session/{id}", r.secured(h.HandleRoster, bearer.KindAdmin))
}

func (r *Router) registerAdmin() {
	h := &ReportHandler{ReportService: r.ReportService, Clock: r.Clock}

	r.Mux.Handle("GET /api/admin/attendance/export", r.secured(h.HandleExport, bearer.KindAdmin))
	r.Mux.Handle("GET /api/admin/stats/summary", r.secured(h.HandleSummary, bearer.KindAdmin))
}

func (r *Router) registerSync() {
	h := &SyncHandler{SyncService: r.SyncService}

	r.Mux.Handle("GET /api/sync/status", r.secured(h.HandleStatus, bearer.KindAdmin))
	r.Mux.Handle("POST /api/sync/push", r.secured(h.HandlePush, bearer.KindAdmin))
	r.Mux.Handle("GET /api/sync/pull-sessions", r.secured(h.HandlePullSessions, bearer.KindAdmin))
}

// secured wraps h in bearer authentication, restricted to kinds when given.
func (r *Router) secured(h http.HandlerFunc, kinds ...bearer.Kind) http.Handler {
	return httpx.Chain(h, httpx.RequirePrincipal(r.bearers, kinds...))
}
