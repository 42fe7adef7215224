/*
Package rollcallsdk is a Go client for the rollcall attendance service.

# Client vs AuthSession

Client covers the public endpoints: health probes and the login flows. Every
successful login returns an AuthSession that carries the bearer credential
and exposes the authenticated endpoints.

	client := rollcallsdk.NewClient("http://localhost:8080")

	admin, err := client.AdminLogin(ctx, "admin", "admin123")
	session, err := admin.CreateSession(ctx, rollcallsdk.CreateSessionRequest{
		Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00",
	})
	qr, err := admin.GetQR(ctx, session.ID)

	user, err := client.Register(ctx, rollcallsdk.RegisterRequest{
		Email: "asha@example.com", Password: "correct horse",
	})
	mark, err := user.MarkPayload(ctx, qr.Payload, "device-1")

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status and the
service's error code:

	var apiErr *rollcallsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == rollcallsdk.ErrorCodeInvalidToken {
		// rescan
	}

The types in this package are also the wire types used by the server's
handlers, so the two sides cannot drift.
*/
package rollcallsdk
