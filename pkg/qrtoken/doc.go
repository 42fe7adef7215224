/*
Package qrtoken implements the rotating attendance codes shown on session QR
codes.

Time is cut into fixed-length windows aligned to the Unix epoch. For every
(session, window) pair the Engine derives an HMAC-SHA256 token keyed by a
server secret:

	token = hex(HMAC(secret, sessionID || windowStart.Format(time.RFC3339)))

Issuing the same session twice inside one window therefore yields the same
token, and a token stops validating the instant its window elapses (unless
the Engine is configured with grace windows).

A token travels inside a Payload, the exact JSON object

	{"sessionId":"<id>","token":"<hex>"}

which RenderPNG turns into a scannable image.
*/
package qrtoken
