package qrtoken

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedPayload is returned when scanned or pasted text is not a QR
// payload.
var ErrMalformedPayload = errors.New("qrtoken: malformed payload")

// Payload is the content encoded into a session QR code.
type Payload struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

// Encode returns the exact wire form {"sessionId":"..","token":".."}.
func (p Payload) Encode() string {
	b, _ := json.Marshal(p) // two string fields cannot fail to marshal
	return string(b)
}

// ParsePayload decodes text produced by a scanner or pasted by hand.
// Surrounding whitespace is ignored; both fields are required.
func ParsePayload(raw string) (Payload, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Payload{}, ErrMalformedPayload
	}

	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, ErrMalformedPayload
	}

	p.SessionID = strings.TrimSpace(p.SessionID)
	p.Token = strings.TrimSpace(p.Token)
	if p.SessionID == "" || p.Token == "" {
		return Payload{}, ErrMalformedPayload
	}
	return p, nil
}
