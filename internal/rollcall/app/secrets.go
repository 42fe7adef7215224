package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
)

// loadTokenSecret resolves the QR token key.
//
// Sources, in order:
//   - TOKEN_SECRET, used verbatim.
//   - TOKEN_SECRET_FILE, created with a random key on first start so tokens
//     survive restarts.
//   - an ephemeral random key (dev only, Validate refuses this in prod).
//     Tokens displayed before a restart stop validating after it.
func loadTokenSecret(cfg Config, logger *slog.Logger) ([]byte, error) {
	switch {
	case cfg.TokenSecret != "":
		return []byte(cfg.TokenSecret), nil
	case cfg.TokenSecretFile != "":
		key, err := cryptox.LoadOrCreateKeyFile(cfg.TokenSecretFile, qrtoken.MinSecretSize)
		if err != nil {
			return nil, fmt.Errorf("load token secret file: %w", err)
		}
		logger.Info("token secret loaded", "path", cfg.TokenSecretFile)
		return []byte(key), nil
	default:
		key, err := cryptox.GenerateToken(qrtoken.MinSecretSize)
		if err != nil {
			return nil, err
		}
		logger.Warn("no TOKEN_SECRET configured, using an ephemeral key; displayed QR codes will not survive a restart")
		return []byte(key), nil
	}
}

// loadPepper returns the password pepper, creating the pepper file on first
// start.
func loadPepper(cfg Config) (string, error) {
	pepper, err := cryptox.LoadOrCreateKeyFile(cfg.PepperFile, cryptox.TokenSize256)
	if err != nil {
		return "", fmt.Errorf("load pepper: %w", err)
	}
	return pepper, nil
}
