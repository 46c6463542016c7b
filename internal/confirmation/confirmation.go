// Package confirmation derives single-use confirmation codes from durable
// user state. Codes are never stored: a code is an HMAC over a fingerprint
// of the user's identity and activation flag, so any identity change
// invalidates outstanding codes and concurrent signup retries re-derive
// the same code.
package confirmation

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
)

// codeLen is the length of the hex-encoded code sent to the user.
const codeLen = 32

// Generator derives and verifies confirmation codes.
type Generator struct {
	secret []byte
}

// New creates a Generator keyed by the service-wide secret.
func New(secret string) *Generator {
	return &Generator{secret: []byte(secret)}
}

// Make derives the confirmation code bound to the user's current state.
func (g *Generator) Make(user *models.UserDB) string {
	return g.make(user, user.IsActive)
}

// Check reports whether code matches the user's current state. For an
// already-active user the code derived from the pre-activation state is
// also accepted, so re-exchanging the code that activated the account
// stays valid (idempotent activation).
func (g *Generator) Check(user *models.UserDB, code string) bool {
	if hmac.Equal([]byte(g.make(user, user.IsActive)), []byte(code)) {
		return true
	}
	if user.IsActive {
		return hmac.Equal([]byte(g.make(user, false)), []byte(code))
	}
	return false
}

func (g *Generator) make(user *models.UserDB, active bool) string {
	// Per-user key, so codes for distinct users never collide even on
	// identical fingerprint text.
	kdf := hkdf.New(sha256.New, g.secret, user.UserID[:], []byte("confirmation-code"))
	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(kdf, key); err != nil {
		// hkdf only fails when the requested length exceeds its limit.
		panic(err)
	}

	fingerprint := fmt.Sprintf("%s|%s|%s|%t", user.UserID, user.Username, user.Email, active)

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(fingerprint))
	return hex.EncodeToString(mac.Sum(nil))[:codeLen]
}
