// Package handler provides the HTTP handlers for inbound webhooks.
package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// signatureHeader is the GitHub header carrying the payload HMAC.
const signatureHeader = "X-Hub-Signature-256"

// VerifySignature checks that signature matches the HMAC-SHA256 of payload
// under secret, using the "sha256=<hex>" header format. A missing header is
// invalid. The comparison is constant-time; it never panics or errors.
func VerifySignature(payload []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
