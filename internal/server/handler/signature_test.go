package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"action":"opened"}`)
	secret := "webhook-secret"

	testCases := []struct {
		name      string
		payload   []byte
		signature string
		secret    string
		want      bool
	}{
		{
			name:      "valid signature",
			payload:   payload,
			signature: sign(payload, secret),
			secret:    secret,
			want:      true,
		},
		{
			name:      "missing header",
			payload:   payload,
			signature: "",
			secret:    secret,
			want:      false,
		},
		{
			name:      "wrong secret",
			payload:   payload,
			signature: sign(payload, "other-secret"),
			secret:    secret,
			want:      false,
		},
		{
			name:      "tampered payload",
			payload:   []byte(`{"action":"closed"}`),
			signature: sign(payload, secret),
			secret:    secret,
			want:      false,
		},
		{
			name:      "missing sha256 prefix",
			payload:   payload,
			signature: sign(payload, secret)[len("sha256="):],
			secret:    secret,
			want:      false,
		},
		{
			name:      "garbage signature",
			payload:   payload,
			signature: "sha256=not-a-hex-digest",
			secret:    secret,
			want:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := VerifySignature(tc.payload, tc.signature, tc.secret)
			assert.Equal(t, tc.want, got)
		})
	}
}
