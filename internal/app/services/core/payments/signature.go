package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrSignatureMissing   = errors.New("signature header missing")
	ErrSignatureMalformed = errors.New("signature header malformed")
	ErrSignatureExpired   = errors.New("signature timestamp outside tolerance")
	ErrSignatureMismatch  = errors.New("no signature matches the payload")
)

// ComputeSignature returns the hex HMAC-SHA256 of "<timestamp>.<payload>".
func ComputeSignature(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureHeader formats a header value the way the gateway sends it.
func SignatureHeader(secret string, timestamp int64, payload []byte) string {
	return "t=" + strconv.FormatInt(timestamp, 10) + ",v1=" + ComputeSignature(secret, timestamp, payload)
}

// VerifySignature checks a "t=<unix>,v1=<hex>[,v1=<hex>]" header against the
// payload. The timestamp must be within tolerance of now in either direction.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	if strings.TrimSpace(header) == "" {
		return ErrSignatureMissing
	}

	var timestamp int64
	var hasTimestamp bool
	signatures := make([]string, 0, 1)
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return ErrSignatureMalformed
		}
		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return ErrSignatureMalformed
			}
			timestamp = parsed
			hasTimestamp = true
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if !hasTimestamp || len(signatures) == 0 {
		return ErrSignatureMalformed
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age < 0 {
		age = -age
	}
	if tolerance > 0 && age > tolerance {
		return ErrSignatureExpired
	}

	expected := []byte(ComputeSignature(secret, timestamp, payload))
	for _, signature := range signatures {
		if hmac.Equal(expected, []byte(strings.ToLower(signature))) {
			return nil
		}
	}
	return ErrSignatureMismatch
}
