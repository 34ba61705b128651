package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	const secret = "whsec_test"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
	signedAt := now.Add(-time.Minute).Unix()
	valid := SignatureHeader(secret, signedAt, payload)

	tests := []struct {
		name    string
		header  string
		payload []byte
		wantErr error
	}{
		{name: "valid", header: valid, payload: payload},
		{name: "valid among rotated secrets", header: valid + ",v1=deadbeef", payload: payload},
		{name: "missing", header: "", payload: payload, wantErr: ErrSignatureMissing},
		{name: "no timestamp", header: "v1=abc", payload: payload, wantErr: ErrSignatureMalformed},
		{name: "bad timestamp", header: "t=yesterday,v1=abc", payload: payload, wantErr: ErrSignatureMalformed},
		{name: "garbage", header: "nonsense", payload: payload, wantErr: ErrSignatureMalformed},
		{name: "tampered payload", header: valid, payload: []byte(`{"id":"evt_2"}`), wantErr: ErrSignatureMismatch},
		{name: "wrong secret", header: SignatureHeader("other", signedAt, payload), payload: payload, wantErr: ErrSignatureMismatch},
		{name: "too old", header: SignatureHeader(secret, now.Add(-6*time.Minute).Unix(), payload), payload: payload, wantErr: ErrSignatureExpired},
		{name: "too far ahead", header: SignatureHeader(secret, now.Add(6*time.Minute).Unix(), payload), payload: payload, wantErr: ErrSignatureExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature(tt.payload, tt.header, secret, 5*time.Minute, now)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}
