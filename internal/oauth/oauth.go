package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// UserInfo is what sign-in needs from the identity provider: the email is
// matched against provisioned profiles, the name is only informational.
type UserInfo struct {
	Email string
	Name  string
}

// Provider is the sign-in flow against an OAuth identity provider. Staff
// sign in with the org's Google Workspace accounts; the interface exists so
// handler tests can swap in a fake.
type Provider interface {
	GetConsentURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*UserInfo, error)
}

func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
