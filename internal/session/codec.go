package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	"shopfront/internal/domain"
)

// The cart travels in a signed cookie: v1.<base64url(json)>.<base64url(mac)>.
// Anything that fails the signature or shape check decodes to an empty cart.

const codecVersion = "v1"

func sign(secret, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

func Encode(secret []byte, cart domain.Cart) string {
	payload, err := json.Marshal(cart)
	if err != nil {
		return ""
	}
	b64 := base64.RawURLEncoding
	return codecVersion + "." + b64.EncodeToString(payload) + "." + b64.EncodeToString(sign(secret, payload))
}

func Decode(secret []byte, raw string) domain.Cart {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 || parts[0] != codecVersion {
		return domain.Cart{}
	}
	b64 := base64.RawURLEncoding
	payload, err := b64.DecodeString(parts[1])
	if err != nil {
		return domain.Cart{}
	}
	mac, err := b64.DecodeString(parts[2])
	if err != nil {
		return domain.Cart{}
	}
	if !hmac.Equal(mac, sign(secret, payload)) {
		return domain.Cart{}
	}
	var cart domain.Cart
	if err := json.Unmarshal(payload, &cart); err != nil || cart == nil {
		return domain.Cart{}
	}
	return cart
}
