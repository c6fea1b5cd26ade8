package models

import (
	"encoding/json"
	"time"
)

// TokenBinding ties an issued access token to the identity it was minted
// for. Response is the JSON body that was returned to the client at issue
// time.
type TokenBinding struct {
	Token      string
	IdentityID string
	Email      string
	Response   json.RawMessage
	IssuedAt   time.Time
	ExpiresAt  time.Time
}
