// Package common contains shared constants and sentinel errors used across
// HealthSync components.
package common

const (
	// AuthorizationHeader carries the bearer access token on protected requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token inside AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RoleUser is the only role granted to self-registered identities.
	RoleUser = "user"
)
