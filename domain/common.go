package domain

import (
	"errors"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
	ErrParseUUID     = errors.New("failed to parse UUID")
)

// VerifiedIdentity is the claim pair produced by a successful token
// verification. Ownership checks compare against Email; Subject is the
// issuer's stable user id.
type VerifiedIdentity struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
}
