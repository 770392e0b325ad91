// Package common contains constants and sentinel errors shared by the
// diary client packages.
package common

// AuthorizationHeaderName carries the bearer token on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the authorization header value.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// IdentityMetadataKey is the metadata key the persisted login payload is stored under.
const IdentityMetadataKey = "identity"
