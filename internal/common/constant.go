// Package common contains shared constants and sentinel errors used across
// printquote components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RootFolder is the summary key for files stored directly at the archive root.
const RootFolder = "(root)"
