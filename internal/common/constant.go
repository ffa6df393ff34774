package common

// DefaultAuthHeader is the metadata key carrying the session token.
// gRPC metadata keys are lower-case.
const DefaultAuthHeader = "authorization"

// DefaultAuthMarker prefixes the session token inside DefaultAuthHeader.
const DefaultAuthMarker = "Bearer "
