package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "

	// TokenField is the reserved request field carrying the credential.
	// Fields with this prefix are protocol metadata, never persisted.
	TokenField = "_token"
)

// UserCtxName is the Locals key where the verified caller identity is stored.
const UserCtxName = "user"

// UserContext is the verified claim set attached to a request after
// authentication. Only these fields are authoritative for authorization
// decisions; client-asserted identity in the payload is never trusted.
type UserContext struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
