package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on protected requests.
const AuthorizationHeaderName = "Authorization"

// DefaultRole is assigned to registered users that do not specify a role.
const DefaultRole = "tech"

// AdminRole marks accounts with full access, including destructive operations.
const AdminRole = "admin"
