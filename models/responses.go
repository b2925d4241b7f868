package models

// LoginResponse is returned by POST /api/auth/login on success.
// Token carries the compact JWS string the client must present in the
// Authorization header on every protected request.
type LoginResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

// MessageResponse is the generic acknowledgement envelope used by
// endpoints that confirm an action without returning a resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the client-facing error envelope. The message is a
// short, structured description of the failure; internal details never
// travel in it.
type ErrorResponse struct {
	Message string `json:"message"`
}
