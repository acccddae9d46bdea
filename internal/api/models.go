package api

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateMessageRequest is the body of PATCH /messages/{id}. Only the text
// can be changed.
type UpdateMessageRequest struct {
	MessageText string `json:"messageText" validate:"required"`
}

// AuthorizationHeader carries the bearer token issued on register and login
// when token issuance is enabled.
const AuthorizationHeader = "Authorization"
