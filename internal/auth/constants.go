package auth

// Token settings
const (
	TokenIssuer   = "reel-casino"
	BearerPrefix  = "Bearer "
	MinSecretSize = 32
)

// HTTP values
const (
	HeaderAuthorization = "Authorization"
	ErrMsgUnauthorized  = "Unauthorized"
)

// Log messages
const (
	LogMsgAuthFailed = "Authentication failed"
)
