// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// The security question and its answer are optional but must be supplied together.
type RegisterRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Username           string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password           string `json:"password" validate:"required,min=8,maxbytes=200"`
	SecurityQuestionID string `json:"security_question_id,omitempty" validate:"required_with=SecurityAnswer,omitempty,uuid"`
	SecurityAnswer     string `json:"security_answer,omitempty" validate:"required_with=SecurityQuestionID,omitempty,min=1,maxbytes=200"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1,maxbytes=200"`
}

// RefreshRequest carries the opaque refresh token for refresh and logout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ExtendRequest asks for a refresh token's expiry to be pushed forward without
// minting an access token. ExtendDays falls back to the configured window when zero.
type ExtendRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	ExtendDays   int    `json:"extend_days,omitempty" validate:"omitempty,min=1,max=365"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email          string `json:"email" validate:"required,email"`
	SecurityAnswer string `json:"security_answer" validate:"required,min=1,maxbytes=200"`
	NewPassword    string `json:"new_password" validate:"required,min=8,maxbytes=200"`
}

// AccessTokenResponse is returned by a successful refresh.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ExtendResponse struct {
	Extended bool `json:"extended"`
}

type RevokeResponse struct {
	Revoked bool `json:"revoked"`
}

type RevokeAllResponse struct {
	RevokedCount int64 `json:"revoked_count"`
}

type SecurityQuestionResponse struct {
	Question string `json:"question"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
