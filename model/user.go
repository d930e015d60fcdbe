// file: model/user.go

package model

import "time"

// User is the stored identity record. The hash fields never leave the service layer;
// handlers respond with PublicUser.
type User struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Username           string     `json:"username"`
	PasswordHash       string     `json:"-"`
	SecurityQuestionID *string    `json:"-"`
	SecurityAnswerHash *string    `json:"-"`
	IsActive           bool       `json:"is_active"`
	IsSuperuser        bool       `json:"is_superuser"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// HasSecurityQuestion reports whether the user configured a recovery challenge.
// The question reference and the answer hash are always set together.
func (u *User) HasSecurityQuestion() bool {
	return u.SecurityQuestionID != nil && u.SecurityAnswerHash != nil
}

// PublicUser is the externally visible view of a User.
type PublicUser struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	IsActive    bool       `json:"is_active"`
	IsSuperuser bool       `json:"is_superuser"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
