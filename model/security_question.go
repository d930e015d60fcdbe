package model

import "time"

type SecurityQuestion struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
