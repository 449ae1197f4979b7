package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var userKeyUnsafe = regexp.MustCompile(`[^\w\-]`)

// NormalizeUserKey lowercases a user identifier and replaces every
// character outside [A-Za-z0-9_-] with an underscore. The result keys the
// protocol_weights table.
func NormalizeUserKey(name string) string {
	return userKeyUnsafe.ReplaceAllString(strings.ToLower(name), "_")
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// WeightsKey is the normalized identifier under which this user's learned
// weights are stored.
func (u *User) WeightsKey() string {
	return NormalizeUserKey(u.Name)
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
