package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	DefaultAvatar = "/avatars/default.svg"
)

// User is a customer or staff account. Password holds the bcrypt hash.
type User struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:255" json:"name"`
	FirstName  string     `gorm:"size:100" json:"first_name"`
	LastName   string     `gorm:"size:100" json:"last_name"`
	FullName   string     `gorm:"size:255" json:"full_name"`
	Email      string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone      string     `gorm:"size:50" json:"phone"`
	Password   string     `gorm:"size:255;not null" json:"-"`
	Role       string     `gorm:"size:20;not null;default:'user'" json:"role"`
	Avatar     string     `gorm:"size:255" json:"avatar"`
	City       string     `gorm:"size:100" json:"city"`
	Country    string     `gorm:"size:100" json:"country"`
	LastOnline *time.Time `json:"last_online"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// OnlineWindow is how recently a user must have been seen to count as online.
const OnlineWindow = 5 * time.Minute

// Presence returns "online" when the user was seen within OnlineWindow of now.
func (u *User) Presence(now time.Time) string {
	if u.LastOnline != nil && now.Sub(*u.LastOnline) <= OnlineWindow {
		return "online"
	}
	return "offline"
}
