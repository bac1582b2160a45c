package models

const (
	PlaceholderValue = "-"
	DefaultUserRole  = "Invitee"
)

// User is one allowlist entry. Email is the authorization key; the schema
// carries no unique constraint on it, so duplicate invites coexist.
type User struct {
	BaseUUIDModel
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Email      string `gorm:"type:varchar(255);not null" json:"email"`
	Role       string `gorm:"type:varchar(64);not null"  json:"role"`
	LastOnline string `gorm:"type:varchar(64);not null"  json:"last_online"`
}

func (User) TableName() string {
	return "users"
}

// NewInvitee builds the placeholder record inserted by /adduser. Profile
// completion happens elsewhere; only the email is real at this point.
func NewInvitee(email string) *User {
	return &User{
		Name:       PlaceholderValue,
		Email:      email,
		Role:       DefaultUserRole,
		LastOnline: PlaceholderValue,
	}
}
