package model

// User is owned by the identity/profile subsystem. This core only reads it,
// apart from the push-token write on device registration.
type User struct {
	Base
	Email         string `gorm:"unique" json:"email"`
	Name          string `json:"name"`
	ExpoPushToken string `json:"-"`
}
