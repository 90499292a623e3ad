package entities

import "time"

// User - зарегистрированный пользователь трекера.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// NewUser создает пользователя с новым идентификатором.
func NewUser(username string) *User {
	return &User{
		ID:        NewID(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate проверяет схему пользователя.
func (u *User) Validate() error {
	verr := &ValidationError{Entity: "User"}
	if u.Username == "" {
		verr.add("username", "Path `username` is required.")
	}
	return verr.orNil()
}
