// README: User account model.
package user

import "time"

type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}
