package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

// User is a local profile. There is no authentication behind it; the X-User-Id
// header selects which profile's data a request operates on.
type User struct {
	Id          string
	Username    string
	DisplayName string
}
