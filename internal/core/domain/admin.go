package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// AdminUser is a dashboard operator account, stored in the shared admin
// database (collection "userAdm"). Pass holds either the legacy plaintext
// password or a bcrypt hash; see service.AuthService.
type AdminUser struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	UserName string `json:"userName" bson:"userName"`
	Pass     string `json:"-" bson:"pass"`
}
