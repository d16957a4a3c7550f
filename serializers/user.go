package serializers

import "authorshaven/models"

// UserPayload is how an author appears inside other payloads: never a raw
// foreign key, always {id, username}.
type UserPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func NewUserPayload(user models.User) UserPayload {
	return UserPayload{ID: user.ID, Username: user.Username}
}
