package get_session

import "time"

// SessionResponse текущая сессия администратора
type SessionResponse struct {
	Username  string    `json:"username"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}
