package authservice

// LoginRequest тело запроса проверки учетных данных
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse ответ сервиса авторизации
type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
