package session

// State состояние сессии администратора
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Credentials логин и пароль
type Credentials struct {
	Username string
	Password string
}

// Principal аутентифицированный администратор
type Principal struct {
	Username string
	Token    string
}
