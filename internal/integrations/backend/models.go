package backend

// errorResponse тело ошибки бэкенда ({"error": "..."} или {"message": "..."})
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Метки исхода запроса для метрик
const (
	outcomeOK           = "ok"
	outcomeNetworkError = "network_error"
	outcomeServerError  = "server_error"
)

// maxErrorBodyLength ограничение длины тела ответа в тексте ошибки
const maxErrorBodyLength = 512
