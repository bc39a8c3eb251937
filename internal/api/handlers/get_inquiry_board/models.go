package get_inquiry_board

import (
	"github.com/m04kA/SMC-AdminPanel/internal/api/handlers"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	inquiryBoard "github.com/m04kA/SMC-AdminPanel/internal/usecase/inquiry_board"
)

// BoardResponse профессионалы и страница ручных бронирований
type BoardResponse struct {
	Professionals []map[string]interface{} `json:"professionals"`
	Inquiries     handlers.StateResponse   `json:"inquiries"`
}

// FromUseCaseResponse конвертирует ответ use case
func FromUseCaseResponse(resp *inquiryBoard.Response) BoardResponse {
	return BoardResponse{
		Professionals: handlers.RecordsToMaps(domain.DefaultIDField, resp.Professionals),
		Inquiries:     handlers.FromState(resp.Inquiries),
	}
}
