package assign_professionals

import (
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	assignProfessionals "github.com/m04kA/SMC-AdminPanel/internal/usecase/assign_professionals"
)

// AssignRequest выбранные профессионалы
type AssignRequest struct {
	ProfessionalIDs []string `json:"professionalIds"`
}

// AssignResponse обновленная услуга
type AssignResponse struct {
	Service         map[string]interface{} `json:"service"`
	ProfessionalIDs []string               `json:"professionalIds"`
}

// FromUseCaseResponse конвертирует ответ use case
func FromUseCaseResponse(resp *assignProfessionals.Response) AssignResponse {
	return AssignResponse{
		Service:         resp.Service.ToMap(domain.DefaultIDField),
		ProfessionalIDs: resp.ProfessionalIDs,
	}
}
