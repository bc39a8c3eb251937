package assign_professionals

import "github.com/m04kA/SMC-AdminPanel/internal/domain"

// Request назначение профессионалов на услугу
type Request struct {
	Workspace       Workspace
	ServiceID       string
	ProfessionalIDs []string // пустой список снимает все назначения
}

// Response обновленная услуга
type Response struct {
	Service         domain.Record
	ProfessionalIDs []string
}
