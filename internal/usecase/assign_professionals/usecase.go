package assign_professionals

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
)

// UseCase назначение профессионалов на услугу
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute проверяет, что услуга и все профессионалы существуют, и сохраняет назначение через PATCH услуги
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	ids, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("AssignProfessionals: validation failed: %v", err)
		return nil, err
	}

	services, err := req.Workspace.Controller(domain.FamilyService)
	if err != nil {
		return nil, fmt.Errorf("%w: services controller: %v", ErrInternal, err)
	}
	professionals, err := req.Workspace.Controller(domain.FamilyProfessional)
	if err != nil {
		return nil, fmt.Errorf("%w: professionals controller: %v", ErrInternal, err)
	}

	// 2. Загружаем коллекции, если они еще не загружены
	if _, err := professionals.EnsureLoaded(ctx); err != nil {
		uc.logger.Error("AssignProfessionals: failed to load professionals: %v", err)
		return nil, err
	}
	if _, err := services.EnsureLoaded(ctx); err != nil {
		uc.logger.Error("AssignProfessionals: failed to load services: %v", err)
		return nil, err
	}

	// 3. Проверяем существование услуги и профессионалов
	if _, ok := services.Get(req.ServiceID); !ok {
		uc.logger.Warn("AssignProfessionals: service id=%s not found", req.ServiceID)
		return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, req.ServiceID)
	}
	for _, id := range ids {
		if _, ok := professionals.Get(id); !ok {
			uc.logger.Warn("AssignProfessionals: professional id=%s not found", id)
			return nil, fmt.Errorf("%w: id=%s", ErrProfessionalNotFound, id)
		}
	}

	// 4. Сохраняем назначение
	assigned := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		assigned = append(assigned, id)
	}
	saved, err := services.Save(ctx, formsession.Edit(req.ServiceID), domain.Fields{
		domain.AssignedProfessionalsField: assigned,
	})
	if err != nil {
		uc.logger.Error("AssignProfessionals: failed to save service id=%s: %v", req.ServiceID, err)
		return nil, err
	}

	uc.logger.Info("AssignProfessionals: service id=%s assigned %d professionals", req.ServiceID, len(ids))
	return &Response{
		Service:         saved,
		ProfessionalIDs: domain.AssignedProfessionalIDs(saved),
	}, nil
}
