package inquiry_board

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// UseCase загрузка доски ручных бронирований
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute параллельно перезагружает профессионалов и заявки и возвращается после завершения обеих загрузок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Workspace == nil {
		return nil, fmt.Errorf("%w: workspace is required", ErrInvalidInput)
	}
	if req.Page < 0 {
		return nil, fmt.Errorf("%w: page must be non-negative", ErrInvalidInput)
	}

	professionals, err := req.Workspace.Controller(domain.FamilyProfessional)
	if err != nil {
		return nil, fmt.Errorf("%w: professionals controller: %v", ErrInternal, err)
	}
	inquiries, err := req.Workspace.Controller(domain.FamilyInquiry)
	if err != nil {
		return nil, fmt.Errorf("%w: inquiries controller: %v", ErrInternal, err)
	}

	// 2. Параллельная загрузка обеих коллекций
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := professionals.Refresh(gctx)
		return err
	})
	g.Go(func() error {
		_, err := inquiries.Refresh(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("InquiryBoard: failed to load board: %v", err)
		return nil, err
	}

	// 3. Переход на запрошенную страницу заявок
	if req.Page > 0 {
		if err := inquiries.SetPage(req.Page); err != nil {
			uc.logger.Warn("InquiryBoard: page=%d unavailable: %v", req.Page, err)
			return nil, err
		}
	}

	uc.logger.Info("InquiryBoard: loaded board")
	return &Response{
		Professionals: professionals.Records(),
		Inquiries:     inquiries.Snapshot(),
	}, nil
}
