package get_inquiry_board

import (
	"context"

	inquiryBoard "github.com/m04kA/SMC-AdminPanel/internal/usecase/inquiry_board"
)

type InquiryBoardUseCase interface {
	Execute(ctx context.Context, req *inquiryBoard.Request) (*inquiryBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
