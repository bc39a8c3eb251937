package assign_professionals

import (
	"context"

	assignProfessionals "github.com/m04kA/SMC-AdminPanel/internal/usecase/assign_professionals"
)

type AssignProfessionalsUseCase interface {
	Execute(ctx context.Context, req *assignProfessionals.Request) (*assignProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
