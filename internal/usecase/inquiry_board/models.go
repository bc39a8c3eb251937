package inquiry_board

import (
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
)

// Request запрос доски ручных бронирований
type Request struct {
	Workspace Workspace
	Page      int // страница заявок, 0 - текущая
}

// Response профессионалы для выбора в форме и текущая страница заявок
type Response struct {
	Professionals []domain.Record
	Inquiries     crud.State
}
