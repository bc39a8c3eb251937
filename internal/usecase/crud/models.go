package crud

import (
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
	"github.com/m04kA/SMC-AdminPanel/internal/service/liststore"
)

// State снимок состояния контроллера для отображения
type State struct {
	Family    domain.Family
	Loaded    bool
	Items     []domain.Record
	Window    liststore.Window
	Draft     *formsession.Draft
	LastError error
}
