package open_draft

import (
	"fmt"

	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
)

// OpenDraftRequest открытие формы создания или редактирования
type OpenDraftRequest struct {
	Mode   string                 `json:"mode"` // create | edit
	ID     string                 `json:"id,omitempty"`
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// ToMode конвертирует запрос в режим формы
func (r OpenDraftRequest) ToMode() (formsession.Mode, error) {
	switch formsession.ModeKind(r.Mode) {
	case formsession.ModeCreate:
		return formsession.Create(), nil
	case formsession.ModeEdit:
		if r.ID == "" {
			return formsession.Mode{}, fmt.Errorf("id is required for edit mode")
		}
		return formsession.Edit(r.ID), nil
	default:
		return formsession.Mode{}, fmt.Errorf("unknown mode %q", r.Mode)
	}
}
