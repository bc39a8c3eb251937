package submit_draft

import "github.com/m04kA/SMC-AdminPanel/internal/api/handlers"

// SubmitResponse сохраненная запись и состояние раздела после сохранения
type SubmitResponse struct {
	Record map[string]interface{} `json:"record"`
	State  handlers.StateResponse `json:"state"`
}
