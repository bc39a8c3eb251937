package update_draft

// UpdateDraftRequest изменение полей открытой формы
type UpdateDraftRequest struct {
	Fields map[string]interface{} `json:"fields"`
}
