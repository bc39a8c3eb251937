package handlers

import (
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/liststore"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
)

// StateResponse состояние раздела: текущая страница, окно пагинации, черновик и последняя ошибка
type StateResponse struct {
	Family    string                   `json:"family"`
	Loaded    bool                     `json:"loaded"`
	Items     []map[string]interface{} `json:"items"`
	Window    liststore.Window         `json:"window"`
	Draft     *DraftResponse           `json:"draft,omitempty"`
	LastError string                   `json:"lastError,omitempty"`
}

// DraftResponse открытый черновик формы
type DraftResponse struct {
	Mode     string                 `json:"mode"`
	TargetID string                 `json:"targetId,omitempty"`
	Fields   map[string]interface{} `json:"fields"`
}

// FamilyResponse описание раздела
type FamilyResponse struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Path         string   `json:"path"`
	IDField      string   `json:"idField"`
	PageSize     int      `json:"pageSize"`
	UpdateMethod string   `json:"updateMethod,omitempty"`
	Operations   []string `json:"operations"`
}

// FromState конвертирует состояние контроллера в ответ
func FromState(st crud.State) StateResponse {
	resp := StateResponse{
		Family: string(st.Family.Name),
		Loaded: st.Loaded,
		Items:  RecordsToMaps(st.Family.IDField, st.Items),
		Window: st.Window,
	}
	if st.Draft != nil {
		resp.Draft = &DraftResponse{
			Mode:     string(st.Draft.Mode.Kind),
			TargetID: st.Draft.Mode.TargetID,
			Fields:   map[string]interface{}(st.Draft.Fields),
		}
	}
	if st.LastError != nil {
		resp.LastError = st.LastError.Error()
	}
	return resp
}

// FromFamily конвертирует описание семейства в ответ
func FromFamily(f domain.Family) FamilyResponse {
	ops := make([]string, 0, len(f.Operations))
	for _, op := range f.Operations {
		ops = append(ops, string(op))
	}
	resp := FamilyResponse{
		Name:       string(f.Name),
		Title:      f.Title,
		Path:       f.Path,
		IDField:    f.IDField,
		PageSize:   f.PageSize,
		Operations: ops,
	}
	if f.Allows(domain.OperationUpdate) {
		resp.UpdateMethod = f.UpdateHTTPMethod()
	}
	return resp
}

// RecordsToMaps записи в JSON-представлении бэкенда (с полем идентификатора)
func RecordsToMaps(idField string, records []domain.Record) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.ToMap(idField))
	}
	return out
}
