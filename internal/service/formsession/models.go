package formsession

import "github.com/m04kA/SMC-AdminPanel/internal/domain"

// ModeKind режим формы
type ModeKind string

const (
	ModeCreate ModeKind = "create"
	ModeEdit   ModeKind = "edit"
)

// Mode режим формы: создание или редактирование записи TargetID
type Mode struct {
	Kind     ModeKind
	TargetID string
}

// Create режим создания новой записи
func Create() Mode {
	return Mode{Kind: ModeCreate}
}

// Edit режим редактирования записи id
func Edit(id string) Mode {
	return Mode{Kind: ModeEdit, TargetID: id}
}

// IntentKind какой запрос нужно отправить на бэкенд при сохранении
type IntentKind string

const (
	IntentCreate IntentKind = "create"
	IntentUpdate IntentKind = "update"
)

// Intent цель сохранения черновика
type Intent struct {
	Kind IntentKind
	ID   string
}

// Draft рабочая копия полей записи
type Draft struct {
	Mode   Mode
	Fields domain.Fields
}
