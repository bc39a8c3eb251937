package formsession

import (
	"fmt"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// Session держит не более одного черновика формы
// Черновик никогда не разделяет память с записью коллекции: поля копируются при открытии и при чтении
type Session struct {
	idField  string
	defaults domain.Fields
	draft    *Draft
}

// New создает сессию формы
// defaults - значения полей новой записи, idField - поле идентификатора, которое нельзя редактировать
func New(idField string, defaults domain.Fields) *Session {
	return &Session{
		idField:  idField,
		defaults: defaults.Clone(),
	}
}

// Begin открывает черновик
// Create: значения по умолчанию, поверх которых накладываются поля seed
// Edit(id): копия полей seed, seed.ID должен совпадать с id
func (s *Session) Begin(mode Mode, seed domain.Record) error {
	if s.draft != nil {
		return ErrAlreadyOpen
	}

	var fields domain.Fields
	switch mode.Kind {
	case ModeCreate:
		fields = s.defaults.Clone()
		for k, v := range seed.Fields {
			if k == s.idField {
				continue
			}
			fields[k] = domain.NormalizeValue(v)
		}
		mode.TargetID = ""
	case ModeEdit:
		if mode.TargetID == "" || seed.ID != mode.TargetID {
			return fmt.Errorf("%w: target=%q seed=%q", ErrTargetMismatch, mode.TargetID, seed.ID)
		}
		fields = seed.Fields.Clone()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode.Kind)
	}

	s.draft = &Draft{Mode: mode, Fields: fields}
	return nil
}

// Reopen закрывает текущий черновик (если есть) и открывает новый
func (s *Session) Reopen(mode Mode, seed domain.Record) error {
	s.Close()
	return s.Begin(mode, seed)
}

// SetField изменяет поле черновика; коллекция не затрагивается
func (s *Session) SetField(name string, value interface{}) error {
	if s.draft == nil {
		return ErrNotOpen
	}
	if name == "" || name == s.idField {
		return fmt.Errorf("%w: %q", ErrInvalidField, name)
	}
	s.draft.Fields[name] = domain.NormalizeValue(value)
	return nil
}

// CommitTarget определяет, какой запрос отправить при сохранении черновика
func (s *Session) CommitTarget() (Intent, error) {
	if s.draft == nil {
		return Intent{}, ErrNotOpen
	}
	if s.draft.Mode.Kind == ModeEdit {
		return Intent{Kind: IntentUpdate, ID: s.draft.Mode.TargetID}, nil
	}
	return Intent{Kind: IntentCreate}, nil
}

// Draft возвращает копию открытого черновика
func (s *Session) Draft() (Draft, bool) {
	if s.draft == nil {
		return Draft{}, false
	}
	return Draft{Mode: s.draft.Mode, Fields: s.draft.Fields.Clone()}, true
}

func (s *Session) IsOpen() bool {
	return s.draft != nil
}

// Close отбрасывает черновик
func (s *Session) Close() {
	s.draft = nil
}
