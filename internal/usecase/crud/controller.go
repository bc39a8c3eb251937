package crud

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
	"github.com/m04kA/SMC-AdminPanel/internal/service/liststore"
)

// Controller связывает коллекцию, черновик и бэкенд одного семейства записей
// Все операции сериализуются: следующая операция начинается после завершения предыдущей,
// включая сетевой вызов
type Controller struct {
	mu sync.Mutex

	family   domain.Family
	actor    string
	backend  Backend
	audit    AuditRecorder
	resolver Resolver
	logger   Logger

	store   *liststore.Store
	form    *formsession.Session
	loaded  bool
	lastErr error
}

// NewController создает контроллер семейства family от имени пользователя actor
func NewController(family domain.Family, actor string, backendClient Backend, audit AuditRecorder, logger Logger) (*Controller, error) {
	if audit == nil {
		audit = noopAudit{}
	}

	c := &Controller{
		family:  family,
		actor:   actor,
		backend: backendClient,
		audit:   audit,
		logger:  logger,
		form:    formsession.New(family.IDField, family.Defaults),
	}

	loader := liststore.LoaderFunc(func(ctx context.Context) ([]domain.Record, error) {
		return c.backend.List(ctx, c.family)
	})
	store, err := liststore.New(string(family.Name), family.PageSize, loader, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: NewController - family=%s: %v", ErrInternal, family.Name, err)
	}
	c.store = store

	return c, nil
}

// WithResolver подключает поиск записей для полей-ссылок семейства
func (c *Controller) WithResolver(resolver Resolver) *Controller {
	c.resolver = resolver
	return c
}

// Family описание семейства записей
func (c *Controller) Family() domain.Family {
	return c.family
}

// Refresh перезагружает коллекцию с бэкенда
// При ошибке коллекция и страница не меняются
func (c *Controller) Refresh(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.store.Load(ctx); err != nil {
		c.lastErr = c.mapBackendError("Refresh", err)
		return c.state(), c.lastErr
	}

	c.loaded = true
	c.lastErr = nil
	return c.state(), nil
}

// EnsureLoaded загружает коллекцию, если она еще не загружалась
func (c *Controller) EnsureLoaded(ctx context.Context) (State, error) {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()

	if loaded {
		return c.Snapshot(), nil
	}
	return c.Refresh(ctx)
}

// Page переключает текущую страницу и возвращает ее записи
func (c *Controller) Page(n int) ([]domain.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.SetPage(n); err != nil {
		if errors.Is(err, liststore.ErrOutOfRange) {
			return nil, fmt.Errorf("%w: Page - page=%d total=%d", ErrOutOfRange, n, c.store.TotalPages())
		}
		return nil, fmt.Errorf("%w: Page - %v", ErrInternal, err)
	}
	return c.store.CurrentItems(), nil
}

// SetPage переключает текущую страницу без возврата записей
func (c *Controller) SetPage(n int) error {
	_, err := c.Page(n)
	return err
}

// Begin открывает черновик создания или редактирования
// Для Edit поля берутся из загруженной коллекции, seed игнорируется
func (c *Controller) Begin(mode formsession.Mode, seed domain.Fields) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.open(mode, seed, false)
}

// Reopen заменяет открытый черновик новым
func (c *Controller) Reopen(mode formsession.Mode, seed domain.Fields) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.open(mode, seed, true)
}

func (c *Controller) open(mode formsession.Mode, seed domain.Fields, replace bool) error {
	var rec domain.Record
	switch mode.Kind {
	case formsession.ModeCreate:
		if !c.family.Allows(domain.OperationCreate) {
			return fmt.Errorf("%w: Begin - create in family=%s", ErrOperationNotAllowed, c.family.Name)
		}
		rec = domain.Record{Fields: seed}
	case formsession.ModeEdit:
		if !c.family.Allows(domain.OperationUpdate) {
			return fmt.Errorf("%w: Begin - update in family=%s", ErrOperationNotAllowed, c.family.Name)
		}
		stored, ok := c.store.Get(mode.TargetID)
		if !ok {
			return fmt.Errorf("%w: Begin - id=%s", ErrRecordNotFound, mode.TargetID)
		}
		rec = stored
	default:
		return fmt.Errorf("%w: Begin - mode=%q", ErrInvalidField, mode.Kind)
	}

	var err error
	if replace {
		err = c.form.Reopen(mode, rec)
	} else {
		err = c.form.Begin(mode, rec)
	}
	if err != nil {
		if errors.Is(err, formsession.ErrAlreadyOpen) {
			return fmt.Errorf("%w: Begin - family=%s", ErrDraftAlreadyOpen, c.family.Name)
		}
		return fmt.Errorf("%w: Begin - %v", ErrInternal, err)
	}

	c.lastErr = nil
	return nil
}

// SetField меняет одно поле открытого черновика
func (c *Controller) SetField(name string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.setField(name, value)
}

// SetFields меняет несколько полей открытого черновика
// Поля применяются по одному; первая ошибка прерывает применение
func (c *Controller) SetFields(fields domain.Fields) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, value := range fields {
		if err := c.setField(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) setField(name string, value interface{}) error {
	if err := c.form.SetField(name, value); err != nil {
		switch {
		case errors.Is(err, formsession.ErrNotOpen):
			return fmt.Errorf("%w: SetField - family=%s", ErrDraftNotOpen, c.family.Name)
		case errors.Is(err, formsession.ErrInvalidField):
			return fmt.Errorf("%w: SetField - %v", ErrInvalidField, err)
		default:
			return fmt.Errorf("%w: SetField - %v", ErrInternal, err)
		}
	}
	return nil
}

// CloseDraft закрывает черновик без отправки
func (c *Controller) CloseDraft() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form.Close()
	c.lastErr = nil
}

// Submit отправляет черновик на бэкенд
// Успех: запись добавляется или заменяется в коллекции, черновик закрывается
// Ошибка: коллекция не меняется, черновик остается открытым
func (c *Controller) Submit(ctx context.Context) (domain.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.submit(ctx)
}

// Save открывает черновик mode, применяет fields и отправляет его как одна операция контроллера
// Открытый черновик администратора не трогается: Save возвращает ErrDraftAlreadyOpen
// При ошибке черновик, открытый Save, закрывается
func (c *Controller) Save(ctx context.Context, mode formsession.Mode, fields domain.Fields) (domain.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if draft, ok := c.form.Draft(); ok {
		return domain.Record{}, fmt.Errorf("%w: Save - family=%s has open %s draft", ErrDraftAlreadyOpen, c.family.Name, draft.Mode.Kind)
	}

	var seed domain.Fields
	if mode.Kind == formsession.ModeCreate {
		seed = fields
	}
	if err := c.open(mode, seed, false); err != nil {
		return domain.Record{}, err
	}

	saved, err := c.saveOpened(ctx, mode, fields)
	if err != nil {
		c.form.Close()
		return domain.Record{}, err
	}
	return saved, nil
}

func (c *Controller) saveOpened(ctx context.Context, mode formsession.Mode, fields domain.Fields) (domain.Record, error) {
	if mode.Kind == formsession.ModeEdit {
		for name, value := range fields {
			if err := c.setField(name, value); err != nil {
				return domain.Record{}, err
			}
		}
	}
	return c.submit(ctx)
}

func (c *Controller) submit(ctx context.Context) (domain.Record, error) {
	intent, err := c.form.CommitTarget()
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: Submit - family=%s", ErrDraftNotOpen, c.family.Name)
	}
	draft, _ := c.form.Draft()

	op := domain.OperationCreate
	if intent.Kind == formsession.IntentUpdate {
		op = domain.OperationUpdate
	}
	if !c.family.Allows(op) {
		return domain.Record{}, fmt.Errorf("%w: Submit - %s in family=%s", ErrOperationNotAllowed, op, c.family.Name)
	}

	if err := validateFields(c.family.Rules, draft.Fields); err != nil {
		c.lastErr = err
		c.logger.Warn("Submit: validation failed family=%s: %v", c.family.Name, err)
		return domain.Record{}, err
	}

	payload, embedded, err := c.resolveReferences(ctx, draft.Fields)
	if err != nil {
		c.lastErr = err
		c.logger.Warn("Submit: reference check failed family=%s: %v", c.family.Name, err)
		return domain.Record{}, err
	}

	var saved domain.Record
	if op == domain.OperationCreate {
		saved, err = c.backend.Create(ctx, c.family, payload)
	} else {
		saved, err = c.backend.Update(ctx, c.family, intent.ID, payload)
	}
	if err != nil {
		c.lastErr = c.mapBackendError("Submit", err)
		c.record(ctx, op, recordIDPtr(intent.ID), c.lastErr)
		return domain.Record{}, c.lastErr
	}

	if saved.ID == "" {
		saved.ID = intent.ID
	}
	// бэкенд может вернуть ссылку только id: в коллекции храним запись целиком
	for field, obj := range embedded {
		if _, isObject := saved.Fields[field].(map[string]interface{}); !isObject {
			if saved.Fields == nil {
				saved.Fields = domain.Fields{}
			}
			saved.Fields[field] = obj
		}
	}
	if err := c.store.Upsert(saved); err != nil {
		c.lastErr = fmt.Errorf("%w: Submit - upsert: %v", ErrInternal, err)
		return domain.Record{}, c.lastErr
	}

	c.form.Close()
	c.lastErr = nil
	c.record(ctx, op, recordIDPtr(saved.ID), nil)

	c.logger.Info("Submit: %s succeeded family=%s id=%s", op, c.family.Name, saved.ID)
	return saved.Clone(), nil
}

// resolveReferences заменяет поля-ссылки найденными записями
// Вызывается под мьютексом контроллера, поэтому семейство не может ссылаться само на себя
func (c *Controller) resolveReferences(ctx context.Context, fields domain.Fields) (domain.Fields, map[string]map[string]interface{}, error) {
	if len(c.family.References) == 0 {
		return fields, nil, nil
	}
	if c.resolver == nil {
		return nil, nil, fmt.Errorf("%w: Submit - no resolver for family=%s", ErrInternal, c.family.Name)
	}

	payload := fields.Clone()
	embedded := make(map[string]map[string]interface{}, len(c.family.References))
	for field, target := range c.family.References {
		id := domain.ReferenceID(fields[field], domain.DefaultIDField)
		if id == "" {
			// пустое значение уже отклонено правилами обязательных полей
			continue
		}
		rec, err := c.resolver.Resolve(ctx, target, id)
		if err != nil {
			return nil, nil, err
		}
		obj := rec.ToMap(domain.DefaultIDField)
		payload[field] = obj
		embedded[field] = obj
	}
	return payload, embedded, nil
}

// DeleteRecord удаляет запись на бэкенде, затем из коллекции
// Если открыт черновик редактирования этой записи, он закрывается
func (c *Controller) DeleteRecord(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.family.Allows(domain.OperationDelete) {
		return fmt.Errorf("%w: DeleteRecord - family=%s", ErrOperationNotAllowed, c.family.Name)
	}
	if _, ok := c.store.Get(id); !ok {
		return fmt.Errorf("%w: DeleteRecord - id=%s", ErrRecordNotFound, id)
	}

	if err := c.backend.Delete(ctx, c.family, id); err != nil {
		c.lastErr = c.mapBackendError("DeleteRecord", err)
		c.record(ctx, domain.OperationDelete, recordIDPtr(id), c.lastErr)
		return c.lastErr
	}

	c.store.Remove(id)
	if draft, ok := c.form.Draft(); ok && draft.Mode.Kind == formsession.ModeEdit && draft.Mode.TargetID == id {
		c.form.Close()
	}
	c.lastErr = nil
	c.record(ctx, domain.OperationDelete, recordIDPtr(id), nil)

	c.logger.Info("DeleteRecord: deleted family=%s id=%s", c.family.Name, id)
	return nil
}

// Get возвращает копию загруженной записи
func (c *Controller) Get(id string) (domain.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.Get(id)
}

// Records возвращает копию всей загруженной коллекции
func (c *Controller) Records() []domain.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.Records()
}

// Snapshot текущее состояние контроллера
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state()
}

func (c *Controller) state() State {
	st := State{
		Family:    c.family,
		Loaded:    c.loaded,
		Items:     c.store.CurrentItems(),
		Window:    c.store.Window(),
		LastError: c.lastErr,
	}
	if draft, ok := c.form.Draft(); ok {
		st.Draft = &draft
	}
	return st
}

func (c *Controller) mapBackendError(op string, err error) error {
	var serverErr *backend.ServerError
	switch {
	case errors.As(err, &serverErr):
		return &ServerError{StatusCode: serverErr.StatusCode, Message: serverErr.Message}
	case errors.Is(err, backend.ErrNetwork):
		return fmt.Errorf("%w: %s - family=%s: %v", ErrNetwork, op, c.family.Name, err)
	case errors.Is(err, backend.ErrInvalidResponse):
		return fmt.Errorf("%w: %s - family=%s: %v", ErrServer, op, c.family.Name, err)
	default:
		return fmt.Errorf("%w: %s - family=%s: %v", ErrInternal, op, c.family.Name, err)
	}
}

func (c *Controller) record(ctx context.Context, op domain.Operation, recordID *string, opErr error) {
	entry := &domain.AuditEntry{
		Username:  c.actor,
		Family:    c.family.Name,
		Operation: op,
		RecordID:  recordID,
		Outcome:   domain.AuditSuccess,
	}
	if opErr != nil {
		msg := opErr.Error()
		entry.Outcome = domain.AuditFailure
		entry.ErrorMessage = &msg
	}

	// журнал не влияет на результат операции
	if err := c.audit.Append(context.WithoutCancel(ctx), entry); err != nil {
		c.logger.Warn("audit: failed to record %s family=%s: %v", op, c.family.Name, err)
	}
}

func recordIDPtr(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
