package liststore

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

// Window текущее окно пагинации
type Window struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	Total      int  `json:"total"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// Store упорядоченная коллекция записей одного семейства и текущее окно пагинации
// Store не синхронизирован: владелец (CrudController) сериализует доступ
type Store struct {
	loader   Loader
	logger   Logger
	name     string
	pageSize int

	records []domain.Record
	index   map[string]int
	page    int
}

// New создает пустое хранилище с размером страницы pageSize
func New(name string, pageSize int, loader Loader, logger Logger) (*Store, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	return &Store{
		loader:   loader,
		logger:   logger,
		name:     name,
		pageSize: pageSize,
		index:    map[string]int{},
		page:     1,
	}, nil
}

// Load заменяет коллекцию полным снимком бэкенда
// При ошибке прежняя коллекция сохраняется
// Повторяющиеся идентификаторы в снимке отбрасываются (остается первая запись)
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	snapshot, err := s.loader.List(ctx)
	if err != nil {
		s.logger.Error("Load: failed to load collection=%s: %v", s.name, err)
		return nil, err
	}

	records := make([]domain.Record, 0, len(snapshot))
	index := make(map[string]int, len(snapshot))
	for _, rec := range snapshot {
		if rec.ID == "" {
			s.logger.Warn("Load: skipping record without id in collection=%s", s.name)
			continue
		}
		if _, dup := index[rec.ID]; dup {
			s.logger.Warn("Load: duplicate id=%s in collection=%s, keeping first", rec.ID, s.name)
			continue
		}
		index[rec.ID] = len(records)
		records = append(records, rec.Clone())
	}

	s.records = records
	s.index = index
	s.clampPage()

	s.logger.Info("Load: loaded %d records into collection=%s", len(records), s.name)
	return domain.CloneRecords(s.records), nil
}

// Page возвращает копии записей страницы n (нумерация с 1)
func (s *Store) Page(n int) ([]domain.Record, error) {
	total := s.TotalPages()
	if n < 1 || n > total {
		return nil, fmt.Errorf("%w: page %d, total pages %d", ErrOutOfRange, n, total)
	}

	start := (n - 1) * s.pageSize
	end := start + s.pageSize
	if end > len(s.records) {
		end = len(s.records)
	}

	return domain.CloneRecords(s.records[start:end]), nil
}

// CurrentItems возвращает записи текущей страницы (пусто для пустой коллекции)
func (s *Store) CurrentItems() []domain.Record {
	items, err := s.Page(s.page)
	if err != nil {
		return []domain.Record{}
	}
	return items
}

// Upsert заменяет запись с тем же идентификатором или добавляет её в конец
func (s *Store) Upsert(rec domain.Record) error {
	if rec.ID == "" {
		return ErrMissingID
	}

	if i, ok := s.index[rec.ID]; ok {
		s.records[i] = rec.Clone()
		return nil
	}

	s.index[rec.ID] = len(s.records)
	s.records = append(s.records, rec.Clone())
	return nil
}

// Remove удаляет запись; если текущая страница опустела и она не первая, окно сдвигается на страницу назад
func (s *Store) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.records); j++ {
		s.index[s.records[j].ID] = j
	}

	s.clampPage()
	return true
}

// Get возвращает копию записи по идентификатору
func (s *Store) Get(id string) (domain.Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Record{}, false
	}
	return s.records[i].Clone(), true
}

// Records возвращает копию всей коллекции
func (s *Store) Records() []domain.Record {
	return domain.CloneRecords(s.records)
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) PageSize() int {
	return s.pageSize
}

// TotalPages ceil(len/pageSize), 0 для пустой коллекции
func (s *Store) TotalPages() int {
	return (len(s.records) + s.pageSize - 1) / s.pageSize
}

func (s *Store) CurrentPage() int {
	return s.page
}

// SetPage переключает текущую страницу
func (s *Store) SetPage(n int) error {
	total := s.TotalPages()
	if n < 1 || n > total {
		return fmt.Errorf("%w: page %d, total pages %d", ErrOutOfRange, n, total)
	}
	s.page = n
	return nil
}

// Window возвращает текущее окно пагинации
func (s *Store) Window() Window {
	total := s.TotalPages()
	return Window{
		Page:       s.page,
		PageSize:   s.pageSize,
		TotalPages: total,
		Total:      len(s.records),
		HasPrev:    s.page > 1,
		HasNext:    s.page < total,
	}
}

// clampPage удерживает текущую страницу в [1, max(TotalPages, 1)]
func (s *Store) clampPage() {
	total := s.TotalPages()
	if s.page > total {
		s.page = total
	}
	if s.page < 1 {
		s.page = 1
	}
}
