package domain

import (
	"reflect"

	"github.com/spf13/cast"
)

// Fields поля записи: имя поля -> JSON значение
// Идентификатор записи хранится отдельно и в Fields не входит
type Fields map[string]interface{}

// Clone возвращает глубокую копию полей
// Вложенные объекты и массивы копируются, поэтому копия никогда не разделяет память с оригиналом
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

// String возвращает значение поля, приведённое к строке ("" если поля нет)
func (f Fields) String(name string) string {
	return cast.ToString(f[name])
}

// Has проверяет наличие поля
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Record запись коллекции
type Record struct {
	ID     string
	Fields Fields
}

// Clone возвращает глубокую копию записи
func (r Record) Clone() Record {
	return Record{ID: r.ID, Fields: r.Fields.Clone()}
}

// Equal сравнивает записи по идентификатору и значениям полей
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID && reflect.DeepEqual(r.Fields.Clone(), other.Fields.Clone())
}

// ToMap собирает плоское JSON-представление записи с идентификатором в поле idField
func (r Record) ToMap(idField string) map[string]interface{} {
	out := map[string]interface{}(r.Fields.Clone())
	if r.ID != "" {
		out[idField] = r.ID
	}
	return out
}

// ReferenceID идентификатор записи, на которую ссылается значение поля:
// строка id или вложенный объект с полем idField ("id" как запасной вариант)
func ReferenceID(value interface{}, idField string) string {
	if obj, ok := value.(map[string]interface{}); ok {
		if id := cast.ToString(obj[idField]); id != "" {
			return id
		}
		return cast.ToString(obj["id"])
	}
	if obj, ok := value.(Fields); ok {
		return ReferenceID(map[string]interface{}(obj), idField)
	}
	return cast.ToString(value)
}

// CloneRecords копирует срез записей
func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out
}

// NormalizeValue приводит значение к виду, в котором его отдает JSON декодер
// (Fields превращаются в map[string]interface{}, вложенные значения копируются)
func NormalizeValue(v interface{}) interface{} {
	return cloneValue(v)
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Fields:
		return map[string]interface{}(val.Clone())
	case map[string]interface{}:
		return map[string]interface{}(Fields(val).Clone())
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}
