package backend

import (
	"fmt"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// fallbackListKeys ключи конверта списка, которые пробуются после ключа семейства
var fallbackListKeys = []string{"items", "data"}

// decodeList нормализует ответ списка: {"<plural>": [...]}, {"items": [...]} или голый массив
func decodeList(family domain.Family, body []byte) ([]domain.Record, error) {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode list %s: %v", ErrInvalidResponse, family.Name, err)
	}

	items, ok := listItems(family, payload)
	if !ok {
		return nil, fmt.Errorf("%w: list %s: neither %q envelope nor array", ErrInvalidResponse, family.Name, family.ListKey)
	}

	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: list %s: item %d is not an object", ErrInvalidResponse, family.Name, i)
		}
		rec, ok := toRecord(family, obj)
		if !ok {
			return nil, fmt.Errorf("%w: list %s: item %d has no %s", ErrInvalidResponse, family.Name, i, family.IDField)
		}
		records = append(records, rec)
	}

	return records, nil
}

func listItems(family domain.Family, payload interface{}) ([]interface{}, bool) {
	switch v := payload.(type) {
	case []interface{}:
		return v, true
	case map[string]interface{}:
		keys := append([]string{family.ListKey}, fallbackListKeys...)
		for _, key := range keys {
			if key == "" {
				continue
			}
			if items, ok := v[key].([]interface{}); ok {
				return items, true
			}
		}
	}
	return nil, false
}

// decodeItem нормализует ответ с одной записью: {"<singular>": {...}} или голый объект
// found=false, если в ответе нет записи с идентификатором (например, пустое тело или {"message": "ok"})
func decodeItem(family domain.Family, body []byte) (domain.Record, bool, error) {
	if len(body) == 0 {
		return domain.Record{}, false, nil
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Record{}, false, fmt.Errorf("%w: decode item %s: %v", ErrInvalidResponse, family.Name, err)
	}

	obj, ok := payload.(map[string]interface{})
	if !ok {
		return domain.Record{}, false, nil
	}

	if family.ItemKey != "" {
		if inner, ok := obj[family.ItemKey].(map[string]interface{}); ok {
			rec, ok := toRecord(family, inner)
			return rec, ok, nil
		}
	}

	rec, ok := toRecord(family, obj)
	return rec, ok, nil
}

// toRecord отделяет идентификатор от полей; поддерживает поле "id", если поле семейства отсутствует
func toRecord(family domain.Family, obj map[string]interface{}) (domain.Record, bool) {
	fields := domain.Fields(obj).Clone()

	for _, key := range []string{family.IDField, "id"} {
		if key == "" {
			continue
		}
		raw, present := fields[key]
		if !present {
			continue
		}
		id, err := cast.ToStringE(raw)
		if err != nil || id == "" {
			continue
		}
		delete(fields, key)
		return domain.Record{ID: id, Fields: fields}, true
	}

	return domain.Record{Fields: fields}, false
}

// errorMessage извлекает текст ошибки из тела ответа
func errorMessage(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		if resp.Error != "" {
			return resp.Error
		}
		if resp.Message != "" {
			return resp.Message
		}
	}

	msg := string(body)
	return truncateUTF8(msg, maxErrorBodyLength)
}

// truncateUTF8 обрезает строку до limit байт, не разрывая символ
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
