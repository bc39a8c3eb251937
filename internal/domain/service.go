package domain

import "github.com/spf13/cast"

// AssignedProfessionalsField поле услуги со списком назначенных мастеров
const AssignedProfessionalsField = "assignedProfessionals"

// AssignedProfessionalIDs возвращает идентификаторы мастеров, назначенных на услугу
// Бэкенд отдает их либо строками, либо вложенными объектами мастеров
func AssignedProfessionalIDs(service Record) []string {
	raw, ok := service.Fields[AssignedProfessionalsField].([]interface{})
	if !ok {
		return cast.ToStringSlice(service.Fields[AssignedProfessionalsField])
	}

	ids := make([]string, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case map[string]interface{}:
			if id := cast.ToString(v[DefaultIDField]); id != "" {
				ids = append(ids, id)
			}
		default:
			if id := cast.ToString(v); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
