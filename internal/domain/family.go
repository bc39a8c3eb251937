package domain

import "net/http"

// FamilyName имя семейства записей, совпадает с путём коллекции на бэкенде
type FamilyName string

const (
	FamilyProfessional FamilyName = "professional"
	FamilyService      FamilyName = "service"
	FamilyAppointment  FamilyName = "appointment"
	FamilyInquiry      FamilyName = "inquire"
	FamilyContact      FamilyName = "contactus"
	FamilyShopTiming   FamilyName = "shop-timing"
	FamilyPayment      FamilyName = "pay"
	FamilyOrderSummary FamilyName = "order-summary"
)

// Operation операция над коллекцией
type Operation string

const (
	OperationList   Operation = "list"
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Family описание семейства записей: эндпоинт, форма ответа, политика валидации
type Family struct {
	Name  FamilyName
	Title string

	// Path путь коллекции относительно адреса бэкенда, например "/service"
	Path string
	// IDField имя поля идентификатора в JSON
	IDField string
	// ListKey ключ конверта списка ({"services": [...]}); ответ может быть и голым массивом
	ListKey string
	// ItemKey ключ конверта одной записи ({"service": {...}}); ответ может быть и голым объектом
	ItemKey string
	// UpdateMethod PATCH или PUT
	UpdateMethod string

	PageSize   int
	Operations []Operation

	// Rules правила обязательных полей в формате validator.ValidateMap
	Rules map[string]interface{}
	// References поля-ссылки на записи другого семейства: поле -> семейство
	// Перед отправкой ссылка заменяется найденной записью целиком
	References map[string]FamilyName
	// Defaults значения полей новой записи
	Defaults Fields
}

// Allows проверяет, поддерживает ли семейство операцию
func (f Family) Allows(op Operation) bool {
	for _, allowed := range f.Operations {
		if allowed == op {
			return true
		}
	}
	return false
}

// NewDefaults возвращает копию значений по умолчанию для новой записи
func (f Family) NewDefaults() Fields {
	return f.Defaults.Clone()
}

// UpdateHTTPMethod метод обновления, PATCH если не задан
func (f Family) UpdateHTTPMethod() string {
	if f.UpdateMethod == "" {
		return http.MethodPatch
	}
	return f.UpdateMethod
}
