package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// RulePresent правило обязательного поля: значение есть и не пустая строка
// 0 и false считаются заполненными
const RulePresent = "present"

// Значения по умолчанию
const (
	DefaultIDField  = "_id"
	DefaultPageSize = 7
	ContactPageSize = 20
	PaymentPageSize = 5
)

var (
	// ErrUnknownFamily возвращается для неизвестного семейства записей
	ErrUnknownFamily = errors.New("domain: unknown record family")

	// ErrInvalidPageSize возвращается при неположительном размере страницы
	ErrInvalidPageSize = errors.New("domain: invalid page size")
)

var (
	crud     = []Operation{OperationList, OperationCreate, OperationUpdate, OperationDelete}
	readOnly = []Operation{OperationList}
)

// DefaultFamilies семейства записей админ-панели в порядке меню
func DefaultFamilies() []Family {
	return []Family{
		{
			Name:         FamilyProfessional,
			Title:        "Professionals",
			Path:         "/professional",
			IDField:      DefaultIDField,
			ListKey:      "professionals",
			ItemKey:      "professional",
			UpdateMethod: http.MethodPatch,
			PageSize:     DefaultPageSize,
			Operations:   crud,
			Rules: map[string]interface{}{
				"name": RulePresent,
			},
			Defaults: Fields{
				"name":         "",
				"availability": true,
				"image":        "",
				"notAvailable": []interface{}{},
			},
		},
		{
			Name:         FamilyService,
			Title:        "Services",
			Path:         "/service",
			IDField:      DefaultIDField,
			ListKey:      "services",
			ItemKey:      "service",
			UpdateMethod: http.MethodPatch,
			PageSize:     DefaultPageSize,
			Operations:   crud,
			Rules: map[string]interface{}{
				"title": RulePresent,
				"time":  RulePresent,
				"price": RulePresent,
			},
			Defaults: Fields{
				"title": "",
				"time":  "",
				"price": "",
			},
		},
		{
			Name:         FamilyAppointment,
			Title:        "Appointments",
			Path:         "/appointment",
			IDField:      DefaultIDField,
			ListKey:      "appointments",
			ItemKey:      "appointment",
			UpdateMethod: http.MethodPatch,
			PageSize:     DefaultPageSize,
			Operations:   crud,
			Rules: map[string]interface{}{
				"date": RulePresent,
				"time": RulePresent,
			},
			Defaults: Fields{
				"date": "",
				"time": "",
			},
		},
		{
			Name:         FamilyInquiry,
			Title:        "Manual bookings",
			Path:         "/inquire",
			IDField:      DefaultIDField,
			ListKey:      "inquires",
			ItemKey:      "inquire",
			UpdateMethod: http.MethodPatch,
			PageSize:     DefaultPageSize,
			Operations:   crud,
			References: map[string]FamilyName{
				"professional": FamilyProfessional,
			},
			Rules: map[string]interface{}{
				"professional": RulePresent,
				"manualBookingDetails": map[string]interface{}{
					"date":      RulePresent,
					"startTime": RulePresent,
					"endTime":   RulePresent,
				},
			},
			Defaults: Fields{
				"manualBooking":  true,
				"checkedByAdmin": false,
				"manualBookingDetails": map[string]interface{}{
					"date":      "",
					"startTime": "",
					"endTime":   "",
				},
			},
		},
		{
			Name:       FamilyContact,
			Title:      "Contact us",
			Path:       "/contactus",
			IDField:    DefaultIDField,
			ListKey:    "contacts",
			ItemKey:    "contact",
			PageSize:   ContactPageSize,
			Operations: []Operation{OperationList, OperationDelete},
		},
		{
			Name:         FamilyShopTiming,
			Title:        "Shop timings",
			Path:         "/shop-timing",
			IDField:      DefaultIDField,
			ListKey:      "shopTimings",
			ItemKey:      "shopTiming",
			UpdateMethod: http.MethodPut,
			PageSize:     DefaultPageSize,
			Operations:   []Operation{OperationList, OperationCreate, OperationUpdate},
			Rules: map[string]interface{}{
				"day":  RulePresent,
				"time": RulePresent,
			},
			Defaults: Fields{
				"day":  "",
				"time": DefaultShopTime,
			},
		},
		{
			Name:       FamilyPayment,
			Title:      "Payments",
			Path:       "/pay",
			IDField:    DefaultIDField,
			ListKey:    "payments",
			ItemKey:    "payment",
			PageSize:   PaymentPageSize,
			Operations: readOnly,
		},
		{
			Name:       FamilyOrderSummary,
			Title:      "Order summaries",
			Path:       "/order-summary",
			IDField:    DefaultIDField,
			ListKey:    "orderSummaries",
			ItemKey:    "orderSummary",
			PageSize:   DefaultPageSize,
			Operations: readOnly,
		},
	}
}

// Catalog справочник семейств записей
type Catalog struct {
	families []Family
	byName   map[FamilyName]int
}

// NewCatalog создает справочник семейств с переопределёнными размерами страниц
func NewCatalog(pageSizes map[string]int) (*Catalog, error) {
	families := DefaultFamilies()
	c := &Catalog{
		families: families,
		byName:   make(map[FamilyName]int, len(families)),
	}
	for i, f := range families {
		c.byName[f.Name] = i
	}

	for name, size := range pageSizes {
		idx, ok := c.byName[FamilyName(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
		}
		if size <= 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrInvalidPageSize, name, size)
		}
		c.families[idx].PageSize = size
	}

	return c, nil
}

// Lookup ищет семейство по имени
func (c *Catalog) Lookup(name FamilyName) (Family, error) {
	idx, ok := c.byName[name]
	if !ok {
		return Family{}, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
	}
	return c.families[idx], nil
}

// All возвращает все семейства в порядке меню
func (c *Catalog) All() []Family {
	out := make([]Family, len(c.families))
	copy(out, c.families)
	return out
}
