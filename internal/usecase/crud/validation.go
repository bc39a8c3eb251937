package crud

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// отсутствующее поле и null до функции не доходят: validator сам считает их ошибкой
	if err := v.RegisterValidation(domain.RulePresent, isPresent); err != nil {
		panic(err)
	}
	return v
}

// isPresent пропускает любое значение, кроме пустой строки
func isPresent(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return strings.TrimSpace(field.String()) != ""
	}
	return true
}

// validateFields проверяет черновик по правилам семейства (формат validator.ValidateMap)
// Отсутствующее поле, null и пустая строка считаются незаполненными
func validateFields(rules map[string]interface{}, fields domain.Fields) error {
	if len(rules) == 0 {
		return nil
	}

	errs := validate.ValidateMap(map[string]interface{}(fields.Clone()), rules)
	if len(errs) == 0 {
		return nil
	}

	missing := flattenFieldErrors("", errs)
	sort.Strings(missing)
	return &ValidationError{Fields: missing}
}

// flattenFieldErrors разворачивает вложенные ошибки в пути вида "manualBookingDetails.date"
func flattenFieldErrors(prefix string, errs map[string]interface{}) []string {
	var out []string
	for field, e := range errs {
		if nested, ok := e.(map[string]interface{}); ok {
			out = append(out, flattenFieldErrors(prefix+field+".", nested)...)
			continue
		}
		out = append(out, prefix+field)
	}
	return out
}
