package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/workspace"
)

const (
	msgValidation          = "не заполнены обязательные поля"
	msgBackendUnavailable  = "сервер данных недоступен"
	msgBackendError        = "сервер данных вернул ошибку"
	msgOutOfRange          = "страница вне допустимого диапазона"
	msgRecordNotFound      = "запись не найдена"
	msgReferenceNotFound   = "связанная запись не найдена"
	msgUnknownFamily       = "неизвестный раздел"
	msgOperationNotAllowed = "операция недоступна для раздела"
	msgDraftNotOpen        = "форма не открыта"
	msgDraftAlreadyOpen    = "форма уже открыта"
	msgInvalidField        = "недопустимое поле формы"
)

// RespondCrudError отвечает ошибкой контроллера и возвращает отправленный статус
func RespondCrudError(w http.ResponseWriter, err error) int {
	var (
		validationErr *crud.ValidationError
		serverErr     *crud.ServerError
	)

	switch {
	case errors.As(err, &validationErr):
		RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: msgValidation,
			Fields:  validationErr.Fields,
		})
		return http.StatusUnprocessableEntity

	case errors.As(err, &serverErr):
		RespondJSON(w, http.StatusBadGateway, UpstreamErrorResponse{
			Code:            http.StatusBadGateway,
			Message:         msgBackendError,
			UpstreamStatus:  serverErr.StatusCode,
			UpstreamMessage: serverErr.Message,
		})
		return http.StatusBadGateway

	case errors.Is(err, crud.ErrServer):
		RespondError(w, http.StatusBadGateway, msgBackendError)
		return http.StatusBadGateway

	case errors.Is(err, crud.ErrNetwork):
		RespondError(w, http.StatusBadGateway, msgBackendUnavailable)
		return http.StatusBadGateway

	case errors.Is(err, crud.ErrOutOfRange):
		RespondBadRequest(w, msgOutOfRange)
		return http.StatusBadRequest

	case errors.Is(err, crud.ErrInvalidField):
		RespondBadRequest(w, msgInvalidField)
		return http.StatusBadRequest

	case errors.Is(err, crud.ErrReferenceNotFound):
		RespondNotFound(w, msgReferenceNotFound)
		return http.StatusNotFound

	case errors.Is(err, crud.ErrRecordNotFound):
		RespondNotFound(w, msgRecordNotFound)
		return http.StatusNotFound

	case errors.Is(err, workspace.ErrUnknownFamily):
		RespondNotFound(w, msgUnknownFamily)
		return http.StatusNotFound

	case errors.Is(err, crud.ErrOperationNotAllowed):
		RespondError(w, http.StatusMethodNotAllowed, msgOperationNotAllowed)
		return http.StatusMethodNotAllowed

	case errors.Is(err, crud.ErrDraftNotOpen):
		RespondConflict(w, msgDraftNotOpen)
		return http.StatusConflict

	case errors.Is(err, crud.ErrDraftAlreadyOpen):
		RespondConflict(w, msgDraftAlreadyOpen)
		return http.StatusConflict

	default:
		RespondInternalError(w)
		return http.StatusInternalServerError
	}
}
