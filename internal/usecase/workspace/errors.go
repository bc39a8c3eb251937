package workspace

import "errors"

var (
	// ErrWorkspaceNotFound возвращается, когда рабочее пространство не найдено или истекло
	ErrWorkspaceNotFound = errors.New("workspace: not found")

	// ErrNotAuthenticated возвращается при открытии пространства для анонимной сессии
	ErrNotAuthenticated = errors.New("workspace: session is not authenticated")

	// ErrUnknownFamily возвращается для неизвестного семейства записей
	ErrUnknownFamily = errors.New("workspace: unknown family")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("workspace: internal error")
)
