package apiclient

import "fmt"

// ErrorKind — класс ошибки запроса к API
type ErrorKind string

const (
	KindAPI       ErrorKind = "api"       // Не-2xx ответ сервера
	KindTransport ErrorKind = "transport" // Сетевая ошибка
	KindDecode    ErrorKind = "decode"    // Нечитаемое тело ответа
)

// Error — явный результат неудачного запроса вместо проглоченного nil.
// Вызывающий сам решает что показать пользователю.
type Error struct {
	Kind    ErrorKind
	Status  int    // HTTP статус, 0 для transport/decode
	Message string // Текст detail от сервера либо описание сбоя
}

func (e *Error) Error() string {
	if e.Kind == KindAPI {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// IsNotFound — сервер ответил 404
func (e *Error) IsNotFound() bool {
	return e.Kind == KindAPI && e.Status == 404
}
