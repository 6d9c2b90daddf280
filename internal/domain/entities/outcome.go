package entities

// Outcome описывает результат операции над списком избранного.
// Это не ошибки: идемпотентный no-op отличим от реальной записи,
// и вызывающий код ветвится по значению, а не по тексту сообщения.
type Outcome string

// Возможные результаты операций Add и Remove.
const (
	OutcomeAdded          Outcome = "added"
	OutcomeAlreadyPresent Outcome = "already_present"
	OutcomeRemoved        Outcome = "removed"
	OutcomeNotPresent     Outcome = "not_present"
)

// Mutated сообщает, изменила ли операция состояние хранилища.
func (o Outcome) Mutated() bool {
	return o == OutcomeAdded || o == OutcomeRemoved
}
