package domain

// Status é o estado da entidade no fluxo.
//
// As transições só andam para frente, um passo por vez:
//
//	Waiting -> InService -> Completed -> Released
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusInService Status = "in_service"
	StatusCompleted Status = "completed"
	StatusReleased  Status = "released"
)

var nextStatus = map[Status]Status{
	StatusWaiting:   StatusInService,
	StatusInService: StatusCompleted,
	StatusCompleted: StatusReleased,
}

// Next retorna o próximo estado. ok=false para o estado terminal (ou inválido).
func (s Status) Next() (Status, bool) {
	n, ok := nextStatus[s]
	return n, ok
}

func (s Status) CanAdvanceTo(to Status) bool {
	n, ok := s.Next()
	return ok && n == to
}

func (s Status) Terminal() bool { return s == StatusReleased }
