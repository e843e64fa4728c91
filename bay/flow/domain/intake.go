package domain

import "time"

// IntakePolicy decide se um tutor pode deixar mais um animal na fila agora.
//
// Admit consome a vaga quando permite. Quando nega, nada é consumido e wait
// diz quanto falta até a próxima admissão desse tutor ser aceita.
type IntakePolicy interface {
	Admit(owner string, at time.Time) (wait time.Duration, ok bool)
}
