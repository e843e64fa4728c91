package flow

import (
	"petshop-bay/bay/flow/application"
	"petshop-bay/bay/flow/domain"
	"petshop-bay/bay/flow/infra"
)

type Options struct {
	// Capacity é o máximo de entidades em atendimento. <= 0 usa infra.DefaultStageCapacity.
	Capacity int
	// Events recebe os eventos do fluxo. nil desliga.
	Events domain.EventSink

	// Intake, se definido, limita admissões por tutor.
	// Sem Intake, IntakePerSecond > 0 cria um infra.OwnerIntake.
	Intake          domain.IntakePolicy
	IntakePerSecond float64
	IntakeBurst     int
}

// New cria um controlador com containers vazios e contador de ids zerado.
// Cada chamada retorna uma instância independente.
func New(opts Options) *application.FlowController {
	c := &application.FlowController{
		Queue:  infra.NewArrivalQueue(),
		Stage:  infra.NewServiceStage(opts.Capacity),
		Stack:  infra.NewReleaseStack(),
		Events: opts.Events,
		Intake: opts.Intake,
	}
	if c.Intake == nil && opts.IntakePerSecond > 0 {
		c.Intake = infra.NewOwnerIntake(opts.IntakePerSecond, opts.IntakeBurst)
	}
	return c
}
