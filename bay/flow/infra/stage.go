package infra

import "petshop-bay/bay/flow/domain"

// DefaultStageCapacity é a capacidade padrão da etapa de atendimento.
const DefaultStageCapacity = 3

// ServiceStage é a etapa de atendimento: um conjunto com capacidade `max`
// que devolve os ocupantes na ordem de admissão.
//
// Diferente de um semáforo, Admit não espera vaga: sem vaga, falha na hora.
type ServiceStage struct {
	max       int
	occupants ring[*domain.Entity]
}

var _ domain.ServiceStage = (*ServiceStage)(nil)

// NewServiceStage cria a etapa com capacidade `max` (<= 0 usa DefaultStageCapacity).
func NewServiceStage(max int) *ServiceStage {
	if max <= 0 {
		max = DefaultStageCapacity
	}
	return &ServiceStage{max: max}
}

func (s *ServiceStage) Admit(e *domain.Entity) error {
	if s.occupants.Len() >= s.max {
		return &domain.CapacityExceededError{Max: s.max}
	}
	// a transição é validada antes de ocupar a vaga: falhou, nada muda.
	if err := e.StartService(); err != nil {
		return err
	}
	s.occupants.PushBack(e)
	return nil
}

func (s *ServiceStage) Release() (*domain.Entity, error) {
	e, ok := s.occupants.Front()
	if !ok {
		return nil, &domain.EmptyContainerError{Container: "service stage"}
	}
	if err := e.FinishService(); err != nil {
		return nil, err
	}
	s.occupants.PopFront()
	return e, nil
}

func (s *ServiceStage) Len() int   { return s.occupants.Len() }
func (s *ServiceStage) Cap() int   { return s.max }
func (s *ServiceStage) Full() bool { return s.occupants.Len() >= s.max }

func (s *ServiceStage) Snapshot() []domain.Snapshot {
	out := make([]domain.Snapshot, 0, s.occupants.Len())
	s.occupants.Each(func(e *domain.Entity) { out = append(out, e.Snapshot()) })
	return out
}
