package domain

import "strings"

type ID int64

// ServiceKind é o serviço solicitado na admissão (conjunto fechado).
type ServiceKind int

const (
	ServiceBath     ServiceKind = 1
	ServiceGrooming ServiceKind = 2
)

func (k ServiceKind) Valid() bool {
	return k == ServiceBath || k == ServiceGrooming
}

func (k ServiceKind) String() string {
	switch k {
	case ServiceBath:
		return "bath"
	case ServiceGrooming:
		return "grooming"
	default:
		return "unknown"
	}
}

// Lifecycle descreve as duas operações de ciclo de vida que a etapa de
// atendimento aplica sobre uma entidade.
type Lifecycle interface {
	StartService() error
	FinishService() error
}

// Entity é o registro que percorre fila -> atendimento -> pilha.
//
// Os campos são privados: quem está fora dos containers recebe um Snapshot
// (cópia), nunca o ponteiro de uma entidade viva.
type Entity struct {
	id     ID
	name   string
	owner  string
	kind   ServiceKind
	status Status
}

var _ Lifecycle = (*Entity)(nil)

// NewEntity valida a entrada e cria a entidade em Waiting.
func NewEntity(id ID, name, owner string, kind ServiceKind) (*Entity, error) {
	name = strings.TrimSpace(name)
	owner = strings.TrimSpace(owner)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if owner == "" {
		return nil, &ValidationError{Field: "owner", Reason: "must not be empty"}
	}
	if !kind.Valid() {
		return nil, &ValidationError{Field: "kind", Reason: "unknown service kind " + itoa(int(kind))}
	}
	return &Entity{id: id, name: name, owner: owner, kind: kind, status: StatusWaiting}, nil
}

func (e *Entity) ID() ID            { return e.id }
func (e *Entity) Name() string      { return e.name }
func (e *Entity) Owner() string     { return e.owner }
func (e *Entity) Kind() ServiceKind { return e.kind }
func (e *Entity) Status() Status    { return e.status }

// StartService move Waiting -> InService.
func (e *Entity) StartService() error { return e.advance(StatusInService) }

// FinishService move InService -> Completed.
func (e *Entity) FinishService() error { return e.advance(StatusCompleted) }

// MarkReleased move Completed -> Released (terminal).
func (e *Entity) MarkReleased() error { return e.advance(StatusReleased) }

func (e *Entity) advance(to Status) error {
	if !e.status.CanAdvanceTo(to) {
		return &InvalidTransitionError{ID: e.id, From: e.status, To: to}
	}
	e.status = to
	return nil
}

// Snapshot é uma cópia imutável da entidade em um instante.
type Snapshot struct {
	ID     ID
	Name   string
	Owner  string
	Kind   ServiceKind
	Status Status
}

func (e *Entity) Snapshot() Snapshot {
	return Snapshot{ID: e.id, Name: e.name, Owner: e.owner, Kind: e.kind, Status: e.status}
}
