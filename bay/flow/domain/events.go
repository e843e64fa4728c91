package domain

import (
	"context"
	"time"
)

type EventKind string

const (
	EventAdmitted        EventKind = "admitted"
	EventServiceStarted  EventKind = "service_started"
	EventServiceFinished EventKind = "service_finished"
	EventReleased        EventKind = "released"
	EventHandedOff       EventKind = "handed_off"
)

// Event representa uma transição observável do fluxo.
//
// Ele é propositalmente agnóstico de apresentação: quem consome (log, Redis,
// UI) decide como exibir. Message() fornece um texto legível padrão.
type Event struct {
	Kind   EventKind
	Entity Snapshot
	At     time.Time
}

func (ev Event) Message() string {
	name := ev.Entity.Name
	switch ev.Kind {
	case EventAdmitted:
		return name + " admitted and waiting for service"
	case EventServiceStarted:
		return name + " called for service"
	case EventServiceFinished:
		return name + " finished service"
	case EventReleased:
		return name + " released for delivery"
	case EventHandedOff:
		return name + " handed off to " + ev.Entity.Owner
	default:
		return name + ": " + string(ev.Kind)
	}
}

// EventSink é a estratégia de registro dos eventos do fluxo.
//
// Implementações podem escrever em log, Redis, memória, etc.
// O controlador trata erro como best-effort (não desfaz a operação).
type EventSink interface {
	Record(ctx context.Context, ev Event) error
}
