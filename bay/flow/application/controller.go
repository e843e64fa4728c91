package application

import (
	"context"
	"sync"
	"time"

	"petshop-bay/bay/flow/domain"
)

// FlowController orquestra a fila de chegada, a etapa de atendimento e a pilha
// de liberação.
//
// Cada operação pública roda inteira sob um único mutex: mover uma entidade
// entre containers (remover da origem, inserir no destino) é atômico e uma
// entidade nunca está em dois containers ao mesmo tempo.
// Queue, Stage e Stack são obrigatórios; Events e Intake são opcionais.
type FlowController struct {
	Queue  domain.ArrivalQueue
	Stage  domain.ServiceStage
	Stack  domain.ReleaseStack
	Events domain.EventSink
	Intake domain.IntakePolicy
	// Now fixa o relógio dos eventos e do Intake em testes. nil usa time.Now.
	Now func() time.Time

	mu     sync.Mutex
	lastID domain.ID
}

// Overview é a foto dos três containers.
type Overview struct {
	Waiting       []domain.Snapshot
	InService     []domain.Snapshot
	Released      []domain.Snapshot
	StageCapacity int
}

// AdmitNewEntity valida a entrada, atribui o próximo id e enfileira.
// O contador de ids só avança quando a admissão é concluída.
func (c *FlowController) AdmitNewEntity(ctx context.Context, name, owner string, kind domain.ServiceKind) (domain.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := domain.NewEntity(c.lastID+1, name, owner, kind)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if c.Intake != nil {
		if wait, ok := c.Intake.Admit(e.Owner(), c.now()); !ok {
			return domain.Snapshot{}, &domain.ThrottledError{Owner: e.Owner(), RetryAfter: wait}
		}
	}
	c.lastID = e.ID()
	c.Queue.Enqueue(e)

	snap := e.Snapshot()
	c.emit(ctx, domain.EventAdmitted, snap)
	return snap, nil
}

// CallNextForService move a cabeça da fila para a etapa de atendimento.
//
// A cabeça só sai da fila depois que a etapa aceitou a entidade: com a etapa
// cheia (ou qualquer outra falha) a fila fica exatamente como estava.
// Fila vazia tem precedência sobre etapa cheia.
func (c *FlowController) CallNextForService(ctx context.Context) (domain.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	head, err := c.Queue.Peek()
	if err != nil {
		return domain.Snapshot{}, err
	}
	if c.Stage.Full() {
		return domain.Snapshot{}, &domain.CapacityExceededError{Max: c.Stage.Cap()}
	}
	if err := c.Stage.Admit(head); err != nil {
		return domain.Snapshot{}, err
	}
	if _, err := c.Queue.Dequeue(); err != nil {
		// Peek acabou de ver a cabeça; só acontece com uma fila quebrada.
		return domain.Snapshot{}, err
	}

	snap := head.Snapshot()
	c.emit(ctx, domain.EventServiceStarted, snap)
	return snap, nil
}

// ReleaseFromService finaliza o ocupante mais antigo da etapa e o empilha
// para entrega.
func (c *FlowController) ReleaseFromService(ctx context.Context) (domain.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.Stage.Release()
	if err != nil {
		return domain.Snapshot{}, err
	}
	finished := e.Snapshot()

	if err := e.MarkReleased(); err != nil {
		// Release acabou de finalizar a entidade; Completed -> Released sempre vale.
		return domain.Snapshot{}, err
	}
	c.Stack.Push(e)

	released := e.Snapshot()
	c.emit(ctx, domain.EventServiceFinished, finished)
	c.emit(ctx, domain.EventReleased, released)
	return released, nil
}

// HandOff entrega até `count` entidades do topo da pilha.
//
// Política de lote: para no primeiro pop em pilha vazia e retorna as entidades
// já entregues junto com *domain.HandOffError (que desembrulha para
// *domain.EmptyContainerError). Entregas feitas não são desfeitas.
func (c *FlowController) HandOff(ctx context.Context, count int) ([]domain.Snapshot, error) {
	if count <= 0 {
		return nil, &domain.ValidationError{Field: "count", Reason: "must be positive"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Snapshot, 0, min(count, c.Stack.Len()))
	for len(out) < count {
		e, err := c.Stack.Pop()
		if err != nil {
			return out, &domain.HandOffError{Requested: count, Delivered: len(out), Err: err}
		}
		snap := e.Snapshot()
		out = append(out, snap)
		c.emit(ctx, domain.EventHandedOff, snap)
	}
	return out, nil
}

func (c *FlowController) Status(_ context.Context) Overview {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Overview{
		Waiting:       c.Queue.Snapshot(),
		InService:     c.Stage.Snapshot(),
		Released:      c.Stack.Snapshot(),
		StageCapacity: c.Stage.Cap(),
	}
}

// emit é best-effort: erro do sink não desfaz nem falha a operação.
func (c *FlowController) emit(ctx context.Context, kind domain.EventKind, snap domain.Snapshot) {
	if c.Events == nil {
		return
	}
	_ = c.Events.Record(ctx, domain.Event{Kind: kind, Entity: snap, At: c.now()})
}

func (c *FlowController) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
