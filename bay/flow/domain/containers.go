package domain

// ArrivalQueue guarda as entidades aguardando atendimento (FIFO).
//
// A ordem de saída é exatamente a ordem de chegada; só a cabeça pode ser removida.
type ArrivalQueue interface {
	Enqueue(e *Entity)
	// Dequeue remove a cabeça. Falha com *EmptyContainerError se vazia.
	Dequeue() (*Entity, error)
	// Peek retorna a cabeça sem remover. Falha com *EmptyContainerError se vazia.
	Peek() (*Entity, error)
	Len() int
	Snapshot() []Snapshot
}

// ReleaseStack guarda as entidades liberadas aguardando entrega (LIFO, sem limite).
type ReleaseStack interface {
	Push(e *Entity)
	// Pop remove o topo. Falha com *EmptyContainerError se vazia.
	Pop() (*Entity, error)
	Len() int
	// Snapshot retorna do topo para a base.
	Snapshot() []Snapshot
}

// ServiceStage representa a etapa de atendimento com capacidade finita.
//
// A semântica é: Admit nunca bloqueia nem enfileira; se não há vaga, falha com
// *CapacityExceededError. Release remove sempre o ocupante mais antigo (FIFO).
type ServiceStage interface {
	Admit(e *Entity) error
	Release() (*Entity, error)
	Len() int
	Cap() int
	Full() bool
	Snapshot() []Snapshot
}
