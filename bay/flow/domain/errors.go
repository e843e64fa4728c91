package domain

import (
	"errors"
	"strconv"
	"time"
)

// Sentinelas para errors.Is. Cada tipo de erro abaixo desembrulha para uma delas.
var (
	ErrValidation        = errors.New("validation failed")
	ErrEmptyContainer    = errors.New("container is empty")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrThrottled         = errors.New("intake throttled")
)

// ValidationError indica entrada inválida na admissão.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Field + " " + e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// EmptyContainerError indica remoção em fila, pilha ou etapa vazia.
type EmptyContainerError struct {
	Container string
}

func (e *EmptyContainerError) Error() string {
	return e.Container + " is empty"
}

func (e *EmptyContainerError) Unwrap() error { return ErrEmptyContainer }

// CapacityExceededError indica etapa de atendimento cheia.
// É uma rejeição dura: nada é enfileirado nem descartado.
type CapacityExceededError struct {
	Max int
}

func (e *CapacityExceededError) Error() string {
	return "service stage at capacity (max " + strconv.Itoa(e.Max) + ")"
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// InvalidTransitionError é a guarda da máquina de estados.
type InvalidTransitionError struct {
	ID   ID
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return "entity " + itoa(int(e.ID)) + ": invalid transition " + string(e.From) + " -> " + string(e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// ThrottledError indica que o tutor excedeu a taxa de admissões.
type ThrottledError struct {
	Owner      string
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	return "intake throttled for owner " + strconv.Quote(e.Owner)
}

func (e *ThrottledError) Unwrap() error { return ErrThrottled }

// HandOffError reporta uma entrega em lote interrompida.
// As entidades já entregues continuam sendo retornadas ao chamador.
type HandOffError struct {
	Requested int
	Delivered int
	Err       error
}

func (e *HandOffError) Error() string {
	return "hand-off stopped after " + strconv.Itoa(e.Delivered) + " of " +
		strconv.Itoa(e.Requested) + ": " + e.Err.Error()
}

func (e *HandOffError) Unwrap() error { return e.Err }

func itoa(v int) string { return strconv.Itoa(v) }
