// Package application contém os casos de uso do fluxo de atendimento:
// admitir, chamar para atendimento, liberar e entregar.
//
// Ele depende apenas do pacote domain e não conhece as implementações dos
// containers nem os destinos dos eventos.
// Ex.: FlowController.CallNextForService(ctx) move a cabeça da fila para a
// etapa de atendimento, ou falha sem mover nada.
package application
