// Package infra contém implementações concretas (infraestrutura) para os contratos
// definidos no pacote domain.
//
// Exemplos:
//   - ArrivalQueue: fila FIFO em buffer circular
//   - ReleaseStack: pilha LIFO em slice
//   - ServiceStage: etapa de atendimento com capacidade fixa e saída FIFO
//   - OwnerIntake: limite de admissões por tutor usando golang.org/x/time/rate
//   - MemoryEventStore / RedisEventStore / LogSink: destinos dos eventos do fluxo
package infra
