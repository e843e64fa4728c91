// Package flow monta o fluxo de atendimento do petshop a partir de opções.
//
// Visão geral (camadas):
//
//   - domain: entidade, máquina de estados, erros e contratos (sem infraestrutura)
//   - application: casos de uso (admitir, chamar, liberar, entregar) sem infraestrutura
//   - infra: implementações concretas (fila, pilha, etapa, limiter, sinks de eventos)
//   - flow (este pacote): wiring das camadas + formatação para apresentação
//
// Fluxo:
//
//  1. AdmitNewEntity valida e enfileira na fila de chegada (FIFO)
//  2. CallNextForService move a cabeça da fila para a etapa (capacidade fixa)
//  3. ReleaseFromService finaliza o mais antigo da etapa e empilha (LIFO)
//  4. HandOff desempilha para entrega ao tutor
//
// Variáveis de ambiente do binário (cmd/petshop) controlam o comportamento,
// como STAGE_CAPACITY, INTAKE_RPS e EVENTS_REDIS_ENABLED.
package flow
