// Package domain define a entidade, a máquina de estados e os contratos do fluxo
// de atendimento (fila de chegada, etapa de atendimento e pilha de liberação).
//
// Este pacote não depende de implementações concretas nem de infraestrutura.
// A intenção é permitir testes de unidade puros e desacoplar as regras de negócio
// (ordem, capacidade, transições) dos detalhes de armazenamento e observabilidade.
package domain
