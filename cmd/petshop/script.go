package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"petshop-bay/bay/flow"
	"petshop-bay/bay/flow/application"
	"petshop-bay/bay/flow/domain"
)

// step é uma chamada da superfície pública do controlador.
type step struct {
	op    string
	name  string
	owner string
	kind  domain.ServiceKind
	count int
}

// defaultScript reproduz a sequência de demonstração do petshop.
var defaultScript = []string{
	"admit", "Rex", "João", "1",
	"admit", "Luna", "Maria", "2",
	"admit", "Bobby", "Carlos", "1",
	"call", "call", "call",
	"release",
	"handoff", "3",
	"status",
}

// parseScript lê passos separados por espaço:
//
//	admit <name> <owner> <kind> | call | release | handoff <n> | status
func parseScript(args []string) ([]step, error) {
	var steps []step
	for i := 0; i < len(args); i++ {
		op := args[i]
		switch op {
		case "admit":
			if i+3 >= len(args) {
				return nil, fmt.Errorf("admit at position %d: expected <name> <owner> <kind>", i)
			}
			kind, err := strconv.Atoi(args[i+3])
			if err != nil {
				return nil, fmt.Errorf("admit at position %d: kind %q: %w", i, args[i+3], err)
			}
			steps = append(steps, step{op: op, name: args[i+1], owner: args[i+2], kind: domain.ServiceKind(kind)})
			i += 3
		case "handoff":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("handoff at position %d: expected <n>", i)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return nil, fmt.Errorf("handoff at position %d: count %q: %w", i, args[i+1], err)
			}
			steps = append(steps, step{op: op, count: n})
			i++
		case "call", "release", "status":
			steps = append(steps, step{op: op})
		default:
			return nil, fmt.Errorf("unknown step %q at position %d", op, i)
		}
	}
	return steps, nil
}

// run executa os passos em ordem. Um passo com erro é reportado em out e a
// execução segue com o próximo; o retorno é o número de passos que falharam.
func run(ctx context.Context, ctrl *application.FlowController, steps []step, out io.Writer) int {
	failed := 0
	for _, st := range steps {
		var err error
		switch st.op {
		case "admit":
			_, err = ctrl.AdmitNewEntity(ctx, st.name, st.owner, st.kind)
		case "call":
			_, err = ctrl.CallNextForService(ctx)
		case "release":
			_, err = ctrl.ReleaseFromService(ctx)
		case "handoff":
			var got []domain.Snapshot
			got, err = ctrl.HandOff(ctx, st.count)
			for _, s := range got {
				fmt.Fprintf(out, "delivered %s\n", flow.FormatSnapshot(s))
			}
		case "status":
			fmt.Fprintln(out, flow.FormatOverview(ctrl.Status(ctx)))
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", st.op, err)
		}
	}
	return failed
}
