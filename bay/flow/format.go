// utilitários pequenos de formatação para a camada de apresentação (CLI/log).

package flow

import (
	"strconv"
	"strings"

	"petshop-bay/bay/flow/application"
	"petshop-bay/bay/flow/domain"
)

// FormatSnapshot: "#1 Rex (João, bath) waiting".
func FormatSnapshot(s domain.Snapshot) string {
	return "#" + strconv.FormatInt(int64(s.ID), 10) + " " + s.Name +
		" (" + s.Owner + ", " + s.Kind.String() + ") " + string(s.Status)
}

func FormatOverview(o application.Overview) string {
	var b strings.Builder
	b.WriteString("waiting: " + joinNames(o.Waiting) + "\n")
	b.WriteString("in service (" + strconv.Itoa(len(o.InService)) + "/" + strconv.Itoa(o.StageCapacity) + "): " +
		joinNames(o.InService) + "\n")
	b.WriteString("released: " + joinNames(o.Released))
	return b.String()
}

func joinNames(snaps []domain.Snapshot) string {
	if len(snaps) == 0 {
		return "-"
	}
	names := make([]string, 0, len(snaps))
	for _, s := range snaps {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
