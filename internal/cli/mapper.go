package cli

import (
	"github.com/alexanderramin/docspace/internal/cli/formatter"
	"github.com/alexanderramin/docspace/internal/service"
)

func workloadRows(load []service.MemberWorkload) []formatter.WorkloadRow {
	rows := make([]formatter.WorkloadRow, 0, len(load))
	for _, l := range load {
		rows = append(rows, formatter.WorkloadRow{Member: l.Member, ActiveTasks: l.ActiveTasks})
	}
	return rows
}
