package services

import (
	"strings"

	"tracktime-report/internal/models"
	"tracktime-report/internal/utils"
)

const noTaskName = "Sem tarefa"

// csvHeader is the fixed, user-facing column set of the CSV export.
var csvHeader = []string{"Usuário", "Tarefa", "Descrição", "Data", "Início", "Fim", "Duração", "Billable"}

// ExportService renders raw time entries as a downloadable CSV.
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildCSV renders one row per raw entry, in the supplied order, as a
// semicolon-delimited CSV with a UTF-8 byte-order marker. Every field is
// double-quote-wrapped; encoding/csv is no use here because it neither
// force-quotes nor emits a BOM, and the layout is a compatibility contract.
func (s *ExportService) BuildCSV(entries []models.TimeEntry) []byte {
	var b strings.Builder
	b.WriteString("\ufeff")
	b.WriteString(strings.Join(csvHeader, ";"))

	for _, entry := range entries {
		start := utils.ParseTimestamp(entry.Start.String())
		end := utils.ParseTimestamp(entry.End.String())

		taskName := noTaskName
		if entry.Task != nil && entry.Task.Name != "" {
			taskName = entry.Task.Name
		}

		billable := "Não"
		if entry.Billable {
			billable = "Sim"
		}

		row := []string{
			entry.User.Username,
			taskName,
			entry.Description,
			utils.FormatDate(start),
			utils.FormatTime(start),
			utils.FormatTime(end),
			utils.FormatDuration(entry.Duration.String()),
			billable,
		}

		b.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return []byte(b.String())
}
