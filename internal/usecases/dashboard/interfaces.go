package dashboard

import (
	"io"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_dashboard.go -package=mocks

// Dashboarder é a fachada usada pela API e pelos agendadores
type Dashboarder interface {
	// ListRecords devolve todos os registros na ordem de inserção
	ListRecords() []domain.SalesRecord
	GetRecord(id int) (domain.SalesRecord, error)
	AddRecord(input domain.SalesRecordInput) (domain.SalesRecord, error)
	UpdateRecord(id int, input domain.SalesRecordInput) (domain.SalesRecord, error)
	DeleteRecord(id int) error
	// ReplaceRecords substitui todos os registros de uma vez
	ReplaceRecords(records []domain.SalesRecord) ([]domain.SalesRecord, error)
	// ImportCSV substitui todos os registros pelo conteúdo de um CSV exportado
	ImportCSV(r io.Reader) ([]domain.SalesRecord, error)

	// Table devolve a tabela principal filtrada e ordenada
	Table(filter domain.FilterSpec, sort domain.SortSpec) domain.TableView
	// AppliedTable devolve a visão de filtros aplicados
	AppliedTable(filter domain.FilterSpec, sort domain.SortSpec) domain.TableView
	Charts() domain.ChartsView
	Summary() domain.SummarySnapshot
	// Snapshot lê registros, gráficos e resumo de uma única revisão
	Snapshot() domain.DashboardSnapshot
	// ExportCSV escreve a tabela principal em CSV
	ExportCSV(w io.Writer, filter domain.FilterSpec, sort domain.SortSpec) error
}
