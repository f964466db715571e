package dashboard

import (
	"errors"
	"io"
	"sync"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sorting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/export"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var ErrInvalidCSV = errors.New("invalid csv")

// Service compõe o Record Store com os motores de filtro, ordenação,
// agregação e resumo. Cada mutação recalcula o resumo sob o mesmo lock, então
// leitores nunca veem registros e KPIs de versões diferentes.
type Service struct {
	store   recording.RecordStore
	mu      sync.RWMutex
	summary domain.SummarySnapshot
}

// NewService cria o serviço e calcula o primeiro resumo sem total anterior
func NewService(store recording.RecordStore) Dashboarder {
	s := &Service{store: store}
	s.summary = summarizing.Summarize(store.List(), nil)
	s.summary.Revision = store.Revision()
	return s
}

func (s *Service) ListRecords() []domain.SalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.List()
}

func (s *Service) GetRecord(id int) (domain.SalesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.Get(id)
}

func (s *Service) AddRecord(input domain.SalesRecordInput) (domain.SalesRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.store.Add(input)
	if err != nil {
		return domain.SalesRecord{}, err
	}
	s.recompute()
	return record, nil
}

func (s *Service) UpdateRecord(id int, input domain.SalesRecordInput) (domain.SalesRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.store.Update(id, input)
	if err != nil {
		return domain.SalesRecord{}, err
	}
	s.recompute()
	return record, nil
}

func (s *Service) DeleteRecord(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.recompute()
	return nil
}

func (s *Service) ReplaceRecords(records []domain.SalesRecord) ([]domain.SalesRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced, err := s.store.ReplaceAll(records)
	if err != nil {
		return nil, err
	}
	s.recompute()
	return replaced, nil
}

func (s *Service) ImportCSV(r io.Reader) ([]domain.SalesRecord, error) {
	records, err := export.ReadCSV(r)
	if err != nil {
		return nil, recording.NewRecordError(ErrInvalidCSV, apiErrors.ErrInvalidFormat, err.Error())
	}
	return s.ReplaceRecords(records)
}

func (s *Service) Table(filter domain.FilterSpec, sort domain.SortSpec) domain.TableView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := sorting.Sort(filtering.Filter(s.store.List(), filter), sort)
	return s.tableView(records, filter, sort)
}

func (s *Service) AppliedTable(filter domain.FilterSpec, sort domain.SortSpec) domain.TableView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := sorting.Sort(filtering.FilterApplied(s.store.List(), filter), sort)
	return s.tableView(records, filter, sort)
}

func (s *Service) Charts() domain.ChartsView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := aggregating.Charts(s.store.List())
	view.Revision = s.store.Revision()
	return view
}

func (s *Service) Summary() domain.SummarySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.summary
}

func (s *Service) Snapshot() domain.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.store.List()
	charts := aggregating.Charts(records)
	charts.Revision = s.store.Revision()

	return domain.DashboardSnapshot{
		Records: records,
		Charts:  charts,
		Summary: s.summary,
	}
}

func (s *Service) ExportCSV(w io.Writer, filter domain.FilterSpec, sort domain.SortSpec) error {
	table := s.Table(filter, sort)
	return export.WriteCSV(w, table.Records)
}

func (s *Service) tableView(records []domain.SalesRecord, filter domain.FilterSpec, sort domain.SortSpec) domain.TableView {
	return domain.TableView{
		Records:  records,
		Total:    len(records),
		Filter:   filter,
		Sort:     sort,
		Revision: s.store.Revision(),
	}
}

// recompute precisa ser chamado com s.mu travado para escrita
func (s *Service) recompute() {
	prior := s.summary
	s.summary = summarizing.Summarize(s.store.List(), &prior)
	s.summary.Revision = s.store.Revision()

	log.L.WithFields(log.Fields{
		"report_total":       s.summary.Total,
		"report_count":       s.summary.Count,
		"report_performance": s.summary.Performance,
	}).Debug("dashboard: resumo recalculado")
}
