// Package scheduler contém os serviços agendados do painel de vendas
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var ErrReportRunning = errors.New("dashboard report already running")

type DashboardReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardReport é o retrato dos KPIs registrado a cada execução
type DashboardReport struct {
	GeneratedAt  time.Time                   `json:"generated_at"`
	Revision     string                      `json:"revision"`
	Total        float64                     `json:"total_sales"`
	Average      float64                     `json:"average_sales"`
	Count        int                         `json:"count"`
	Performance  domain.PerformanceIndicator `json:"performance"`
	BestSelling  string                      `json:"best_selling,omitempty"`
	BestRegion   domain.Region               `json:"best_region,omitempty"`
	Regions      int                         `json:"regions"`
	Months       int                         `json:"months"`
	LowInventory int                         `json:"low_inventory"`
}

type DashboardReportService struct {
	scheduler *gocron.Scheduler
	service   dashboard.Dashboarder
	config    DashboardReportConfig

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastReport      *DashboardReport
	now             func() time.Time
}

func NewDashboardReportService(service dashboard.Dashboarder, cfg *config.Config) *DashboardReportService {
	reportConfig := DashboardReportConfig{
		CronSchedule: cfg.DashboardReport.CronSchedule,
		Enabled:      cfg.DashboardReport.Enabled,
	}

	log.L.WithField("report_cron", reportConfig.CronSchedule).Info("Configuração do relatório do painel carregada")

	return &DashboardReportService{
		scheduler: gocron.NewScheduler(time.Local),
		service:   service,
		config:    reportConfig,
		now:       time.Now,
	}
}

func (s *DashboardReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Cron do relatório do painel desabilitada por configuração")
		return nil
	}

	log.L.WithField("report_cron", s.config.CronSchedule).Info("Iniciando cron do relatório do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunReport(); err != nil {
			log.L.WithError(err).Warn("Relatório do painel não executado")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório do painel: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron do relatório do painel")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReport calcula e registra o relatório de KPIs. Execuções simultâneas
// são recusadas com ErrReportRunning.
func (s *DashboardReportService) RunReport() (*DashboardReport, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrReportRunning
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.mu.Unlock()

	report := s.buildReport()

	s.mu.Lock()
	s.running = false
	s.lastCompletedAt = s.now()
	s.lastReport = report
	s.mu.Unlock()

	log.L.WithFields(log.Fields{
		"report_total":         report.Total,
		"report_average":       report.Average,
		"report_count":         report.Count,
		"report_performance":   report.Performance,
		"report_best_selling":  report.BestSelling,
		"report_best_region":   report.BestRegion,
		"report_low_inventory": report.LowInventory,
	}).Info("Relatório do painel gerado")

	return report, nil
}

func (s *DashboardReportService) buildReport() *DashboardReport {
	snapshot := s.service.Snapshot()
	summary, charts := snapshot.Summary, snapshot.Charts

	lowInventory := domain.NewFilterSpec()
	lowInventory.Mode = domain.FilterModeLowInventory

	report := &DashboardReport{
		GeneratedAt:  s.now(),
		Revision:     summary.Revision,
		Total:        summary.Total,
		Average:      summary.Average,
		Count:        summary.Count,
		Performance:  summary.Performance,
		Regions:      len(charts.RegionTotals),
		Months:       len(charts.MonthlyTrend),
		LowInventory: len(filtering.Filter(snapshot.Records, lowInventory)),
	}
	if summary.BestSelling != nil {
		report.BestSelling = summary.BestSelling.Product
	}
	if summary.BestRegion != nil {
		report.BestRegion = summary.BestRegion.Region
	}

	return report
}

// TriggerManualSync executa o relatório fora do agendamento
func (s *DashboardReportService) TriggerManualSync() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.L.Info("Relatório do painel já em andamento, ignorando solicitação manual")
		return
	}
	s.mu.Unlock()

	log.L.Info("Iniciando relatório manual do painel")
	go func() {
		if _, err := s.RunReport(); err != nil {
			log.L.WithError(err).Warn("Relatório manual do painel não executado")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardReportService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastStartedAt,
		"last_run_completed_at": s.lastCompletedAt,
		"last_report":           s.lastReport,
	}
}
