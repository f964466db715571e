package main

import (
	"context"
	"os"

	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/seed"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.Flags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.NewConfig(flags)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records, err := seed.Resolve(cfg.Seed.File, cfg.Seed.Default)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar registros iniciais")
	}

	// Os registros iniciais entram antes do primeiro resumo, então o
	// indicador de desempenho começa em "no-change"
	store := recording.NewStore()
	if _, err := store.ReplaceAll(records); err != nil {
		log.L.WithError(err).Fatal("Registros iniciais inválidos")
	}
	log.L.WithFields(log.Fields{
		"records":   len(records),
		"seed_file": cfg.Seed.File,
	}).Info("Registros iniciais carregados")

	dashboardService := dashboard.NewService(store)

	reportService := scheduler.NewDashboardReportService(dashboardService, cfg)
	if err := reportService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do relatório do painel")
	} else {
		log.L.Info("Agendador do relatório do painel iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, reportService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
