package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/export"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func GetCharts(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Charts())
	})
}

func GetSummary(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Summary())
	})
}

func GetCatalog() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.NewCatalog())
	})
}

// ExportCSV baixa a tabela principal, com os mesmos filtros de /v1/table
func ExportCSV(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, sort, ok := tableQuery(w, r)
		if !ok {
			return
		}

		view := service.Table(filter, sort)
		setViewHeaders(w, view)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))

		if err := export.WriteCSV(w, view.Records); err != nil {
			// O cabeçalho já foi enviado, resta registrar a falha
			log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar CSV")
		}
	})
}
