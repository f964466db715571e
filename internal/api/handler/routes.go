package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Catalog() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/catalog",
			Method:  http.MethodGet,
			Handler: GetCatalog(),
		},
	}
}

func Records(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: ListRecords(service),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodPost,
			Handler: CreateRecord(service),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodPut,
			Handler: ReplaceRecords(service),
		},
		{
			Path:    "/v1/records/import",
			Method:  http.MethodPost,
			Handler: ImportRecords(service),
		},
		{
			Path:    "/v1/records/:id",
			Method:  http.MethodGet,
			Handler: GetRecord(service),
		},
		{
			Path:    "/v1/records/:id",
			Method:  http.MethodPut,
			Handler: UpdateRecord(service),
		},
		{
			Path:    "/v1/records/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRecord(service),
		},
	}
}

// Views retorna as rotas de leitura do painel: tabelas, gráficos, KPIs e exportação
func Views(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/table",
			Method:  http.MethodGet,
			Handler: GetTable(service),
		},
		{
			Path:    "/v1/table/applied",
			Method:  http.MethodGet,
			Handler: GetAppliedTable(service),
		},
		{
			Path:    "/v1/charts",
			Method:  http.MethodGet,
			Handler: GetCharts(service),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/export",
			Method:  http.MethodGet,
			Handler: ExportCSV(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
