package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Limite do corpo aceito em criação, substituição e importação
const maxBodyBytes = 10 << 20

func ListRecords(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListRecords())
	})
}

func GetRecord(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}

		record, err := service.GetRecord(id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar registro")
			return
		}

		writeJSON(w, http.StatusOK, record)
	})
}

func CreateRecord(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input domain.SalesRecordInput
		if !decodeBody(w, r, &input) {
			return
		}

		record, err := service.AddRecord(input)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar registro")
			return
		}

		log.ForContext(r.Context()).WithField("record_id", record.ID).Info("Registro criado")
		writeJSON(w, http.StatusCreated, record)
	})
}

func UpdateRecord(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}

		var input domain.SalesRecordInput
		if !decodeBody(w, r, &input) {
			return
		}

		record, err := service.UpdateRecord(id, input)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar registro")
			return
		}

		writeJSON(w, http.StatusOK, record)
	})
}

func DeleteRecord(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteRecord(id); err != nil {
			writeServiceError(w, err, "Erro ao remover registro")
			return
		}

		log.ForContext(r.Context()).WithField("record_id", id).Info("Registro removido")
		w.WriteHeader(http.StatusNoContent)
	})
}

func ReplaceRecords(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var records []domain.SalesRecord
		if !decodeBody(w, r, &records) {
			return
		}

		replaced, err := service.ReplaceRecords(records)
		if err != nil {
			writeServiceError(w, err, "Erro ao substituir registros")
			return
		}

		writeJSON(w, http.StatusOK, replaced)
	})
}

// ImportRecords substitui todos os registros pelo CSV enviado no corpo
func ImportRecords(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

		records, err := service.ImportCSV(body)
		if err != nil {
			writeServiceError(w, err, "Erro ao importar CSV")
			return
		}

		log.ForContext(r.Context()).WithField("records", len(records)).Info("CSV importado")
		writeJSON(w, http.StatusOK, records)
	})
}

func recordID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de registro inválido", raw)
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
		return false
	}
	return true
}
