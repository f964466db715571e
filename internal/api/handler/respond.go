package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var recordErr *recording.RecordError
	if errors.As(err, &recordErr) {
		var details any
		if recordErr.RecordID != 0 {
			details = map[string]any{"id": recordErr.RecordID}
		}
		apiErrors.WriteError(w, recordErr.Code, recordErr.Error(), details)
		return
	}

	log.L.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
