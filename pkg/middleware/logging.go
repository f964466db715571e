package middleware

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Cabeçalhos trocados entre os handlers do painel e o log de requisições
const (
	CorrelationIDHeader = "X-Correlation-ID"
	TotalCountHeader    = "X-Total-Count"
	RevisionHeader      = "X-Revision"
)

// Acima disso a requisição é registrada como lenta
const slowRequest = 500 * time.Millisecond

// Parâmetros de consulta das visões de tabela que vão para o log
var viewQueryFields = map[string]string{
	"search":     "filter_search",
	"filter":     "filter_mode",
	"threshold":  "filter_threshold",
	"start_date": "filter_start_date",
	"end_date":   "filter_end_date",
	"category":   "filter_category",
	"region":     "filter_region",
	"sort":       "sort_key",
	"direction":  "sort_direction",
}

// LoggingMiddleware registra uma linha por requisição. Nas visões de tabela
// e exportação inclui os filtros pedidos, o total de linhas e a revisão
// dos registros usada na resposta.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			}
			if isDashboardView(r.URL.Path) {
				addViewFields(fields, r, rw.Header())
			}

			logger := log.ForContext(ctx).WithFields(fields)
			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case rw.statusCode >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			case elapsed > slowRequest:
				logger.Warnf("Requisição lenta: %s", elapsed)
			default:
				logger.Info("Requisição finalizada")
			}
		})
	}
}

func isDashboardView(path string) bool {
	return strings.HasPrefix(path, "/v1/table") || path == "/v1/export"
}

func addViewFields(fields log.Fields, r *http.Request, header http.Header) {
	query := r.URL.Query()
	for param, field := range viewQueryFields {
		if values, ok := query[param]; ok {
			fields[field] = strings.Join(values, ",")
		}
	}

	if total := header.Get(TotalCountHeader); total != "" {
		fields["records"] = total
	}
	if revision := header.Get(RevisionHeader); revision != "" {
		fields["revision"] = revision
	}
}

// statusRecorder guarda o status enviado ao cliente
type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *statusRecorder) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// LogPanicMiddleware converte um panic do handler em erro 500 padronizado
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"error":       err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
