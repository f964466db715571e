package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		origin        string
		method        string
		wantOrigin    string
		wantStatus    int
		handlerCalled bool
	}{
		{
			name:          "Origem liberada",
			allowed:       []string{"http://localhost:3000"},
			origin:        "http://localhost:3000",
			method:        http.MethodGet,
			wantOrigin:    "http://localhost:3000",
			wantStatus:    http.StatusOK,
			handlerCalled: true,
		},
		{
			name:          "Origem desconhecida não recebe cabeçalhos",
			allowed:       []string{"http://localhost:3000"},
			origin:        "http://malicioso.com",
			method:        http.MethodGet,
			wantStatus:    http.StatusOK,
			handlerCalled: true,
		},
		{
			name:       "Preflight responde sem chamar o handler",
			allowed:    []string{"*"},
			origin:     "http://qualquer.com",
			method:     http.MethodOptions,
			wantOrigin: "http://qualquer.com",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/table", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.handlerCalled, called)
		})
	}
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	log.SetupTestLogger(&buf)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/records/9", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "/v1/records/9")
}

func TestLoggingMiddleware_DashboardViewFields(t *testing.T) {
	var buf bytes.Buffer
	log.SetupTestLogger(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(TotalCountHeader, "3")
		w.Header().Set(RevisionHeader, "rev-1")
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/table?filter=highSales&category=Books&category=Clothing&sort=sales", nil)
	LoggingMiddleware()(next).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "filter_mode=highSales")
	assert.Contains(t, out, "filter_category=\"Books,Clothing\"")
	assert.Contains(t, out, "sort_key=sales")
	assert.Contains(t, out, "records=3")
	assert.Contains(t, out, "revision=rev-1")
	assert.Contains(t, out, "correlation_id=")

	buf.Reset()
	rec = httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary?filter=highSales", nil))
	assert.NotContains(t, buf.String(), "filter_mode", "só as visões de tabela registram filtros")
}

func TestLogPanicMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log.SetupTestLogger(&buf)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/charts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")

	rec = httptest.NewRecorder()
	LogPanicMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/charts", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
