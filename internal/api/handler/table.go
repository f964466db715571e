package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// queryError carrega o código de API de um parâmetro de consulta inválido
type queryError struct {
	code    string
	message string
	param   string
}

func (e *queryError) Error() string {
	return e.message
}

func GetTable(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, sort, ok := tableQuery(w, r)
		if !ok {
			return
		}

		view := service.Table(filter, sort)
		setViewHeaders(w, view)
		writeJSON(w, http.StatusOK, view)
	})
}

func GetAppliedTable(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, sort, ok := tableQuery(w, r)
		if !ok {
			return
		}

		view := service.AppliedTable(filter, sort)
		setViewHeaders(w, view)
		writeJSON(w, http.StatusOK, view)
	})
}

func tableQuery(w http.ResponseWriter, r *http.Request) (domain.FilterSpec, domain.SortSpec, bool) {
	query := r.URL.Query()

	filter, err := ParseFilterQuery(query)
	if err != nil {
		writeQueryError(w, err)
		return domain.FilterSpec{}, domain.SortSpec{}, false
	}

	sort, err := ParseSortQuery(query)
	if err != nil {
		writeQueryError(w, err)
		return domain.FilterSpec{}, domain.SortSpec{}, false
	}

	return filter, sort, true
}

// setViewHeaders expõe o total de linhas e a revisão para o log de requisições
func setViewHeaders(w http.ResponseWriter, view domain.TableView) {
	w.Header().Set(middleware.TotalCountHeader, strconv.Itoa(view.Total))
	if view.Revision != "" {
		w.Header().Set(middleware.RevisionHeader, view.Revision)
	}
}

func writeQueryError(w http.ResponseWriter, err error) {
	var qe *queryError
	if errors.As(err, &qe) {
		apiErrors.WriteError(w, qe.code, qe.message, map[string]string{"param": qe.param})
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
}

// ParseFilterQuery monta o filtro a partir da query string. category e
// region aceitam o parâmetro repetido ou uma lista separada por vírgulas.
func ParseFilterQuery(query url.Values) (domain.FilterSpec, error) {
	filter := domain.NewFilterSpec()
	filter.Search = query.Get("search")

	mode, err := domain.ParseFilterMode(query.Get("filter"))
	if err != nil {
		return filter, &queryError{code: apiErrors.ErrInvalidValue, message: err.Error(), param: "filter"}
	}
	filter.Mode = mode

	if raw := query.Get("threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, &queryError{code: apiErrors.ErrInvalidFormat, message: "Limite de vendas inválido", param: "threshold"}
		}
		filter.Threshold = threshold
	}

	dates := []struct {
		param string
		dst   *string
	}{
		{"start_date", &filter.StartDate},
		{"end_date", &filter.EndDate},
	}
	for _, d := range dates {
		param, dst := d.param, d.dst
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		date, err := utils.NormalizeDate(raw)
		if err != nil {
			return filter, &queryError{code: apiErrors.ErrInvalidFormat, message: "Data inválida, use YYYY-MM-DD", param: param}
		}
		*dst = date
	}

	for _, value := range listParam(query, "category") {
		category := domain.Category(value)
		if !category.IsValid() {
			return filter, &queryError{code: apiErrors.ErrInvalidValue, message: "Categoria desconhecida: " + value, param: "category"}
		}
		filter.Categories = append(filter.Categories, category)
	}

	for _, value := range listParam(query, "region") {
		region := domain.Region(value)
		if !region.IsValid() {
			return filter, &queryError{code: apiErrors.ErrInvalidValue, message: "Região desconhecida: " + value, param: "region"}
		}
		filter.Regions = append(filter.Regions, region)
	}

	return filter, nil
}

func ParseSortQuery(query url.Values) (domain.SortSpec, error) {
	key, err := domain.ParseSortKey(query.Get("sort"))
	if err != nil {
		return domain.SortSpec{}, &queryError{code: apiErrors.ErrInvalidValue, message: err.Error(), param: "sort"}
	}

	direction, err := domain.ParseSortDirection(query.Get("direction"))
	if err != nil {
		return domain.SortSpec{}, &queryError{code: apiErrors.ErrInvalidValue, message: err.Error(), param: "direction"}
	}

	return domain.SortSpec{Key: key, Direction: direction}, nil
}

func listParam(query url.Values, name string) []string {
	values := make([]string, 0)
	for _, raw := range query[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
