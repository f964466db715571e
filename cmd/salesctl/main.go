// salesctl exporta a tabela do painel para CSV sem subir o servidor
package main

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/seed"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/sales-dashboard-api/pkg/export"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "salesctl:", err)
		os.Exit(1)
	}
}

type options struct {
	seedFile    string
	seedDefault bool
	search      string
	filter      string
	threshold   float64
	startDate   string
	endDate     string
	categories  []string
	regions     []string
	sort        string
	direction   string
	applied     bool
	summary     bool
	out         string
	logLevel    string
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("salesctl", pflag.ContinueOnError)
	fs.StringVar(&opts.seedFile, "seed-file", "", "arquivo JSON com os registros")
	fs.BoolVar(&opts.seedDefault, "seed-default", true, "usar os registros de demonstração quando não houver arquivo")
	fs.StringVar(&opts.search, "search", "", "texto buscado em produto, categoria e região")
	fs.StringVar(&opts.filter, "filter", "all", "filtro rápido: all, highSales, lowSales, lowInventory")
	fs.Float64Var(&opts.threshold, "threshold", 1000, "limite de vendas de highSales/lowSales")
	fs.StringVar(&opts.startDate, "start-date", "", "início do intervalo (YYYY-MM-DD)")
	fs.StringVar(&opts.endDate, "end-date", "", "fim do intervalo (YYYY-MM-DD)")
	fs.StringSliceVar(&opts.categories, "category", nil, "categorias selecionadas")
	fs.StringSliceVar(&opts.regions, "region", nil, "regiões selecionadas")
	fs.StringVar(&opts.sort, "sort", "", "coluna de ordenação")
	fs.StringVar(&opts.direction, "direction", "asc", "direção: asc ou desc")
	fs.BoolVar(&opts.applied, "applied", false, "exportar a visão de filtros aplicados")
	fs.BoolVar(&opts.summary, "summary", false, "imprimir o resumo de KPIs em vez do CSV")
	fs.StringVarP(&opts.out, "out", "o", export.FileName, "arquivo de saída, - para stdout")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "nível de log")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// query converte as flags para os mesmos parâmetros aceitos por /v1/table
func (o options) query() url.Values {
	query := url.Values{}
	query.Set("search", o.search)
	query.Set("filter", o.filter)
	query.Set("threshold", strconv.FormatFloat(o.threshold, 'f', -1, 64))
	query.Set("start_date", o.startDate)
	query.Set("end_date", o.endDate)
	query.Set("category", strings.Join(o.categories, ","))
	query.Set("region", strings.Join(o.regions, ","))
	query.Set("sort", o.sort)
	query.Set("direction", o.direction)
	return query
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if err := log.Setup(opts.logLevel, "text"); err != nil {
		return errors.Wrap(err, "nível de log inválido")
	}

	query := opts.query()
	filter, err := handler.ParseFilterQuery(query)
	if err != nil {
		return err
	}
	sort, err := handler.ParseSortQuery(query)
	if err != nil {
		return err
	}

	records, err := seed.Resolve(opts.seedFile, opts.seedDefault)
	if err != nil {
		return err
	}

	store := recording.NewStore()
	if _, err := store.ReplaceAll(records); err != nil {
		return errors.Wrap(err, "registros inválidos")
	}
	service := dashboard.NewService(store)

	if opts.summary {
		return printSummary(service, stdout)
	}

	var buf bytes.Buffer
	if opts.applied {
		err = export.WriteCSV(&buf, service.AppliedTable(filter, sort).Records)
	} else {
		err = service.ExportCSV(&buf, filter, sort)
	}
	if err != nil {
		return err
	}

	if opts.out == "-" {
		_, err := buf.WriteTo(stdout)
		return err
	}

	if err := atomic.WriteFile(opts.out, &buf); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", opts.out)
	}

	log.L.WithField("file", opts.out).Info("CSV exportado")
	return nil
}

func printSummary(service dashboard.Dashboarder, stdout io.Writer) error {
	summary := service.Summary()

	fmt.Fprintf(stdout, "Total de vendas:  %s\n", strconv.FormatFloat(summary.Total, 'f', 2, 64))
	fmt.Fprintf(stdout, "Média por item:   %s\n", strconv.FormatFloat(summary.Average, 'f', 2, 64))
	fmt.Fprintf(stdout, "Registros:        %d\n", summary.Count)
	if summary.BestSelling != nil {
		fmt.Fprintf(stdout, "Mais vendido:     %s\n", summary.BestSelling.Product)
	}
	if summary.BestRegion != nil {
		fmt.Fprintf(stdout, "Melhor região:    %s\n", summary.BestRegion.Region)
	}
	_, err := fmt.Fprintf(stdout, "Desempenho:       %s\n", summary.Performance)
	return err
}
