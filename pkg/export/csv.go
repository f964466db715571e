// Package export serializa registros de venda no CSV baixado pelo painel
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Nome padrão do arquivo exportado
const FileName = "sales_data.csv"

var Header = []string{"product", "date", "sales", "inventory", "category", "region"}

// WriteCSV escreve o cabeçalho e uma linha por registro, com a data no
// formato MM/DD/YYYY. Sem registros, escreve apenas o cabeçalho.
func WriteCSV(w io.Writer, records []domain.SalesRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}

	for _, record := range records {
		date, err := utils.FormatUSDate(record.Date)
		if err != nil {
			return errors.Wrapf(err, "data inválida no registro %d", record.ID)
		}

		row := []string{
			record.Product,
			date,
			strconv.FormatFloat(record.Sales, 'f', -1, 64),
			strconv.Itoa(record.Inventory),
			string(record.Category),
			string(record.Region),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "erro ao escrever registro %d", record.ID)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar CSV")
}

// ReadCSV lê o formato produzido por WriteCSV. As colunas são localizadas
// pelo cabeçalho; datas em MM/DD/YYYY ou YYYY-MM-DD são aceitas.
func ReadCSV(r io.Reader) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV")
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range Header {
		if _, ok := columns[name]; !ok {
			return nil, errors.Errorf("coluna obrigatória ausente no CSV: %s", name)
		}
	}

	records := make([]domain.SalesRecord, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, columns map[string]int) (domain.SalesRecord, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[columns[name]])
	}

	date, err := utils.ParseUSDate(field("date"))
	if err != nil {
		return domain.SalesRecord{}, err
	}

	sales, err := strconv.ParseFloat(field("sales"), 64)
	if err != nil {
		return domain.SalesRecord{}, errors.Wrap(err, "valor de vendas inválido")
	}

	inventory, err := strconv.Atoi(field("inventory"))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrap(err, "estoque inválido")
	}

	return domain.SalesRecord{
		Product:   field("product"),
		Date:      date,
		Sales:     sales,
		Inventory: inventory,
		Category:  domain.Category(field("category")),
		Region:    domain.Region(field("region")),
	}, nil
}
