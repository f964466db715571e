package dashboard

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/seed"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func newSeededService(t *testing.T) Dashboarder {
	t.Helper()

	store := recording.NewStore()
	_, err := store.ReplaceAll(seed.Default())
	require.NoError(t, err)

	return NewService(store)
}

func input(product string, sales float64, region domain.Region) domain.SalesRecordInput {
	return domain.SalesRecordInput{
		Product:   product,
		Date:      "2024-02-01",
		Sales:     sales,
		Inventory: 5,
		Category:  domain.CategoryBooks,
		Region:    region,
	}
}

func TestService_InitialSummary(t *testing.T) {
	service := newSeededService(t)

	summary := service.Summary()
	assert.Equal(t, 9300.0, summary.Total)
	assert.Equal(t, 1162.5, summary.Average)
	assert.Equal(t, "Ergonomic Chair", summary.BestSelling.Product)
	assert.Equal(t, domain.RegionNorth, summary.BestRegion.Region)
	assert.Equal(t, domain.PerformanceNoChange, summary.Performance)
	assert.NotEmpty(t, summary.Revision)
}

func TestService_EmptyStore(t *testing.T) {
	service := NewService(recording.NewStore())

	summary := service.Summary()
	assert.Zero(t, summary.Average)
	assert.Nil(t, summary.BestSelling)
	assert.Equal(t, domain.PerformanceNoChange, summary.Performance)

	charts := service.Charts()
	assert.Empty(t, charts.RegionTotals)
	assert.Empty(t, charts.MonthlyTrend)
}

func TestService_PerformanceFollowsMutations(t *testing.T) {
	service := newSeededService(t)

	created, err := service.AddRecord(input("Novel", 100, domain.RegionEast))
	require.NoError(t, err)
	assert.Equal(t, domain.PerformanceIncrease, service.Summary().Performance)
	assert.Equal(t, 9400.0, service.Summary().Total)
	assert.Equal(t, 9300.0, *service.Summary().PreviousTotal)

	_, err = service.UpdateRecord(created.ID, input("Novel", 100, domain.RegionWest))
	require.NoError(t, err)
	assert.Equal(t, domain.PerformanceNoChange, service.Summary().Performance)

	require.NoError(t, service.DeleteRecord(created.ID))
	assert.Equal(t, domain.PerformanceDecrease, service.Summary().Performance)
}

func TestService_FailedMutationKeepsSummary(t *testing.T) {
	service := newSeededService(t)
	before := service.Summary()

	_, err := service.AddRecord(domain.SalesRecordInput{Product: "Sem data"})
	require.Error(t, err)

	err = service.DeleteRecord(999)
	assert.ErrorIs(t, err, recording.ErrRecordNotFound)

	assert.Equal(t, before, service.Summary())
}

func TestService_Table(t *testing.T) {
	service := newSeededService(t)

	filter := domain.NewFilterSpec()
	filter.Mode = domain.FilterModeHighSales
	sort := domain.SortSpec{Key: domain.SortKeySales, Direction: domain.SortDescending}

	view := service.Table(filter, sort)
	require.Equal(t, 4, view.Total)

	products := make([]string, 0, view.Total)
	for _, r := range view.Records {
		products = append(products, r.Product)
	}
	assert.Equal(t, []string{"Ergonomic Chair", "Standing Desk", "Laptop XZ-2000", "Office Desk"}, products)
	assert.Equal(t, filter, view.Filter)
	assert.Equal(t, sort, view.Sort)
}

func TestService_AppliedTable(t *testing.T) {
	service := newSeededService(t)

	empty := service.AppliedTable(domain.NewFilterSpec(), domain.SortSpec{})
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Records)

	filter := domain.NewFilterSpec()
	filter.Regions = []domain.Region{domain.RegionNorth}
	view := service.AppliedTable(filter, domain.SortSpec{Key: domain.SortKeyProduct, Direction: domain.SortAscending})
	require.Equal(t, 2, view.Total)
	assert.Equal(t, "Laptop XZ-2000", view.Records[0].Product)
	assert.Equal(t, "Office Desk", view.Records[1].Product)
}

func TestService_Charts(t *testing.T) {
	service := newSeededService(t)

	charts := service.Charts()
	require.Len(t, charts.RegionTotals, 4)
	assert.Equal(t, domain.RegionTotal{Region: domain.RegionNorth, Sales: 2700}, charts.RegionTotals[0])
	assert.Equal(t, []domain.TrendPoint{{Period: "2024-01", Sales: 9300}}, charts.MonthlyTrend)
	assert.Len(t, charts.DailyTrend, 8)
	assert.Len(t, charts.CategoryRegion, len(domain.AllCategories))
	assert.Equal(t, service.Summary().Revision, charts.Revision)
}

func TestService_ExportAndImportCSV(t *testing.T) {
	service := newSeededService(t)

	filter := domain.NewFilterSpec()
	filter.Search = "desk"

	var buf bytes.Buffer
	require.NoError(t, service.ExportCSV(&buf, filter, domain.SortSpec{Key: domain.SortKeySales, Direction: domain.SortDescending}))

	want := "product,date,sales,inventory,category,region\n" +
		"Standing Desk,01/08/2024,1800,15,Furniture,South\n" +
		"Office Desk,01/05/2024,1200,24,Furniture,North\n"
	assert.Equal(t, want, buf.String())

	imported, err := service.ImportCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, 9, imported[0].ID, "IDs continuam após os do seed")
	assert.Equal(t, 3000.0, service.Summary().Total)
	assert.Equal(t, domain.PerformanceDecrease, service.Summary().Performance)
}

func TestService_ImportInvalidCSV(t *testing.T) {
	service := newSeededService(t)

	_, err := service.ImportCSV(strings.NewReader("foo,bar\n1,2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCSV)

	var recErr *recording.RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, recErr.Code)
	assert.Len(t, service.ListRecords(), 8)
}

func TestService_ConcurrentReadsSeeConsistentSnapshots(t *testing.T) {
	service := newSeededService(t)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = service.AddRecord(input("Item", 10, domain.RegionNorth))
		}()
		go func() {
			defer wg.Done()
			charts := service.Charts()
			var total float64
			for _, rt := range charts.RegionTotals {
				total += rt.Sales
			}
			assert.GreaterOrEqual(t, total, 9300.0)
		}()
	}
	wg.Wait()

	assert.Len(t, service.ListRecords(), 18)
	assert.Equal(t, 9400.0, service.Summary().Total)
}

func TestService_SnapshotSharesOneRevision(t *testing.T) {
	service := newSeededService(t)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = service.AddRecord(input("Item", 10, domain.RegionNorth))
		}()
		go func() {
			defer wg.Done()
			snapshot := service.Snapshot()
			assert.Equal(t, snapshot.Summary.Revision, snapshot.Charts.Revision)
			assert.Equal(t, len(snapshot.Records), snapshot.Summary.Count)

			var total float64
			for _, rt := range snapshot.Charts.RegionTotals {
				total += rt.Sales
			}
			assert.Equal(t, snapshot.Summary.Total, total)
		}()
	}
	wg.Wait()
}
