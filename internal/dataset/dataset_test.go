package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRow_First(t *testing.T) {
	row := dataset.Row{
		"Title": "10% off",
		"Offer": "",
		"Link":  "  ",
	}
	assert.Equal(t, "10% off", row.First(dataset.TitleFields))
	assert.Equal(t, "", row.First(dataset.LinkFields), "whitespace-only cells are absent")
	assert.Equal(t, "", row.First(dataset.ImageFields))
}

func TestRow_FirstHonorsAliasOrder(t *testing.T) {
	row := dataset.Row{
		"Offer": "primary",
		"Title": "secondary",
	}
	assert.Equal(t, "primary", row.First(dataset.TitleFields))
}

func TestListFieldsFor(t *testing.T) {
	assert.Equal(t, dataset.CreditFields, dataset.ListFieldsFor(catalog.Credit))
	assert.Equal(t, dataset.DebitFields, dataset.ListFieldsFor(catalog.Debit))
	assert.Equal(t, dataset.UPIFields, dataset.ListFieldsFor(catalog.UPI))
	assert.Equal(t, dataset.NetBankingFields, dataset.ListFieldsFor(catalog.NetBanking))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "offers.csv",
		"Offer,Eligible Credit Cards,Link\n"+
			"10% off,\"HDFC Regalia, SBI Cashback\",https://example.com/a\n"+
			",,\n"+
			"Flat 200,ICICI Amazon Pay,\n")

	ds, err := dataset.Load(context.Background(), filepath.Join(dir, "offers.csv"), "Test")
	require.NoError(t, err)
	assert.Equal(t, "Test", ds.Name)
	require.Len(t, ds.Rows, 2, "fully empty rows are dropped")
	assert.Equal(t, "10% off", ds.Rows[0].First(dataset.TitleFields))
	assert.Equal(t, "HDFC Regalia, SBI Cashback", ds.Rows[0].First(dataset.CreditFields))
	assert.Equal(t, "Flat 200", ds.Rows[1].First(dataset.TitleFields))
}

func TestLoad_RaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "ragged.csv",
		"Offer,Link\n"+
			"short row\n"+
			"full row,https://example.com\n")

	ds, err := dataset.Load(context.Background(), filepath.Join(dir, "ragged.csv"), "Ragged")
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "", ds.Rows[0].First(dataset.LinkFields))
	assert.Equal(t, "https://example.com", ds.Rows[1].First(dataset.LinkFields))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), "Gone")
	assert.Error(t, err)
}

func TestLoadAll_FailedSourceDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "blinkit.csv", "Offer\npresent\n")

	sources := []dataset.Source{
		{Name: "Blinkit", File: "blinkit.csv"},
		{Name: "Zepto", File: "zepto.csv"}, // not written
	}
	datasets := dataset.LoadAll(context.Background(), dir, sources)

	require.Len(t, datasets, 2)
	assert.Equal(t, "Blinkit", datasets[0].Name)
	assert.Len(t, datasets[0].Rows, 1)
	assert.NoError(t, datasets[0].Err)

	assert.Equal(t, "Zepto", datasets[1].Name)
	assert.Empty(t, datasets[1].Rows)
	assert.Error(t, datasets[1].Err)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, dataset.CatalogFile,
		"Eligible Credit Cards,Eligible Debit Cards\n"+
			"HDFC Regalia (Visa Signature),HDFC Millennia Debit\n")

	rows, err := dataset.LoadCatalog(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "HDFC Regalia (Visa Signature)", rows[0].First(dataset.CreditFields))
}

func TestDefaultSources_PermanentFirst(t *testing.T) {
	sources := dataset.DefaultSources()
	require.NotEmpty(t, sources)
	assert.True(t, sources[0].Permanent)
	assert.Equal(t, "Permanent", sources[0].Name)
}
