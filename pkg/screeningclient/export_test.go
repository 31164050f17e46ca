package screeningclient

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSXHeadersAndRows(t *testing.T) {
	location := "SAR"
	mammoDate := "2024-02-15"

	screenings := []Screening{
		{
			ID:                 "id-000",
			ScreeningNumber:    "DEP-2024-0001",
			Date:               "2024-01-05",
			LastName:           "Dupont",
			FirstName:          "Marie",
			Age:                34,
			Phone:              "0102030405",
			Address:            "Abidjan, Cocody",
			Vaccination:        true,
			Screening:          false,
			Mammography:        "oui",
			MammographyDate:    &mammoDate,
			GynecoConsultation: true,
			FCU:                true,
			FCULocation:        &location,
			HPV:                false,
			CreatedAt:          time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:              "id-001",
			ScreeningNumber: "DEP-2024-0002",
			Date:            "2024-01-06",
			LastName:        "Kouassi",
			FirstName:       "Awa",
			Age:             0,
			Mammography:     "non",
			CreatedAt:       time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(screenings, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Dépistages")
	require.NoError(t, err)
	require.Len(t, rows, 3, "1 ligne d'en-têtes + 2 lignes de données")

	assert.Equal(t, exportHeaders, rows[0][:len(exportHeaders)])

	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "05/01/2024", first[1], "date rendue au format français")
	assert.Equal(t, "Dupont", first[2])
	assert.Equal(t, "34", first[4])
	assert.Equal(t, "Oui", first[7], "vaccination booléenne rendue Oui/Non")
	assert.Equal(t, "Non", first[8])
	assert.Equal(t, "15/02/2024", first[10])
	assert.Equal(t, "Oui", first[11])
	assert.Equal(t, "SAR", first[15])
	assert.Equal(t, "05/01/2024", first[20])

	second := rows[2]
	assert.Equal(t, "2", second[0])
	assert.Equal(t, "Non renseigné", second[4], "âge sentinelle 0 rendu lisible")
}

func TestExportXLSXEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(nil, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Dépistages")
	require.NoError(t, err)
	require.Len(t, rows, 1, "en-têtes seuls")
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "depistages_2024-03-07.xlsx", ExportFileName(now))
}
