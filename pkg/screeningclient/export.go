package screeningclient

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Feuille et en-têtes du classeur, dans l'ordre des colonnes du tableau
const exportSheetName = "Dépistages"

var exportHeaders = []string{
	"N°",
	"Date",
	"Nom",
	"Prénom",
	"Âge",
	"Téléphone",
	"Adresse",
	"Vaccination",
	"Dépistage",
	"Mammographie",
	"Date Mammographie",
	"Consultation Gynécologique",
	"Date Consultation Gynéco",
	"Examens Complémentaires",
	"FCU",
	"Lieu FCU",
	"HPV",
	"Échographie Mammaire",
	"Thermo Ablation",
	"Anapath",
	"Date de Création",
}

// ExportXLSX matérialise la collection complète chargée (pas seulement la
// page courante) en classeur xlsx lisible : booléens en "Oui"/"Non", dates
// au format français, âge 0 rendu "Non renseigné"
func ExportXLSX(screenings []Screening, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("création feuille: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, title := range exportHeaders {
		header[i] = title
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return fmt.Errorf("écriture en-têtes: %w", err)
	}

	for i, screening := range screenings {
		row := []interface{}{
			i + 1,
			formatExportDate(screening.Date),
			screening.LastName,
			screening.FirstName,
			formatExportAge(screening.Age),
			screening.Phone,
			screening.Address,
			formatOuiNon(screening.Vaccination),
			formatOuiNon(screening.Screening),
			screening.Mammography,
			formatExportDatePtr(screening.MammographyDate),
			formatOuiNon(screening.GynecoConsultation),
			formatExportDatePtr(screening.GynecoDate),
			stringOrEmpty(screening.HasAdditionalExams),
			formatOuiNon(screening.FCU),
			stringOrEmpty(screening.FCULocation),
			formatOuiNon(screening.HPV),
			formatOuiNon(screening.MammaryUltrasound),
			formatOuiNon(screening.ThermoAblation),
			formatOuiNon(screening.Anapath),
			screening.CreatedAt.Format("02/01/2006"),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return fmt.Errorf("écriture ligne %d: %w", i+1, err)
		}
	}

	// Largeur de colonnes : au moins 15, sinon la longueur de l'en-tête
	for i, title := range exportHeaders {
		width := float64(len([]rune(title)))
		if width < 15 {
			width = 15
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(exportSheetName, col, col, width); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("écriture classeur: %w", err)
	}

	return nil
}

// ExportFileName retourne le nom de fichier daté, ex: depistages_2026-08-30.xlsx
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("depistages_%s.xlsx", now.Format("2006-01-02"))
}

func formatOuiNon(value bool) string {
	if value {
		return "Oui"
	}
	return "Non"
}

// formatExportAge rend la sentinelle 0 lisible
func formatExportAge(age int) string {
	if age == 0 {
		return "Non renseigné"
	}
	return strconv.Itoa(age)
}

// formatExportDate convertit une date ISO (2006-01-02) au format français ;
// une valeur non parsable est rendue telle quelle
func formatExportDate(value string) string {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return parsed.Format("02/01/2006")
}

func formatExportDatePtr(value *string) string {
	if value == nil || *value == "" {
		return ""
	}
	return formatExportDate(*value)
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
