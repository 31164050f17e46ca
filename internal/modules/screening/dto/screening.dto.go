package dto

import (
	"time"
)

// ScreeningRecord représente une visite de dépistage persistée.
// Les noms JSON suivent les colonnes de la table screening_records.
type ScreeningRecord struct {
	ID              string `json:"id"`
	ScreeningNumber string `json:"screening_number"`
	Date            string `json:"date"`
	LastName        string `json:"last_name"`
	FirstName       string `json:"first_name"`

	// Age est toujours matérialisé en entier : 0 signifie "non renseigné"
	Age int `json:"age"`

	Phone   string `json:"phone"`
	Address string `json:"address"`

	Vaccination bool `json:"vaccination"`
	Screening   bool `json:"screening"`

	// Mammography est un statut libre ("oui"/"non"/...), pas un booléen
	Mammography     string  `json:"mammography"`
	MammographyDate *string `json:"mammography_date,omitempty"`

	GynecoConsultation bool    `json:"gyneco_consultation"`
	GynecoDate         *string `json:"gyneco_date,omitempty"`

	// FCULocation n'a de sens que si FCU est vrai ("SAR" ou "Ailleurs")
	FCU         bool    `json:"fcu"`
	FCULocation *string `json:"fcu_location,omitempty"`

	HasAdditionalExams *string `json:"has_additional_exams,omitempty"`

	HPV               bool `json:"hpv"`
	MammaryUltrasound bool `json:"mammary_ultrasound"`
	ThermoAblation    bool `json:"thermo_ablation"`
	Anapath           bool `json:"anapath"`

	CreatedAt time.Time `json:"created_at"`
}

// CreateScreeningRequest porte les champs bruts du formulaire.
// Les intentions booléennes arrivent en "oui"/"non" et l'âge en chaîne,
// éventuellement vide ; la normalisation appartient au service.
type CreateScreeningRequest struct {
	Date      string `json:"date"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Age       string `json:"age"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	Vaccination        string `json:"vaccination"`
	Screening          string `json:"screening"`
	GynecoConsultation string `json:"gynecoConsultation"`

	Mammography     string  `json:"mammography"`
	MammographyDate *string `json:"mammographyDate"`
	GynecoDate      *string `json:"gynecoDate"`

	FCU         bool    `json:"fcu"`
	FCULocation *string `json:"fcuLocation"`

	HasAdditionalExams *string `json:"hasAdditionalExams"`

	HPV               bool `json:"hpv"`
	MammaryUltrasound bool `json:"mammaryUltrasound"`
	ThermoAblation    bool `json:"thermoAblation"`
	Anapath           bool `json:"anapath"`
}

// UpdateScreeningRequest porte la forme persistée complète renvoyée par le
// client (remplacement intégral, pas de patch partiel). Les booléens sont
// déjà typés à ce stade ; seul l'âge peut encore arriver absent.
type UpdateScreeningRequest struct {
	Date      string `json:"date"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Age       *int   `json:"age"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	Vaccination bool `json:"vaccination"`
	Screening   bool `json:"screening"`

	Mammography     string  `json:"mammography"`
	MammographyDate *string `json:"mammography_date"`

	GynecoConsultation bool    `json:"gyneco_consultation"`
	GynecoDate         *string `json:"gyneco_date"`

	FCU         bool    `json:"fcu"`
	FCULocation *string `json:"fcu_location"`

	HasAdditionalExams *string `json:"has_additional_exams"`

	HPV               bool `json:"hpv"`
	MammaryUltrasound bool `json:"mammary_ultrasound"`
	ThermoAblation    bool `json:"thermo_ablation"`
	Anapath           bool `json:"anapath"`
}

// ScreeningListResponse enveloppe de GET /api/screening
type ScreeningListResponse struct {
	Screenings []ScreeningRecord `json:"screenings"`
}

// ScreeningDetailResponse enveloppe de GET /api/screening/:id
type ScreeningDetailResponse struct {
	Screening ScreeningRecord `json:"screening"`
}
