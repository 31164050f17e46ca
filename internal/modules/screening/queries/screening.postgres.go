package queries

// ScreeningQueries contient toutes les requêtes SQL du module dépistage
var ScreeningQueries = struct {
	ListAll           string
	GetByID           string
	Insert            string
	InsertWithoutAge  string
	Update            string
	DeleteByID        string
	LastNumberForYear string
}{
	// ListAll - Liste complète triée du plus récent au plus ancien
	ListAll: `
		SELECT
			id::text, screening_number, date::text, last_name, first_name, age,
			phone, address, vaccination, screening, mammography, mammography_date::text,
			gyneco_consultation, gyneco_date::text, fcu, fcu_location,
			has_additional_exams, hpv, mammary_ultrasound, thermo_ablation,
			anapath, created_at
		FROM screening_records
		ORDER BY created_at DESC;
	`,

	// GetByID - Lecture d'un enregistrement par identifiant
	GetByID: `
		SELECT
			id::text, screening_number, date::text, last_name, first_name, age,
			phone, address, vaccination, screening, mammography, mammography_date::text,
			gyneco_consultation, gyneco_date::text, fcu, fcu_location,
			has_additional_exams, hpv, mammary_ultrasound, thermo_ablation,
			anapath, created_at
		FROM screening_records
		WHERE id = $1::uuid;
	`,

	// Insert - Création complète, id/numéro fournis par l'adaptateur
	Insert: `
		INSERT INTO screening_records (
			id, screening_number, date, last_name, first_name, age,
			phone, address, vaccination, screening, mammography, mammography_date,
			gyneco_consultation, gyneco_date, fcu, fcu_location,
			has_additional_exams, hpv, mammary_ultrasound, thermo_ablation,
			anapath, created_at
		) VALUES (
			$1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, NOW()
		) RETURNING created_at;
	`,

	// InsertWithoutAge - Variante défensive sans la colonne age : certains
	// schémas refusent un NULL explicite mais acceptent l'omission (DEFAULT)
	InsertWithoutAge: `
		INSERT INTO screening_records (
			id, screening_number, date, last_name, first_name,
			phone, address, vaccination, screening, mammography, mammography_date,
			gyneco_consultation, gyneco_date, fcu, fcu_location,
			has_additional_exams, hpv, mammary_ultrasound, thermo_ablation,
			anapath, created_at
		) VALUES (
			$1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, NOW()
		) RETURNING created_at;
	`,

	// Update - Remplacement intégral des champs persistés
	Update: `
		UPDATE screening_records SET
			date = $2,
			last_name = $3,
			first_name = $4,
			age = $5,
			phone = $6,
			address = $7,
			vaccination = $8,
			screening = $9,
			mammography = $10,
			mammography_date = $11,
			gyneco_consultation = $12,
			gyneco_date = $13,
			fcu = $14,
			fcu_location = $15,
			has_additional_exams = $16,
			hpv = $17,
			mammary_ultrasound = $18,
			thermo_ablation = $19,
			anapath = $20
		WHERE id = $1::uuid
		RETURNING
			id::text, screening_number, date::text, last_name, first_name, age,
			phone, address, vaccination, screening, mammography, mammography_date::text,
			gyneco_consultation, gyneco_date::text, fcu, fcu_location,
			has_additional_exams, hpv, mammary_ultrasound, thermo_ablation,
			anapath, created_at;
	`,

	// DeleteByID - Suppression idempotente (zéro ligne supprimée n'est pas une erreur ici)
	DeleteByID: `
		DELETE FROM screening_records WHERE id = $1::uuid;
	`,

	// LastNumberForYear - Dernier numéro séquentiel attribué pour l'année
	// Format des numéros : DEP-{YYYY}-{NNNN}, le suffixe commence au caractère 10
	LastNumberForYear: `
		SELECT COALESCE(MAX(SUBSTRING(screening_number FROM 10)::int), 0)
		FROM screening_records
		WHERE screening_number LIKE $1;
	`,
}
