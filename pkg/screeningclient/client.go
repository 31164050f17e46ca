package screeningclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Screening est la forme persistée telle que servie par l'API
type Screening struct {
	ID              string `json:"id"`
	ScreeningNumber string `json:"screening_number"`
	Date            string `json:"date"`
	LastName        string `json:"last_name"`
	FirstName       string `json:"first_name"`
	Age             int    `json:"age"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`

	Vaccination bool `json:"vaccination"`
	Screening   bool `json:"screening"`

	Mammography     string  `json:"mammography"`
	MammographyDate *string `json:"mammography_date,omitempty"`

	GynecoConsultation bool    `json:"gyneco_consultation"`
	GynecoDate         *string `json:"gyneco_date,omitempty"`

	FCU         bool    `json:"fcu"`
	FCULocation *string `json:"fcu_location,omitempty"`

	HasAdditionalExams *string `json:"has_additional_exams,omitempty"`

	HPV               bool `json:"hpv"`
	MammaryUltrasound bool `json:"mammary_ultrasound"`
	ThermoAblation    bool `json:"thermo_ablation"`
	Anapath           bool `json:"anapath"`

	CreatedAt time.Time `json:"created_at"`
}

// CreateForm porte les champs bruts du formulaire de saisie ; les intentions
// booléennes restent en "oui"/"non" et l'âge en chaîne, la normalisation
// appartient au serveur
type CreateForm struct {
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
	MammographyDate *string `json:"mammographyDate,omitempty"`
	GynecoDate      *string `json:"gynecoDate,omitempty"`

	FCU         bool    `json:"fcu"`
	FCULocation *string `json:"fcuLocation,omitempty"`

	HasAdditionalExams *string `json:"hasAdditionalExams,omitempty"`

	HPV               bool `json:"hpv"`
	MammaryUltrasound bool `json:"mammaryUltrasound"`
	ThermoAblation    bool `json:"thermoAblation"`
	Anapath           bool `json:"anapath"`
}

// APIError est l'enveloppe d'erreur du serveur : message localisé + code
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Code       string `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API %d: %s", e.StatusCode, e.Message)
}

// IsNotFound indique si l'erreur correspond à un enregistrement absent
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client est le client HTTP typé de l'API dépistage
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient crée un client vers l'API ; baseURL sans slash final
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithHTTPClient remplace le client HTTP sous-jacent (timeouts, transport)
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// List récupère la collection complète, du plus récent au plus ancien
func (c *Client) List(ctx context.Context) ([]Screening, error) {
	var envelope struct {
		Screenings []Screening `json:"screenings"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/screening", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Screenings, nil
}

// Get récupère un enregistrement par identifiant
func (c *Client) Get(ctx context.Context, id string) (*Screening, error) {
	var envelope struct {
		Screening Screening `json:"screening"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/screening/"+id, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Screening, nil
}

// Create envoie les champs bruts du formulaire
func (c *Client) Create(ctx context.Context, form *CreateForm) error {
	return c.do(ctx, http.MethodPost, "/api/screening", form, nil)
}

// Update remplace intégralement l'enregistrement et retourne la version
// confirmée par le serveur
func (c *Client) Update(ctx context.Context, record *Screening) (*Screening, error) {
	var envelope struct {
		Success   bool      `json:"success"`
		Screening Screening `json:"screening"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/screening/"+record.ID, record, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Screening, nil
}

// Delete supprime un enregistrement ; 404 remonte en APIError
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/screening/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encodage requête: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
