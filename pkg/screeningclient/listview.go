package screeningclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// State est l'état de la vue liste
type State int

const (
	// StateLoading : premier chargement pas encore abouti
	StateLoading State = iota
	// StateReady : la collection contient au moins un enregistrement
	StateReady
	// StateEmpty : le serveur a répondu, zéro enregistrement
	StateEmpty
)

const (
	// PollInterval : cadence de rafraîchissement de la liste
	PollInterval = 5 * time.Second
	// PageSize : taille de page fixe, découpage purement client
	PageSize = 10
)

// ErrNoDraft : sauvegarde demandée sans édition en cours
var ErrNoDraft = errors.New("aucune édition en cours")

// ListView porte la politique de synchronisation de la vue liste :
// poll-and-replace (pas de diff ni de fusion), suppression locale seulement
// après confirmation serveur, édition bufferisée dans un brouillon séparé,
// pagination par découpage local de la collection déjà chargée.
type ListView struct {
	client *Client

	mu         sync.Mutex
	state      State
	screenings []Screening

	// brouillon d'édition : copie séparée, jamais touchée par un tick de
	// polling pendant que la modale est ouverte
	draft *Screening
}

// NewListView crée la vue en état Loading
func NewListView(client *Client) *ListView {
	return &ListView{
		client: client,
		state:  StateLoading,
	}
}

// Refresh recharge la collection et la remplace intégralement.
// En cas d'échec la collection courante est conservée telle quelle.
func (v *ListView) Refresh(ctx context.Context) error {
	screenings, err := v.client.List(ctx)
	if err != nil {
		fmt.Printf("[CLIENT] ⚠️ Rafraîchissement liste échoué: %v\n", err)
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.screenings = screenings
	if len(screenings) > 0 {
		v.state = StateReady
	} else {
		v.state = StateEmpty
	}

	return nil
}

// Start effectue le chargement initial puis rafraîchit en tâche de fond à
// cadence fixe, jusqu'à annulation du contexte
func (v *ListView) Start(ctx context.Context) {
	_ = v.Refresh(ctx)

	go func() {
		ticker := time.NewTicker(PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = v.Refresh(ctx)
			}
		}
	}()
}

// State retourne l'état courant de la vue
func (v *ListView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Screenings retourne une copie de la collection complète chargée
func (v *ListView) Screenings() []Screening {
	v.mu.Lock()
	defer v.mu.Unlock()

	copied := make([]Screening, len(v.screenings))
	copy(copied, v.screenings)
	return copied
}

// Page retourne la page demandée (numérotée depuis 1) par découpage local ;
// changer de page ne déclenche jamais de fetch
func (v *ListView) Page(number int) []Screening {
	v.mu.Lock()
	defer v.mu.Unlock()

	if number < 1 {
		number = 1
	}

	start := (number - 1) * PageSize
	if start >= len(v.screenings) {
		return []Screening{}
	}

	end := start + PageSize
	if end > len(v.screenings) {
		end = len(v.screenings)
	}

	page := make([]Screening, end-start)
	copy(page, v.screenings[start:end])
	return page
}

// TotalPages retourne le nombre de pages de la collection chargée
func (v *ListView) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return (len(v.screenings) + PageSize - 1) / PageSize
}

// Delete supprime côté serveur puis retire la ligne localement, uniquement
// après confirmation (jamais de retrait optimiste avant la réponse)
func (v *ListView) Delete(ctx context.Context, id string) error {
	if err := v.client.Delete(ctx, id); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for i, screening := range v.screenings {
		if screening.ID == id {
			v.screenings = append(v.screenings[:i], v.screenings[i+1:]...)
			break
		}
	}

	if len(v.screenings) == 0 && v.state == StateReady {
		v.state = StateEmpty
	}

	return nil
}

// BeginEdit ouvre un brouillon : copie séparée de la ligne, à muter
// librement sans toucher la collection affichée
func (v *ListView) BeginEdit(id string) (*Screening, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, screening := range v.screenings {
		if screening.ID == id {
			draft := screening
			v.draft = &draft
			return v.draft, nil
		}
	}

	return nil, fmt.Errorf("enregistrement %s absent de la collection chargée", id)
}

// Draft retourne le brouillon en cours, nil sinon
func (v *ListView) Draft() *Screening {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// CancelEdit abandonne le brouillon sans toucher la collection
func (v *ListView) CancelEdit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = nil
}

// SaveEdit envoie le brouillon (pas la copie de la liste) ; la copie locale
// n'est remplacée qu'après confirmation du serveur
func (v *ListView) SaveEdit(ctx context.Context) error {
	v.mu.Lock()
	if v.draft == nil {
		v.mu.Unlock()
		return ErrNoDraft
	}
	draft := *v.draft
	v.mu.Unlock()

	// L'âge reste matérialisé : jamais de null envoyé au serveur
	if draft.Age < 0 {
		draft.Age = 0
	}

	updated, err := v.client.Update(ctx, &draft)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for i, screening := range v.screenings {
		if screening.ID == updated.ID {
			v.screenings[i] = *updated
			break
		}
	}
	v.draft = nil

	return nil
}
