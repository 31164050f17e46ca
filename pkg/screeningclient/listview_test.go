package screeningclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer simule l'API : collection en mémoire, mutable par les tests
type fakeServer struct {
	mu         sync.Mutex
	screenings []Screening

	failList bool
}

func (s *fakeServer) setScreenings(screenings []Screening) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screenings = screenings
}

func (s *fakeServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/screening":
			if s.failList {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Erreur de connexion à la base de données. Veuillez réessayer.",
					"code":  "PERSISTENCE_FAILED",
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"screenings": s.screenings})

		case r.Method == http.MethodDelete:
			id := strings.TrimPrefix(r.URL.Path, "/api/screening/")
			for i, screening := range s.screenings {
				if screening.ID == id {
					s.screenings = append(s.screenings[:i], s.screenings[i+1:]...)
					json.NewEncoder(w).Encode(map[string]interface{}{
						"success": true,
						"message": "Enregistrement supprimé avec succès",
					})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "Enregistrement non trouvé",
				"code":  "RECORD_NOT_FOUND",
			})

		case r.Method == http.MethodPut:
			id := strings.TrimPrefix(r.URL.Path, "/api/screening/")
			var incoming Screening
			if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			for i, screening := range s.screenings {
				if screening.ID == id {
					incoming.ID = screening.ID
					incoming.ScreeningNumber = screening.ScreeningNumber
					incoming.CreatedAt = screening.CreatedAt
					s.screenings[i] = incoming
					json.NewEncoder(w).Encode(map[string]interface{}{
						"success":   true,
						"screening": incoming,
					})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "Enregistrement non trouvé",
				"code":  "RECORD_NOT_FOUND",
			})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func makeScreenings(count int) []Screening {
	screenings := make([]Screening, count)
	for i := range screenings {
		screenings[i] = Screening{
			ID:              fmt.Sprintf("id-%03d", i),
			ScreeningNumber: fmt.Sprintf("DEP-2024-%04d", count-i),
			Date:            "2024-01-01",
			LastName:        fmt.Sprintf("Nom%03d", i),
			FirstName:       "Marie",
			Age:             30 + i,
			CreatedAt:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		}
	}
	return screenings
}

func newTestView(t *testing.T, server *fakeServer) *ListView {
	t.Helper()
	ts := httptest.NewServer(server.handler())
	t.Cleanup(ts.Close)
	return NewListView(NewClient(ts.URL))
}

func TestListViewStartsLoading(t *testing.T) {
	view := NewListView(NewClient("http://127.0.0.1:0"))
	assert.Equal(t, StateLoading, view.State())
}

func TestRefreshTransitionsToReady(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(3))
	view := newTestView(t, server)

	require.NoError(t, view.Refresh(context.Background()))

	assert.Equal(t, StateReady, view.State())
	assert.Len(t, view.Screenings(), 3)
}

func TestRefreshTransitionsToEmpty(t *testing.T) {
	server := &fakeServer{}
	view := newTestView(t, server)

	require.NoError(t, view.Refresh(context.Background()))

	assert.Equal(t, StateEmpty, view.State())
	assert.Empty(t, view.Screenings())
}

func TestRefreshFailureKeepsCollection(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(2))
	view := newTestView(t, server)

	require.NoError(t, view.Refresh(context.Background()))
	require.Len(t, view.Screenings(), 2)

	server.mu.Lock()
	server.failList = true
	server.mu.Unlock()

	err := view.Refresh(context.Background())
	require.Error(t, err)

	// La collection affichée survit à un poll raté
	assert.Len(t, view.Screenings(), 2)
	assert.Equal(t, StateReady, view.State())
}

func TestRefreshReplacesWholesale(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(3))
	view := newTestView(t, server)

	require.NoError(t, view.Refresh(context.Background()))

	// Le serveur repart sur une collection entièrement différente :
	// remplacement intégral, pas de fusion
	replacement := makeScreenings(1)
	replacement[0].ID = "autre-id"
	replacement[0].LastName = "Remplacé"
	server.setScreenings(replacement)

	require.NoError(t, view.Refresh(context.Background()))

	screenings := view.Screenings()
	require.Len(t, screenings, 1)
	assert.Equal(t, "Remplacé", screenings[0].LastName)
}

func TestPaginationIsLocalSlicing(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(25))
	view := newTestView(t, server)

	require.NoError(t, view.Refresh(context.Background()))

	assert.Equal(t, 3, view.TotalPages())

	page1 := view.Page(1)
	require.Len(t, page1, PageSize)
	assert.Equal(t, "id-000", page1[0].ID)

	page3 := view.Page(3)
	require.Len(t, page3, 5)
	assert.Equal(t, "id-020", page3[0].ID)

	// Hors bornes : page vide, pas de panique
	assert.Empty(t, view.Page(4))
	assert.Len(t, view.Page(0), PageSize)
}

func TestDeleteRemovesLocallyOnlyAfterConfirmation(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(2))
	view := newTestView(t, server)
	ctx := context.Background()

	require.NoError(t, view.Refresh(ctx))

	require.NoError(t, view.Delete(ctx, "id-000"))
	screenings := view.Screenings()
	require.Len(t, screenings, 1)
	assert.Equal(t, "id-001", screenings[0].ID)
}

func TestDeleteRefusedKeepsRow(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(1))
	view := newTestView(t, server)
	ctx := context.Background()

	require.NoError(t, view.Refresh(ctx))

	err := view.Delete(ctx, "id-inconnu")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// Pas de retrait optimiste : la ligne affichée n'a pas bougé
	assert.Len(t, view.Screenings(), 1)
}

func TestDeleteLastRowTransitionsToEmpty(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(1))
	view := newTestView(t, server)
	ctx := context.Background()

	require.NoError(t, view.Refresh(ctx))
	require.Equal(t, StateReady, view.State())

	require.NoError(t, view.Delete(ctx, "id-000"))
	assert.Equal(t, StateEmpty, view.State())
}

func TestDraftIsIsolatedFromPolling(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(1))
	view := newTestView(t, server)
	ctx := context.Background()

	require.NoError(t, view.Refresh(ctx))

	draft, err := view.BeginEdit("id-000")
	require.NoError(t, err)
	draft.LastName = "Modifié"

	// Un tick de polling arrive pendant que la modale est ouverte
	require.NoError(t, view.Refresh(ctx))

	// Le brouillon n'est pas écrasé, la collection affichée non plus
	require.NotNil(t, view.Draft())
	assert.Equal(t, "Modifié", view.Draft().LastName)
	assert.Equal(t, "Nom000", view.Screenings()[0].LastName)
}

func TestCancelEditDropsDraft(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(1))
	view := newTestView(t, server)

	require.NoError(t, view.Refresh(context.Background()))

	_, err := view.BeginEdit("id-000")
	require.NoError(t, err)

	view.CancelEdit()
	assert.Nil(t, view.Draft())
	assert.Equal(t, "Nom000", view.Screenings()[0].LastName)
}

func TestSaveEditSendsDraftAndAppliesConfirmation(t *testing.T) {
	server := &fakeServer{}
	server.setScreenings(makeScreenings(1))
	view := newTestView(t, server)
	ctx := context.Background()

	require.NoError(t, view.Refresh(ctx))

	draft, err := view.BeginEdit("id-000")
	require.NoError(t, err)
	draft.LastName = "Kouassi"
	draft.Age = -3

	require.NoError(t, view.SaveEdit(ctx))

	screenings := view.Screenings()
	require.Len(t, screenings, 1)
	assert.Equal(t, "Kouassi", screenings[0].LastName)
	assert.Equal(t, 0, screenings[0].Age, "âge négatif matérialisé en 0 avant envoi")
	assert.Nil(t, view.Draft())
}

func TestSaveEditWithoutDraft(t *testing.T) {
	view := NewListView(NewClient("http://127.0.0.1:0"))

	err := view.SaveEdit(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)
}
