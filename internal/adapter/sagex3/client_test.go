package sagex3

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/malicksy/pos-sagex3/internal/domain/livraison"
	"github.com/malicksy/pos-sagex3/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandeTestPayload() livraison.Payload {
	return livraison.Payload{
		SiteExpedition: "SIEGE",
		TypeLivraison:  "SDN",
		ClientLivre:    "CL001",
		DateExpedition: "2026-09-01",
		DateLivraison:  "2026-09-03",
		Lignes:         []livraison.LignePayload{{CodeArticle: "ART1", Quantite: 2}},
	}
}

func clientTest(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL, Dossier: "SIEGE", CacheTTL: time.Minute}, logger.NewLogger())
	return c, srv
}

func TestArticlesNormaliseLesFormesBrutes(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/articles/", r.URL.Path)
		require.Equal(t, "SIEGE", r.URL.Query().Get("site_id"))
		// Formes irrégulières volontaires : faute "describtion",
		// prix en chaîne, champs alternatifs
		w.Write([]byte(`[
			{"item_code":"ART1","describtion":"Café moulu","base_price":"12,50","stock":4,"unit_of_measure":"UN"},
			{"code":"ART2","description":"Sucre","prix":800,"quantite_disponible":"10"},
			{"description":"sans code, écarté"}
		]`))
	}))

	r := c.Articles(context.Background(), "SIEGE")
	require.True(t, r.Succes)
	assert.False(t, r.Local)
	require.Len(t, r.Donnees, 2)

	assert.Equal(t, "ART1", r.Donnees[0].Code)
	assert.Equal(t, "Café moulu", r.Donnees[0].Designation)
	assert.InDelta(t, 12.50, r.Donnees[0].PrixBase, 1e-9)

	assert.Equal(t, "ART2", r.Donnees[1].Code)
	assert.InDelta(t, 800.0, r.Donnees[1].PrixBase, 1e-9)
	assert.InDelta(t, 10.0, r.Donnees[1].Stock, 1e-9)
}

func TestArticlesRepliSurSecours(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	r := c.Articles(context.Background(), "SIEGE")
	require.True(t, r.Succes)
	assert.True(t, r.Local)
	assert.NotEmpty(t, r.Donnees)
	assert.NotEmpty(t, r.Erreur)
}

func TestArticlesRepliSurCacheAvantSecours(t *testing.T) {
	enPanne := false
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if enPanne {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"item_code":"ART9","description":"Thé vert","base_price":1200}]`))
	}))

	avant := c.Articles(context.Background(), "SIEGE")
	require.True(t, avant.Succes)
	require.False(t, avant.Local)

	enPanne = true
	second := c.Articles(context.Background(), "SIEGE")
	require.True(t, second.Succes)
	assert.True(t, second.Local)
	// La dernière bonne réponse prime sur les données de secours embarquées
	require.Len(t, second.Donnees, 1)
	assert.Equal(t, "ART9", second.Donnees[0].Code)
}

func TestReponseMalformeeTraiteeCommeIndisponibilite(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pas":"une liste`))
	}))

	r := c.Clients(context.Background())
	require.True(t, r.Succes)
	assert.True(t, r.Local)
	assert.NotEmpty(t, r.Donnees)
}

func TestRechercheLocaleEnModeDegrade(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	r := c.RechercherArticles(context.Background(), "SIEGE", "riz")
	require.True(t, r.Succes)
	assert.True(t, r.Local)
	require.Len(t, r.Donnees, 1)
	assert.Equal(t, "ART-RIZ-25", r.Donnees[0].Code)
}

func TestCalculerPrixRepliSurPrixDeBase(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	demandes := []DemandePrix{{CodeArticle: "ART1", Quantite: 2, CodeClient: "CL001"}}
	r := c.CalculerPrix(context.Background(), demandes, map[string]float64{"ART1": 500})

	require.True(t, r.Succes)
	assert.True(t, r.Local)
	require.Len(t, r.Donnees, 1)
	assert.InDelta(t, 500.0, r.Donnees[0].PrixHT, 1e-9)
	assert.InDelta(t, 500.0, r.Donnees[0].PrixTTC, 1e-9)
}

func TestCalculerPrixDistant(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pricing/", r.URL.Path)
		var demandes []DemandePrix
		require.NoError(t, json.NewDecoder(r.Body).Decode(&demandes))
		require.Len(t, demandes, 1)
		w.Write([]byte(`[{"item_code":"ART1","prix_ht":"1000","prix_ttc":1180}]`))
	}))

	r := c.CalculerPrix(context.Background(), []DemandePrix{{CodeArticle: "ART1", Quantite: 1}}, nil)
	require.True(t, r.Succes)
	assert.False(t, r.Local)
	assert.InDelta(t, 1000.0, r.Donnees[0].PrixHT, 1e-9)
	assert.InDelta(t, 1180.0, r.Donnees[0].PrixTTC, 1e-9)
}

func TestTaxesAppliqueesDistant(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/taxe/applied/", r.URL.Path)
		var demandes []DemandeTaxe
		require.NoError(t, json.NewDecoder(r.Body).Decode(&demandes))
		require.Len(t, demandes, 1)
		require.Equal(t, "ART1", demandes[0].CodeArticle)
		w.Write([]byte(`[{"item_code":"ART1","code_taxe":"NOR","taux":18}]`))
	}))

	r := c.TaxesAppliquees(context.Background(), []DemandeTaxe{{CodeArticle: "ART1", CodeClient: "CL001"}})
	require.True(t, r.Succes)
	assert.False(t, r.Local)
	require.Len(t, r.Donnees, 1)
	assert.Equal(t, "NOR", r.Donnees[0].CodeTaxe)
	assert.InDelta(t, 18.0, r.Donnees[0].Taux, 1e-9)
}

func TestTaxesAppliqueesSansTaxeEnModeDegrade(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	r := c.TaxesAppliquees(context.Background(), []DemandeTaxe{{CodeArticle: "ART1", CodeClient: "CL001"}})
	require.True(t, r.Succes)
	assert.True(t, r.Local)
	assert.Empty(t, r.Donnees)
	assert.NotEmpty(t, r.Erreur)
}

func TestTraiterPaiementSyntheseLocale(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	r := c.TraiterPaiement(context.Background(), DemandePaiement{Montant: 1500, Mode: "especes", Reference: "TX-1"})
	require.True(t, r.Succes)
	assert.True(t, r.Local)
	assert.True(t, r.Donnees.Autorise)
	assert.Equal(t, "LOCAL-TX-1", r.Donnees.Reference)
}

func TestSoumettreCommandeSansRepli(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	r := c.SoumettreCommande(context.Background(), commandeTestPayload())
	assert.False(t, r.Succes)
	assert.NotEmpty(t, r.Erreur)
}

func TestSanteHorsLigne(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1", CacheTTL: time.Minute}, logger.NewLogger())

	r := c.Sante(context.Background())
	require.True(t, r.Succes)
	assert.True(t, r.Local)
	assert.Equal(t, "hors_ligne", r.Donnees.Statut)
}

func TestAdressesLivraison(t *testing.T) {
	c, _ := clientTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/adresse/livraison", r.URL.Path)
		require.Equal(t, "CL001", r.URL.Query().Get("code_client"))
		w.Write([]byte(`[{"code_adresse":"ADR1","name":"Dépôt nord","par_defaut":true}]`))
	}))

	r := c.AdressesLivraison(context.Background(), "CL001")
	require.True(t, r.Succes)
	require.Len(t, r.Donnees, 1)
	assert.Equal(t, "ADR1", r.Donnees[0].Code)
	assert.Equal(t, "Dépôt nord", r.Donnees[0].Intitule)
	assert.True(t, r.Donnees[0].ParDefaut)
}
