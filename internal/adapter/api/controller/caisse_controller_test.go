package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/repository"
	"github.com/malicksy/pos-sagex3/internal/adapter/sagex3"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
	"github.com/malicksy/pos-sagex3/internal/session"
	"github.com/malicksy/pos-sagex3/pkg/auth"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// caisseHorsLigne désigne un backend injoignable, la caisse bascule en
// mode dégradé sur les données locales
const caisseHorsLigne = "http://127.0.0.1:1"

// newRouteurCaisse monte les routes de caisse et de livraison sur un
// backend donné, avec une session identifiée par l'en-tête de terminal
func newRouteurCaisse(t *testing.T, backendURL string) (*gin.Engine, *repository.MemoireTransactionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	x3 := sagex3.NewClient(sagex3.Config{BaseURL: backendURL, Dossier: "TEST", CacheTTL: time.Minute}, log)
	sessions := session.NewRegistre()
	repo := repository.NewMemoireTransactionRepository()
	assembleur := &transaction.Assembleur{}

	caisse := NewCaisseController(x3, sessions, repo, assembleur, "MAGTEST", log)
	livraison := NewLivraisonController(x3, sessions, log)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("caissier_nom", "Caissier Test")
		c.Next()
	})

	router.GET("/caisse/panier", caisse.Panier)
	router.POST("/caisse/panier", caisse.AjouterArticle)
	router.PATCH("/caisse/panier/:code", caisse.DefinirQuantite)
	router.DELETE("/caisse/panier", caisse.ViderPanier)
	router.PUT("/caisse/client", caisse.DefinirClientLivre)
	router.POST("/caisse/encaissement", caisse.Encaisser)

	router.POST("/livraison/brouillon", livraison.Ouvrir)
	router.GET("/livraison/brouillon", livraison.Etat)
	router.PATCH("/livraison/brouillon", livraison.DefinirChamps)
	router.POST("/livraison/brouillon/articles", livraison.Selectionner)
	router.POST("/livraison/brouillon/soumission", livraison.Soumettre)

	return router, repo
}

func requeteJSON(t *testing.T, router *gin.Engine, methode, chemin string, corps interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var lecteur *bytes.Reader
	if corps != nil {
		donnees, err := json.Marshal(corps)
		require.NoError(t, err)
		lecteur = bytes.NewReader(donnees)
	} else {
		lecteur = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(methode, chemin, lecteur)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.HeaderTerminal, "CAISSE-01")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEncaisserPanierVide(t *testing.T) {
	router, _ := newRouteurCaisse(t, caisseHorsLigne)

	w := requeteJSON(t, router, http.MethodPost, "/caisse/encaissement",
		dto.EncaissementRequest{ModePaiement: "especes"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEncaisserModePaiementInvalide(t *testing.T) {
	router, _ := newRouteurCaisse(t, caisseHorsLigne)

	w := requeteJSON(t, router, http.MethodPost, "/caisse/panier",
		dto.LignePanierRequest{CodeArticle: "ART-RIZ-25", Quantite: 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = requeteJSON(t, router, http.MethodPost, "/caisse/encaissement",
		dto.EncaissementRequest{ModePaiement: "cheque"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEncaisserHorsLigne(t *testing.T) {
	router, repo := newRouteurCaisse(t, caisseHorsLigne)

	// Article tarifé au prix de base local en mode dégradé
	w := requeteJSON(t, router, http.MethodPost, "/caisse/panier",
		dto.LignePanierRequest{CodeArticle: "ART-RIZ-25", Quantite: 2})
	require.Equal(t, http.StatusOK, w.Code)

	var etatPanier dto.PanierResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &etatPanier))
	require.Len(t, etatPanier.Lignes, 1)
	assert.InDelta(t, 29000.0, etatPanier.Totaux.Total, 0.001)

	w = requeteJSON(t, router, http.MethodPost, "/caisse/encaissement",
		dto.EncaissementRequest{ModePaiement: "especes"})
	require.Equal(t, http.StatusCreated, w.Code)

	var encaissement dto.EncaissementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encaissement))
	require.NotNil(t, encaissement.Transaction)
	assert.Equal(t, transaction.StatutValidee, encaissement.Transaction.Statut)
	assert.True(t, encaissement.PaiementLocal)
	assert.NotEmpty(t, encaissement.Ticket)
	assert.Equal(t, "MAGTEST", encaissement.Transaction.Recu.Magasin)
	assert.Equal(t, "CAISSE-01", encaissement.Transaction.Recu.Terminal)

	// Transaction journalisée
	journal, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, encaissement.Transaction.ID, journal[0].ID)

	// Panier vidé après encaissement validé
	w = requeteJSON(t, router, http.MethodGet, "/caisse/panier", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &etatPanier))
	assert.Empty(t, etatPanier.Lignes)
}

func TestArticleInconnu(t *testing.T) {
	router, _ := newRouteurCaisse(t, caisseHorsLigne)

	w := requeteJSON(t, router, http.MethodPost, "/caisse/panier",
		dto.LignePanierRequest{CodeArticle: "ART-INEXISTANT", Quantite: 1})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBrouillonSoumission(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/command/add" {
			json.NewEncoder(w).Encode(map[string]string{"numero": "SDN0042"})
			return
		}
		http.NotFound(w, r)
	}))
	defer backend.Close()

	router, _ := newRouteurCaisse(t, backend.URL)

	// Le brouillon reprend le client livré de la session
	w := requeteJSON(t, router, http.MethodPut, "/caisse/client",
		dto.ClientLivreRequest{CodeClient: "DIVERS"})
	require.Equal(t, http.StatusOK, w.Code)

	w = requeteJSON(t, router, http.MethodPost, "/livraison/brouillon",
		dto.BrouillonRequest{SiteExpedition: "SIEGE"})
	require.Equal(t, http.StatusOK, w.Code)

	// Incomplet : la soumission est bloquée sans erreur levée
	w = requeteJSON(t, router, http.MethodPost, "/livraison/brouillon/soumission", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var etat dto.BrouillonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &etat))
	assert.False(t, etat.PeutSoumettre)
	assert.NotEmpty(t, etat.ChampsManquants)

	typeLivraison := "SDN"
	dateExpedition := "2026-09-01"
	dateLivraison := "2026-09-03"
	w = requeteJSON(t, router, http.MethodPatch, "/livraison/brouillon",
		dto.ChampsBrouillonRequest{
			TypeLivraison:  &typeLivraison,
			DateExpedition: &dateExpedition,
			DateLivraison:  &dateLivraison,
		})
	require.Equal(t, http.StatusOK, w.Code)

	w = requeteJSON(t, router, http.MethodPost, "/livraison/brouillon/articles",
		dto.SelectionRequest{CodeArticle: "ART-RIZ-25", Designation: "Riz parfumé 25kg", QuantiteMax: 80})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &etat))
	require.True(t, etat.PeutSoumettre, "champs manquants: %v", etat.ChampsManquants)

	w = requeteJSON(t, router, http.MethodPost, "/livraison/brouillon/soumission", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var soumission dto.SoumissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &soumission))
	assert.Equal(t, "SDN0042", soumission.Numero)

	// Brouillon consommé après soumission
	w = requeteJSON(t, router, http.MethodGet, "/livraison/brouillon", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
