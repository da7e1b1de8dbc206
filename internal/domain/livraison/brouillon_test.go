package livraison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disponiblesTest() []SelectionArticle {
	return []SelectionArticle{
		{Code: "ART1", Designation: "Ciment 50kg", QuantiteMax: 120},
		{Code: "ART2", Designation: "Fer à béton 12mm", QuantiteMax: 40},
		{Code: "ART3", Designation: "Gravier m3", QuantiteMax: 8},
	}
}

func brouillonComplet() *Brouillon {
	b := NewBrouillon("SITE01")
	b.TypeLivraison = "SDN"
	b.ClientLivre = "CL001"
	b.DateExpedition = "2026-09-01"
	b.DateLivraison = "2026-09-03"
	b.Selectionner("ART1", "Ciment 50kg", 120)
	return b
}

func TestPeutSoumettreChampsObligatoires(t *testing.T) {
	b := NewBrouillon("")
	assert.False(t, b.PeutSoumettre())
	assert.ElementsMatch(t,
		[]string{"site_expedition", "type_livraison", "client_livre", "date_expedition", "date_livraison", "articles"},
		b.ChampsManquants())

	assert.True(t, brouillonComplet().PeutSoumettre())
}

func TestSelectionnerSertLaPleineQuantite(t *testing.T) {
	b := NewBrouillon("SITE01")
	b.Selectionner("ART1", "Ciment 50kg", 120)

	articles := b.Articles()
	require.Len(t, articles, 1)
	assert.Equal(t, 120.0, articles[0].Quantite)
	assert.Equal(t, 120.0, articles[0].QuantiteMax)
}

func TestDefinirQuantiteBornee(t *testing.T) {
	b := NewBrouillon("SITE01")
	b.Selectionner("ART1", "Ciment 50kg", 120)

	// Hors bornes : ramené silencieusement à la borne la plus proche
	require.NoError(t, b.DefinirQuantite("ART1", 500))
	assert.Equal(t, 120.0, b.Articles()[0].Quantite)

	require.NoError(t, b.DefinirQuantite("ART1", -3))
	assert.Equal(t, 0.0, b.Articles()[0].Quantite)

	require.NoError(t, b.DefinirQuantite("ART1", 35))
	assert.Equal(t, 35.0, b.Articles()[0].Quantite)

	assert.ErrorIs(t, b.DefinirQuantite("ABSENT", 1), ErrArticleNonSelectionne)
}

func TestReselectionAbaisseLePlafondEtLaQuantite(t *testing.T) {
	b := NewBrouillon("SITE01")
	b.Selectionner("ART1", "Ciment 50kg", 100)
	require.NoError(t, b.DefinirQuantite("ART1", 80))

	// Resélection avec un plafond plus bas : la quantité saisie doit
	// rester dans [0, max]
	b.Selectionner("ART1", "Ciment 50kg", 50)

	articles := b.Articles()
	require.Len(t, articles, 1)
	assert.Equal(t, 50.0, articles[0].QuantiteMax)
	assert.Equal(t, 50.0, articles[0].Quantite)

	// Plafond relevé : la quantité saisie est conservée
	b.Selectionner("ART1", "Ciment 50kg", 200)
	articles = b.Articles()
	assert.Equal(t, 200.0, articles[0].QuantiteMax)
	assert.Equal(t, 50.0, articles[0].Quantite)
}

func TestToutAjouterEquivautAuxSelectionsIndividuelles(t *testing.T) {
	disponibles := disponiblesTest()

	global := NewBrouillon("SITE01")
	global.ToutAjouter(disponibles)

	individuel := NewBrouillon("SITE01")
	for _, a := range disponibles {
		individuel.Selectionner(a.Code, a.Designation, a.QuantiteMax)
		require.NoError(t, individuel.DefinirQuantite(a.Code, a.QuantiteMax))
	}

	assert.Equal(t, individuel.Articles(), global.Articles())

	articles := global.Articles()
	require.Len(t, articles, len(disponibles))
	for i, a := range articles {
		assert.Equal(t, disponibles[i].QuantiteMax, a.Quantite)
	}
}

func TestToutAjouterIdempotent(t *testing.T) {
	b := NewBrouillon("SITE01")
	b.ToutAjouter(disponiblesTest())
	b.ToutAjouter(disponiblesTest())

	assert.Len(t, b.Articles(), 3)
}

func TestDeselectionner(t *testing.T) {
	b := NewBrouillon("SITE01")
	b.ToutAjouter(disponiblesTest())
	b.Deselectionner("ART2")

	articles := b.Articles()
	require.Len(t, articles, 2)
	assert.Equal(t, "ART1", articles[0].Code)
	assert.Equal(t, "ART3", articles[1].Code)
}

func TestPayloadEcarteLesQuantitesNulles(t *testing.T) {
	b := brouillonComplet()
	b.Selectionner("ART2", "Fer à béton 12mm", 40)
	require.NoError(t, b.DefinirQuantite("ART2", 0))

	p := b.Payload()
	assert.Equal(t, "SITE01", p.SiteExpedition)
	assert.Equal(t, "CL001", p.ClientLivre)
	require.Len(t, p.Lignes, 1)
	assert.Equal(t, "ART1", p.Lignes[0].CodeArticle)
	assert.Equal(t, 120.0, p.Lignes[0].Quantite)
}
