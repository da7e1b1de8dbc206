package panier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ligneTest(code string, quantite int, prixHT, prixTTC float64) Ligne {
	return Ligne{
		ArticleCode:     code,
		Designation:     "article " + code,
		Quantite:        quantite,
		PrixUnitaireHT:  prixHT,
		PrixUnitaireTTC: prixTTC,
	}
}

func TestAjouterCumuleMemeArticle(t *testing.T) {
	p := NewPanier()
	require.NoError(t, p.Ajouter(ligneTest("ART1", 2, 10, 11.8)))
	require.NoError(t, p.Ajouter(ligneTest("ART1", 3, 10, 11.8)))

	assert.Equal(t, 1, p.NombreLignes())
	assert.Equal(t, 5, p.NombreArticles())

	lignes := p.Instantane()
	assert.Equal(t, 5, lignes[0].Quantite)
	assert.InDelta(t, 50.0, lignes[0].TotalHT, 1e-9)
	assert.InDelta(t, 59.0, lignes[0].TotalTTC, 1e-9)
}

func TestDefinirQuantiteRecalculeLesTotaux(t *testing.T) {
	p := NewPanier()
	require.NoError(t, p.Ajouter(ligneTest("ART1", 1, 2.5, 2.95)))

	require.NoError(t, p.DefinirQuantite("ART1", 4))

	lignes := p.Instantane()
	assert.Equal(t, 4, lignes[0].Quantite)
	assert.InDelta(t, 10.0, lignes[0].TotalHT, 1e-9)
	assert.InDelta(t, 11.8, lignes[0].TotalTTC, 1e-9)
}

func TestQuantiteNullePositiveRetireLaLigne(t *testing.T) {
	p := NewPanier()
	require.NoError(t, p.Ajouter(ligneTest("ART1", 2, 10, 11.8)))
	require.NoError(t, p.Ajouter(ligneTest("ART2", 1, 5, 5.9)))

	require.NoError(t, p.DefinirQuantite("ART1", 0))
	assert.Equal(t, 1, p.NombreLignes())

	require.NoError(t, p.DefinirQuantite("ART2", -3))
	assert.True(t, p.EstVide())
}

func TestDefinirQuantiteArticleInconnu(t *testing.T) {
	p := NewPanier()
	assert.ErrorIs(t, p.DefinirQuantite("ABSENT", 2), ErrArticleInconnu)
}

func TestAjouterQuantiteNegative(t *testing.T) {
	p := NewPanier()
	assert.ErrorIs(t, p.Ajouter(ligneTest("ART1", -1, 10, 11.8)), ErrQuantiteNegative)
}

func TestInstantaneEstIndependant(t *testing.T) {
	p := NewPanier()
	require.NoError(t, p.Ajouter(ligneTest("ART1", 2, 10, 11.8)))

	copie := p.Instantane()
	require.NoError(t, p.DefinirQuantite("ART1", 7))
	p.Vider()

	assert.Len(t, copie, 1)
	assert.Equal(t, 2, copie[0].Quantite)
}

func TestTotauxPanierVide(t *testing.T) {
	t1 := NewPanier().Totaux()
	assert.Zero(t, t1.SousTotalHT)
	assert.Zero(t, t1.SousTotalTTC)
	assert.Zero(t, t1.Taxe)
	assert.Zero(t, t1.Total)

	t2 := CalculerTotauxTauxFixe(nil, 0.08)
	assert.Zero(t, t2.Total)
}

func TestTotauxDoubleBase(t *testing.T) {
	p := NewPanier()
	require.NoError(t, p.Ajouter(ligneTest("ART1", 2, 10, 11.8)))
	require.NoError(t, p.Ajouter(ligneTest("ART2", 1, 5, 5.9)))

	totaux := p.Totaux()
	assert.InDelta(t, 25.0, totaux.SousTotalHT, 1e-9)
	assert.InDelta(t, 29.5, totaux.SousTotalTTC, 1e-9)
	// Invariant : la taxe est la différence des deux bases
	assert.InDelta(t, totaux.SousTotalTTC-totaux.SousTotalHT, totaux.Taxe, 1e-9)
	assert.InDelta(t, totaux.SousTotalTTC, totaux.Total, 1e-9)
}

func TestTotauxTauxFixeScenarioCaisse(t *testing.T) {
	p := NewPanier()
	require.NoError(t, p.Ajouter(ligneTest("CAFE", 2, 2.70, 0)))
	require.NoError(t, p.Ajouter(ligneTest("PLAT", 1, 8.90, 0)))

	totaux := p.TotauxTauxFixe(0.08)
	assert.InDelta(t, 14.30, totaux.SousTotalHT, 1e-9)
	assert.InDelta(t, 1.144, totaux.Taxe, 1e-9)
	assert.InDelta(t, 15.444, totaux.Total, 1e-9)
}

func TestValorisationIndependante(t *testing.T) {
	l := ligneTest("ART1", 2, 10, 11.8)
	l.PrixValorisation = 15

	p := NewPanier()
	require.NoError(t, p.Ajouter(l))

	totaux := p.Totaux()
	assert.InDelta(t, 30.0, totaux.Valorisation, 1e-9)
	assert.InDelta(t, 23.6, totaux.Total, 1e-9)
}
