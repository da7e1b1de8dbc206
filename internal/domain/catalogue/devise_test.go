package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRechercherDevise(t *testing.T) {
	d := RechercherDevise("XAF")
	assert.Equal(t, "FCFA", d.Symbole)
	assert.Equal(t, int32(0), d.Decimales)

	d = RechercherDevise("eur")
	assert.Equal(t, "€", d.Symbole)
	assert.Equal(t, int32(2), d.Decimales)
}

func TestRechercherDeviseInconnue(t *testing.T) {
	d := RechercherDevise("ZZZ")
	assert.Equal(t, "ZZZ", d.Symbole)
	assert.Equal(t, int32(2), d.Decimales)
}

func TestFormaterDeviseSansDecimales(t *testing.T) {
	// Les francs CFA s'affichent en entier, pas en centimes
	assert.Equal(t, "15 FCFA", Formater(15.444, "XAF"))
	assert.Equal(t, "1250 FCFA", Formater(1250.0, "XOF"))
}

func TestFormaterDeviseDeuxDecimales(t *testing.T) {
	assert.Equal(t, "15.44 €", Formater(15.444, "EUR"))
	assert.Equal(t, "15.45 $", Formater(15.445, "USD"))
	assert.Equal(t, "0.00 €", Formater(0, "EUR"))
}

func TestArrondir(t *testing.T) {
	assert.Equal(t, 15.44, Arrondir(15.444, "EUR"))
	assert.Equal(t, 15.0, Arrondir(15.444, "XAF"))
}
