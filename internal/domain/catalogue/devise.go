package catalogue

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Devise décrit une devise de facturation : symbole et nombre de décimales
type Devise struct {
	Code      string `json:"code"`      // Code ISO 4217
	Symbole   string `json:"symbole"`   // Symbole affiché sur le ticket
	Decimales int32  `json:"decimales"` // Nombre de décimales à l'affichage
}

// Table statique des devises rencontrées dans le dossier X3.
// Les francs CFA (XOF/XAF) se formatent sans décimales.
var devises = map[string]Devise{
	"EUR": {Code: "EUR", Symbole: "€", Decimales: 2},
	"USD": {Code: "USD", Symbole: "$", Decimales: 2},
	"GBP": {Code: "GBP", Symbole: "£", Decimales: 2},
	"MAD": {Code: "MAD", Symbole: "DH", Decimales: 2},
	"XOF": {Code: "XOF", Symbole: "FCFA", Decimales: 0},
	"XAF": {Code: "XAF", Symbole: "FCFA", Decimales: 0},
	"GNF": {Code: "GNF", Symbole: "FG", Decimales: 0},
	"JPY": {Code: "JPY", Symbole: "¥", Decimales: 0},
}

// RechercherDevise retourne la devise correspondant au code ISO.
// Un code inconnu est rendu tel quel avec deux décimales.
func RechercherDevise(code string) Devise {
	if d, ok := devises[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return d
	}
	return Devise{Code: code, Symbole: code, Decimales: 2}
}

// Formater arrondit un montant aux décimales de la devise et lui accole
// le symbole. L'arrondi monétaire n'a lieu qu'ici, jamais pendant les
// agrégations intermédiaires.
func Formater(montant float64, codeDevise string) string {
	d := RechercherDevise(codeDevise)
	arrondi := decimal.NewFromFloat(montant).Round(d.Decimales)
	return fmt.Sprintf("%s %s", arrondi.StringFixed(d.Decimales), d.Symbole)
}

// Arrondir arrondit un montant aux décimales de la devise sans le formater
func Arrondir(montant float64, codeDevise string) float64 {
	d := RechercherDevise(codeDevise)
	arrondi, _ := decimal.NewFromFloat(montant).Round(d.Decimales).Float64()
	return arrondi
}
