package panier

import "errors"

var (
	ErrQuantiteNegative = errors.New("quantité négative")
	ErrArticleInconnu   = errors.New("article absent du panier")
)

// Ligne est une ligne de panier : référence d'article, quantité et les deux
// bases de prix unitaires (HT et TTC). Les totaux de ligne sont dérivés et
// recalculés après chaque mutation, jamais affectés directement.
type Ligne struct {
	ArticleCode       string  `json:"item_code"`
	Designation       string  `json:"description"`
	Unite             string  `json:"unit_of_measure"`
	Quantite          int     `json:"quantity"`
	PrixUnitaireHT    float64 `json:"unit_price_ht"`
	PrixUnitaireTTC   float64 `json:"unit_price_ttc"`
	PrixValorisation  float64 `json:"valuation_price,omitempty"` // Prix tarif informatif
	TotalHT           float64 `json:"total_ht"`
	TotalTTC          float64 `json:"total_ttc"`
	TotalValorisation float64 `json:"total_valuation,omitempty"`
}

// recalculer maintient l'invariant total = quantité × prix unitaire
func (l *Ligne) recalculer() {
	q := float64(l.Quantite)
	l.TotalHT = q * l.PrixUnitaireHT
	l.TotalTTC = q * l.PrixUnitaireTTC
	l.TotalValorisation = q * l.PrixValorisation
}
