package panier

// Totaux regroupe les montants agrégés d'un panier ou d'une transaction.
// Valeurs dérivées, recalculées à chaque lecture : aucun cache, l'exactitude
// prime sur la micro-performance. Aucun arrondi intermédiaire non plus,
// l'arrondi monétaire appartient à la couche d'affichage.
type Totaux struct {
	SousTotalHT  float64 `json:"subtotal_ht"`
	SousTotalTTC float64 `json:"subtotal_ttc"`
	Taxe         float64 `json:"tax"`
	Total        float64 `json:"total"`
	Valorisation float64 `json:"valuation"` // Total tarif informatif, indépendant du net à payer
}

// CalculerTotaux agrège des lignes en double base : chaque ligne porte déjà
// ses prix HT et TTC, la taxe est la différence des deux sommes.
// Un panier vide produit des totaux à zéro.
func CalculerTotaux(lignes []Ligne) Totaux {
	var t Totaux
	for i := range lignes {
		t.SousTotalHT += lignes[i].TotalHT
		t.SousTotalTTC += lignes[i].TotalTTC
		t.Valorisation += lignes[i].TotalValorisation
	}
	t.Taxe = t.SousTotalTTC - t.SousTotalHT
	t.Total = t.SousTotalTTC
	return t
}

// CalculerTotauxTauxFixe agrège des lignes avec un taux de taxe unique
// appliqué au sous-total : mode caisse rapide où les lignes ne portent
// qu'un prix hors taxe.
func CalculerTotauxTauxFixe(lignes []Ligne, taux float64) Totaux {
	var t Totaux
	for i := range lignes {
		t.SousTotalHT += lignes[i].TotalHT
		t.Valorisation += lignes[i].TotalValorisation
	}
	t.Taxe = t.SousTotalHT * taux
	t.Total = t.SousTotalHT + t.Taxe
	t.SousTotalTTC = t.Total
	return t
}

// Totaux retourne les totaux double base du panier
func (p *Panier) Totaux() Totaux {
	return CalculerTotaux(p.lignes)
}

// TotauxTauxFixe retourne les totaux du panier pour un taux de taxe unique
func (p *Panier) TotauxTauxFixe(taux float64) Totaux {
	return CalculerTotauxTauxFixe(p.lignes, taux)
}
