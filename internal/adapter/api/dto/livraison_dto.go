package dto

import "github.com/malicksy/pos-sagex3/internal/domain/livraison"

// BrouillonRequest ouvre un brouillon de livraison
type BrouillonRequest struct {
	SiteExpedition string `json:"site_expedition" binding:"required"`
}

// ChampsBrouillonRequest met à jour les champs simples d'un brouillon.
// Les pointeurs distinguent un champ absent d'un champ vidé.
type ChampsBrouillonRequest struct {
	TypeLivraison  *string `json:"type_livraison"`
	ClientPayeur   *string `json:"client_payeur"`
	DateExpedition *string `json:"date_expedition"`
	DateLivraison  *string `json:"date_livraison"`
	ModeLivraison  *string `json:"mode_livraison"`
	Transporteur   *string `json:"transporteur"`
}

// SelectionRequest sélectionne un article sur le brouillon
type SelectionRequest struct {
	CodeArticle string  `json:"item_code" binding:"required"`
	Designation string  `json:"description"`
	QuantiteMax float64 `json:"quantite_max"`
}

// QuantiteBrouillonRequest fixe la quantité demandée d'un article sélectionné
type QuantiteBrouillonRequest struct {
	Quantite float64 `json:"quantite"`
}

// BrouillonResponse est l'état courant du brouillon
type BrouillonResponse struct {
	Brouillon       *livraison.Brouillon         `json:"brouillon"`
	Articles        []livraison.SelectionArticle `json:"articles"`
	PeutSoumettre   bool                         `json:"peut_soumettre"`
	ChampsManquants []string                     `json:"champs_manquants,omitempty"`
}

// SoumissionResponse est l'accusé de soumission d'un brouillon
type SoumissionResponse struct {
	Numero string `json:"numero"`
}
