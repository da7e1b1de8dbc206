package dto

import (
	"github.com/malicksy/pos-sagex3/internal/domain/panier"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
)

// LignePanierRequest est la demande d'ajout d'un article au panier
type LignePanierRequest struct {
	CodeArticle string `json:"item_code" binding:"required"`
	Quantite    int    `json:"quantity" binding:"required"`
}

// QuantiteRequest est la demande de changement de quantité d'une ligne
type QuantiteRequest struct {
	Quantite int `json:"quantity"`
}

// PanierResponse est l'état courant du panier avec ses totaux
type PanierResponse struct {
	Lignes []panier.Ligne `json:"lignes"`
	Totaux panier.Totaux  `json:"totaux"`
	Devise string         `json:"devise"`
}

// EncaissementRequest est la demande d'encaissement du panier
type EncaissementRequest struct {
	ModePaiement string `json:"mode_paiement" binding:"required"`
	CodeClient   string `json:"code_client"`
}

// EncaissementResponse est le résultat d'un encaissement
type EncaissementResponse struct {
	Transaction   *transaction.Transaction `json:"transaction"`
	Ticket        string                   `json:"ticket"`
	PaiementLocal bool                     `json:"paiement_local"` // Paiement approuvé en mode dégradé
}

// StatutRequest est la demande de changement de statut d'une transaction
type StatutRequest struct {
	Statut string `json:"statut" binding:"required"`
}

// ClientLivreRequest est la demande de changement de client livré
type ClientLivreRequest struct {
	CodeClient string `json:"code_client" binding:"required"`
}

// AdresseRequest est la demande de sélection d'adresse de livraison
type AdresseRequest struct {
	Code string `json:"code" binding:"required"`
}

// AdressesResponse est l'état des adresses de livraison de la session
type AdressesResponse struct {
	Adresses interface{} `json:"adresses"`
	Choisie  string      `json:"choisie"`
	Local    bool        `json:"local"`
}
