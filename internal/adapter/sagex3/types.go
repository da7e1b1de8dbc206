package sagex3

import "time"

// Tiers est la forme canonique d'un client du dossier X3
type Tiers struct {
	Code      string `json:"customer_code"`
	Nom       string `json:"nom"`
	Ville     string `json:"ville,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
	Devise    string `json:"devise,omitempty"`
}

// Adresse est la forme canonique d'une adresse (vente, livraison, expédition)
type Adresse struct {
	Code      string `json:"code"`
	Intitule  string `json:"intitule"`
	Ville     string `json:"ville,omitempty"`
	Pays      string `json:"pays,omitempty"`
	ParDefaut bool   `json:"par_defaut"`
}

// Reference est une entrée code/libellé d'une liste de référence
// (types de commande, modes de livraison, transporteurs, régimes de taxe…)
type Reference struct {
	Code    string `json:"code"`
	Libelle string `json:"libelle"`
}

// ConditionsFacturation regroupe les conditions de facturation d'un client
type ConditionsFacturation struct {
	ConditionPaiement string      `json:"condition_paiement"`
	Escompte          string      `json:"escompte"`
	CondFac           string      `json:"condfac"`
	Elements          []Reference `json:"elements"`
}

// DemandePrix est une ligne de la demande de tarification par lot
type DemandePrix struct {
	CodeArticle string  `json:"item_code"`
	Quantite    float64 `json:"quantity"`
	CodeClient  string  `json:"customer_code"`
	Devise      string  `json:"currency"`
	Unite       string  `json:"unit_of_measure"`
}

// PrixArticle est le tarif calculé d'un article pour un client
type PrixArticle struct {
	CodeArticle  string  `json:"item_code"`
	PrixHT       float64 `json:"prix_ht"`
	PrixTTC      float64 `json:"prix_ttc"`
	Valorisation float64 `json:"prix_valorisation,omitempty"`
}

// DemandeTaxe est une ligne de la demande de résolution de taxes par lot
type DemandeTaxe struct {
	CodeArticle string `json:"item_code"`
	CodeClient  string `json:"customer_code"`
}

// TaxeAppliquee est la taxe applicable à un article pour un client
type TaxeAppliquee struct {
	CodeArticle string  `json:"item_code"`
	CodeTaxe    string  `json:"code_taxe"`
	Taux        float64 `json:"taux"`
}

// ReponseCommande est l'accusé de soumission d'une commande
type ReponseCommande struct {
	Numero string `json:"numero"`
}

// DemandePaiement est la demande d'encaissement transmise au backend
type DemandePaiement struct {
	Montant   float64 `json:"montant"`
	Mode      string  `json:"mode"`
	Devise    string  `json:"devise"`
	Reference string  `json:"reference"` // Identifiant de la transaction de caisse
}

// ResultatPaiement est la réponse du processeur de paiement
type ResultatPaiement struct {
	Autorise   bool      `json:"autorise"`
	Reference  string    `json:"reference"`
	Horodatage time.Time `json:"horodatage"`
}

// EtatSante est la réponse de la sonde de vie du backend
type EtatSante struct {
	Statut string `json:"status"`
}
