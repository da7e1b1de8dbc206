package catalogue

import "errors"

var (
	ErrCodeVide = errors.New("code article ne peut pas être vide")
)

// Article représente un article du référentiel Sage X3.
// Donnée de référence en lecture seule : jamais modifiée côté caisse.
type Article struct {
	Code        string  `json:"item_code"`       // Code article (ITMREF)
	Designation string  `json:"description"`     // Désignation
	PrixBase    float64 `json:"base_price"`      // Prix de base unitaire
	Categorie   string  `json:"category"`        // Catégorie
	Stock       float64 `json:"stock"`           // Quantité disponible
	Unite       string  `json:"unit_of_measure"` // Unité de vente (SAU)
	CodeBarre   string  `json:"barcode,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// NewArticle crée un article du référentiel
func NewArticle(code, designation string, prixBase float64) (*Article, error) {
	if code == "" {
		return nil, ErrCodeVide
	}

	return &Article{
		Code:        code,
		Designation: designation,
		PrixBase:    prixBase,
	}, nil
}

// EnStock vérifie si l'article est disponible
func (a *Article) EnStock() bool {
	return a.Stock > 0
}
