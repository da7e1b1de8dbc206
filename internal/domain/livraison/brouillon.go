package livraison

import "errors"

var (
	ErrArticleNonSelectionne = errors.New("article non sélectionné dans le brouillon")
)

// SelectionArticle est un article retenu sur un brouillon de livraison,
// avec sa quantité demandée et le plafond disponible côté stock
type SelectionArticle struct {
	Code        string  `json:"item_code"`
	Designation string  `json:"description"`
	Quantite    float64 `json:"quantite"`
	QuantiteMax float64 `json:"quantite_max"`
}

// Brouillon est un bon de livraison en cours de saisie. Agrégat mutable à
// durée de vie courte : il n'existe que pendant que le formulaire est
// ouvert et il est abandonné à l'annulation ou après soumission. La
// soumission elle-même appartient au backend, ce composant s'arrête à la
// production d'une charge utile structurellement valide.
type Brouillon struct {
	SiteExpedition   string `json:"site_expedition"`
	TypeLivraison    string `json:"type_livraison"`
	ClientPayeur     string `json:"client_payeur"`
	ClientFacture    string `json:"client_facture"`
	ClientLivre      string `json:"client_livre"`
	AdresseLivraison string `json:"adresse_livraison"`
	DateExpedition   string `json:"date_expedition"`
	DateLivraison    string `json:"date_livraison"`
	ModeLivraison    string `json:"mode_livraison"`
	Transporteur     string `json:"transporteur"`

	articles []SelectionArticle
}

// NewBrouillon ouvre un brouillon de livraison pour un site d'expédition
func NewBrouillon(siteExpedition string) *Brouillon {
	return &Brouillon{SiteExpedition: siteExpedition}
}

// Selectionner ajoute un article au brouillon, servi à sa pleine quantité
// disponible. Sélectionner un article déjà présent ne crée pas de doublon.
func (b *Brouillon) Selectionner(code, designation string, quantiteMax float64) {
	for i := range b.articles {
		if b.articles[i].Code == code {
			b.articles[i].QuantiteMax = quantiteMax
			// Un plafond abaissé ramène la quantité déjà saisie dans la borne
			if b.articles[i].Quantite > quantiteMax {
				b.articles[i].Quantite = quantiteMax
			}
			return
		}
	}
	b.articles = append(b.articles, SelectionArticle{
		Code:        code,
		Designation: designation,
		Quantite:    quantiteMax,
		QuantiteMax: quantiteMax,
	})
}

// Deselectionner retire un article du brouillon
func (b *Brouillon) Deselectionner(code string) {
	for i := range b.articles {
		if b.articles[i].Code == code {
			b.articles = append(b.articles[:i], b.articles[i+1:]...)
			return
		}
	}
}

// DefinirQuantite fixe la quantité demandée d'un article sélectionné.
// Toute saisie hors bornes est ramenée silencieusement dans [0, max],
// jamais rejetée.
func (b *Brouillon) DefinirQuantite(code string, quantite float64) error {
	for i := range b.articles {
		if b.articles[i].Code != code {
			continue
		}
		if quantite < 0 {
			quantite = 0
		}
		if quantite > b.articles[i].QuantiteMax {
			quantite = b.articles[i].QuantiteMax
		}
		b.articles[i].Quantite = quantite
		return nil
	}
	return ErrArticleNonSelectionne
}

// ToutAjouter sélectionne d'un coup tous les articles disponibles, chacun
// à sa pleine quantité. L'état obtenu est le même que des sélections
// individuelles suivies d'une saisie de la quantité au maximum.
func (b *Brouillon) ToutAjouter(disponibles []SelectionArticle) {
	for _, a := range disponibles {
		b.Selectionner(a.Code, a.Designation, a.QuantiteMax)
		// La sélection sert déjà la pleine quantité ; on réaffirme la
		// borne pour un article resélectionné avec un nouveau plafond.
		_ = b.DefinirQuantite(a.Code, a.QuantiteMax)
	}
}

// Articles retourne une copie des articles sélectionnés, dans l'ordre de sélection
func (b *Brouillon) Articles() []SelectionArticle {
	copie := make([]SelectionArticle, len(b.articles))
	copy(copie, b.articles)
	return copie
}

// ChampsManquants liste les champs obligatoires encore vides
func (b *Brouillon) ChampsManquants() []string {
	var manquants []string
	if b.SiteExpedition == "" {
		manquants = append(manquants, "site_expedition")
	}
	if b.TypeLivraison == "" {
		manquants = append(manquants, "type_livraison")
	}
	if b.ClientLivre == "" {
		manquants = append(manquants, "client_livre")
	}
	if b.DateExpedition == "" {
		manquants = append(manquants, "date_expedition")
	}
	if b.DateLivraison == "" {
		manquants = append(manquants, "date_livraison")
	}
	if len(b.articles) == 0 {
		manquants = append(manquants, "articles")
	}
	return manquants
}

// PeutSoumettre indique si tous les champs obligatoires sont renseignés.
// Une validation manquante bloque la soumission côté caisse, elle n'est
// jamais remontée comme erreur.
func (b *Brouillon) PeutSoumettre() bool {
	return len(b.ChampsManquants()) == 0
}

// LignePayload est une ligne d'article de la charge utile de soumission
type LignePayload struct {
	CodeArticle string  `json:"item_code"`
	Quantite    float64 `json:"quantity"`
}

// Payload est la charge utile attendue par la soumission de commande
type Payload struct {
	SiteExpedition   string         `json:"site_expedition"`
	TypeLivraison    string         `json:"type_livraison"`
	ClientPayeur     string         `json:"client_payeur,omitempty"`
	ClientFacture    string         `json:"client_facture,omitempty"`
	ClientLivre      string         `json:"client_livre"`
	AdresseLivraison string         `json:"adresse_livraison,omitempty"`
	DateExpedition   string         `json:"date_expedition"`
	DateLivraison    string         `json:"date_livraison"`
	ModeLivraison    string         `json:"mode_livraison,omitempty"`
	Transporteur     string         `json:"transporteur,omitempty"`
	Lignes           []LignePayload `json:"lignes"`
}

// Payload produit la charge utile de soumission du brouillon.
// Les articles à quantité nulle sont écartés.
func (b *Brouillon) Payload() Payload {
	p := Payload{
		SiteExpedition:   b.SiteExpedition,
		TypeLivraison:    b.TypeLivraison,
		ClientPayeur:     b.ClientPayeur,
		ClientFacture:    b.ClientFacture,
		ClientLivre:      b.ClientLivre,
		AdresseLivraison: b.AdresseLivraison,
		DateExpedition:   b.DateExpedition,
		DateLivraison:    b.DateLivraison,
		ModeLivraison:    b.ModeLivraison,
		Transporteur:     b.Transporteur,
	}
	for _, a := range b.articles {
		if a.Quantite <= 0 {
			continue
		}
		p.Lignes = append(p.Lignes, LignePayload{CodeArticle: a.Code, Quantite: a.Quantite})
	}
	return p
}
