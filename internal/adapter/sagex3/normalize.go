package sagex3

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/malicksy/pos-sagex3/internal/domain/catalogue"
)

// Les réponses du backend sont irrégulières : champs absents, noms qui
// varient d'un endpoint à l'autre (jusqu'à la faute "describtion"),
// nombres parfois encodés en chaînes. Tout est canonisé ici, à la
// frontière ; rien au-delà de ce paquet ne voit les formes brutes.

// nombre accepte un nombre JSON ou une chaîne numérique
type nombre float64

// UnmarshalJSON implémente json.Unmarshaler
func (n *nombre) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = nombre(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = nombre(f)
	return nil
}

// premier retourne le premier candidat non vide
func premier(candidats ...string) string {
	for _, c := range candidats {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return ""
}

// articleBrut est la forme brute d'un article côté backend
type articleBrut struct {
	ItemCode    string `json:"item_code"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Describtion string `json:"describtion"` // Faute récurrente côté backend
	Designation string `json:"designation"`
	BasePrice   nombre `json:"base_price"`
	Prix        nombre `json:"prix"`
	Category    string `json:"category"`
	Categorie   string `json:"categorie"`
	Stock       nombre `json:"stock"`
	Disponible  nombre `json:"quantite_disponible"`
	Unite       string `json:"unit_of_measure"`
	UniteVente  string `json:"unite_vente"`
	Barcode     string `json:"barcode"`
	Image       string `json:"image"`
}

// normaliser produit l'article canonique
func (a articleBrut) normaliser() catalogue.Article {
	prix := float64(a.BasePrice)
	if prix == 0 {
		prix = float64(a.Prix)
	}
	stock := float64(a.Stock)
	if stock == 0 {
		stock = float64(a.Disponible)
	}
	return catalogue.Article{
		Code:        premier(a.ItemCode, a.Code),
		Designation: premier(a.Description, a.Describtion, a.Designation),
		PrixBase:    prix,
		Categorie:   premier(a.Category, a.Categorie),
		Stock:       stock,
		Unite:       premier(a.Unite, a.UniteVente),
		CodeBarre:   a.Barcode,
		Image:       a.Image,
	}
}

func normaliserArticles(bruts []articleBrut) []catalogue.Article {
	articles := make([]catalogue.Article, 0, len(bruts))
	for _, b := range bruts {
		a := b.normaliser()
		if a.Code == "" {
			continue
		}
		articles = append(articles, a)
	}
	return articles
}

// tiersBrut est la forme brute d'un client côté backend
type tiersBrut struct {
	CustomerCode string `json:"customer_code"`
	CodeClient   string `json:"code_client"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Nom          string `json:"nom"`
	RaisonSocial string `json:"raison_sociale"`
	City         string `json:"city"`
	Ville        string `json:"ville"`
	Phone        string `json:"phone"`
	Telephone    string `json:"telephone"`
	Email        string `json:"email"`
	Currency     string `json:"currency"`
	Devise       string `json:"devise"`
}

func (t tiersBrut) normaliser() Tiers {
	return Tiers{
		Code:      premier(t.CustomerCode, t.CodeClient, t.Code),
		Nom:       premier(t.Name, t.Nom, t.RaisonSocial),
		Ville:     premier(t.City, t.Ville),
		Telephone: premier(t.Phone, t.Telephone),
		Email:     t.Email,
		Devise:    premier(t.Currency, t.Devise),
	}
}

func normaliserTiers(bruts []tiersBrut) []Tiers {
	tiers := make([]Tiers, 0, len(bruts))
	for _, b := range bruts {
		t := b.normaliser()
		if t.Code == "" {
			continue
		}
		tiers = append(tiers, t)
	}
	return tiers
}

// adresseBrute est la forme brute d'une adresse côté backend
type adresseBrute struct {
	Code      string `json:"code"`
	CodeAdr   string `json:"code_adresse"`
	Intitule  string `json:"intitule"`
	Name      string `json:"name"`
	Ville     string `json:"ville"`
	City      string `json:"city"`
	Pays      string `json:"pays"`
	Country   string `json:"country"`
	ParDefaut bool   `json:"par_defaut"`
}

func (a adresseBrute) normaliser() Adresse {
	return Adresse{
		Code:      premier(a.Code, a.CodeAdr),
		Intitule:  premier(a.Intitule, a.Name),
		Ville:     premier(a.Ville, a.City),
		Pays:      premier(a.Pays, a.Country),
		ParDefaut: a.ParDefaut,
	}
}

func normaliserAdresses(bruts []adresseBrute) []Adresse {
	adresses := make([]Adresse, 0, len(bruts))
	for _, b := range bruts {
		a := b.normaliser()
		if a.Code == "" {
			continue
		}
		adresses = append(adresses, a)
	}
	return adresses
}

// referenceBrute est la forme brute d'une entrée de liste de référence
type referenceBrute struct {
	Code        string `json:"code"`
	Valeur      string `json:"valeur"`
	Libelle     string `json:"libelle"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Describtion string `json:"describtion"`
}

func (r referenceBrute) normaliser() Reference {
	return Reference{
		Code:    premier(r.Code, r.Valeur),
		Libelle: premier(r.Libelle, r.Label, r.Description, r.Describtion, r.Code),
	}
}

func normaliserReferences(bruts []referenceBrute) []Reference {
	refs := make([]Reference, 0, len(bruts))
	for _, b := range bruts {
		r := b.normaliser()
		if r.Code == "" {
			continue
		}
		refs = append(refs, r)
	}
	return refs
}

// prixBrut est la forme brute d'une ligne de tarification
type prixBrut struct {
	ItemCode     string `json:"item_code"`
	Code         string `json:"code"`
	PrixHT       nombre `json:"prix_ht"`
	PriceExclTax nombre `json:"price_excl_tax"`
	PrixTTC      nombre `json:"prix_ttc"`
	PriceInclTax nombre `json:"price_incl_tax"`
	Valorisation nombre `json:"prix_valorisation"`
}

func (p prixBrut) normaliser() PrixArticle {
	ht := float64(p.PrixHT)
	if ht == 0 {
		ht = float64(p.PriceExclTax)
	}
	ttc := float64(p.PrixTTC)
	if ttc == 0 {
		ttc = float64(p.PriceInclTax)
	}
	if ttc == 0 {
		ttc = ht
	}
	return PrixArticle{
		CodeArticle:  premier(p.ItemCode, p.Code),
		PrixHT:       ht,
		PrixTTC:      ttc,
		Valorisation: float64(p.Valorisation),
	}
}
