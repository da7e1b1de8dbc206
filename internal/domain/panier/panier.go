package panier

// Panier est le panier de caisse. Il conserve l'ordre d'ajout des lignes
// et détient ses lignes en propre : aucune référence partagée ne sort de
// ce paquet, seul Instantane expose une copie.
type Panier struct {
	lignes []Ligne
}

// NewPanier crée un panier vide
func NewPanier() *Panier {
	return &Panier{}
}

// Ajouter ajoute une quantité d'un article au panier. Si l'article y figure
// déjà, les quantités se cumulent sur la ligne existante.
func (p *Panier) Ajouter(ligne Ligne) error {
	if ligne.Quantite < 0 {
		return ErrQuantiteNegative
	}

	for i := range p.lignes {
		if p.lignes[i].ArticleCode == ligne.ArticleCode {
			p.lignes[i].Quantite += ligne.Quantite
			p.lignes[i].recalculer()
			return nil
		}
	}

	ligne.recalculer()
	p.lignes = append(p.lignes, ligne)
	return nil
}

// DefinirQuantite fixe la quantité d'une ligne existante.
// Une quantité nulle ou négative retire la ligne du panier.
func (p *Panier) DefinirQuantite(articleCode string, quantite int) error {
	for i := range p.lignes {
		if p.lignes[i].ArticleCode != articleCode {
			continue
		}
		if quantite <= 0 {
			p.lignes = append(p.lignes[:i], p.lignes[i+1:]...)
			return nil
		}
		p.lignes[i].Quantite = quantite
		p.lignes[i].recalculer()
		return nil
	}
	return ErrArticleInconnu
}

// Retirer supprime une ligne du panier
func (p *Panier) Retirer(articleCode string) error {
	return p.DefinirQuantite(articleCode, 0)
}

// Vider vide le panier
func (p *Panier) Vider() {
	p.lignes = nil
}

// EstVide vérifie si le panier ne contient aucune ligne
func (p *Panier) EstVide() bool {
	return len(p.lignes) == 0
}

// NombreLignes retourne le nombre de lignes du panier
func (p *Panier) NombreLignes() int {
	return len(p.lignes)
}

// NombreArticles retourne la quantité totale d'articles, toutes lignes confondues
func (p *Panier) NombreArticles() int {
	total := 0
	for i := range p.lignes {
		total += p.lignes[i].Quantite
	}
	return total
}

// Instantane retourne une copie profonde des lignes, dans l'ordre d'ajout.
// Les mutations ultérieures du panier n'affectent pas la copie.
func (p *Panier) Instantane() []Ligne {
	copie := make([]Ligne, len(p.lignes))
	copy(copie, p.lignes)
	return copie
}
