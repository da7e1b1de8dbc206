package session

import (
	"sync"

	"github.com/malicksy/pos-sagex3/internal/adapter/sagex3"
	"github.com/malicksy/pos-sagex3/internal/domain/livraison"
	"github.com/malicksy/pos-sagex3/internal/domain/panier"
)

// Session porte l'état d'un terminal de caisse : panier, client
// sélectionné, adresses, brouillon de livraison. Chaque champ n'a qu'un
// seul écrivain logique (le terminal), mais gin sert les requêtes en
// parallèle, d'où le verrou.
//
// Les rechargements déclenchés par un changement de champ (adresses du
// client livré, recherche catalogue) sont gardés par un compteur de
// génération : une réponse partie d'une valeur périmée du champ ne peut
// pas écraser l'état d'une valeur plus récente.
type Session struct {
	mu sync.Mutex

	Terminal string

	panier    *panier.Panier
	brouillon *livraison.Brouillon

	clientLivre   string
	clientFacture string
	devise        string
	regimeTaxe    sagex3.Reference

	adresses           []sagex3.Adresse
	adresseChoisie     string
	generationAdresses uint64

	generationRecherche uint64
}

// NewSession ouvre une session pour un terminal
func NewSession(terminal string) *Session {
	return &Session{
		Terminal: terminal,
		panier:   panier.NewPanier(),
	}
}

// AvecPanier exécute fn sous verrou avec le panier de la session
func (s *Session) AvecPanier(fn func(p *panier.Panier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.panier)
}

// LignesPanier retourne une copie des lignes du panier
func (s *Session) LignesPanier() []panier.Ligne {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panier.Instantane()
}

// TotauxPanier retourne les totaux courants du panier
func (s *Session) TotauxPanier() panier.Totaux {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panier.Totaux()
}

// ViderPanier vide le panier après encaissement
func (s *Session) ViderPanier() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panier.Vider()
}

// DefinirClientLivre change le client livré et invalide les adresses en
// cours : le compteur de génération retourné doit accompagner le
// rechargement asynchrone des adresses.
func (s *Session) DefinirClientLivre(code string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clientLivre = code
	s.adresses = nil
	s.adresseChoisie = ""
	s.generationAdresses++

	if s.brouillon != nil {
		s.brouillon.ClientLivre = code
		s.brouillon.AdresseLivraison = ""
	}
	return s.generationAdresses
}

// AppliquerAdresses installe le résultat d'un rechargement d'adresses.
// Une réponse périmée (le client a changé entre-temps) est écartée et la
// méthode retourne false. La première adresse retournée devient la
// sélection par défaut.
func (s *Session) AppliquerAdresses(generation uint64, adresses []sagex3.Adresse) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generationAdresses {
		return false
	}

	s.adresses = adresses
	s.adresseChoisie = ""
	if len(adresses) > 0 {
		s.adresseChoisie = adresses[0].Code
	}
	if s.brouillon != nil {
		s.brouillon.AdresseLivraison = s.adresseChoisie
	}
	return true
}

// ChoisirAdresse fixe l'adresse de livraison parmi celles chargées
func (s *Session) ChoisirAdresse(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.adresses {
		if a.Code == code {
			s.adresseChoisie = code
			if s.brouillon != nil {
				s.brouillon.AdresseLivraison = code
			}
			return
		}
	}
}

// Adresses retourne les adresses de livraison chargées et la sélection courante
func (s *Session) Adresses() ([]sagex3.Adresse, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copie := make([]sagex3.Adresse, len(s.adresses))
	copy(copie, s.adresses)
	return copie, s.adresseChoisie
}

// ClientLivre retourne le code du client livré
func (s *Session) ClientLivre() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clientLivre
}

// DefinirClientFacture fixe le tiers facturé résolu pour le client livré
func (s *Session) DefinirClientFacture(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientFacture = code
	if s.brouillon != nil {
		s.brouillon.ClientFacture = code
	}
}

// DefinirDevise fixe la devise applicable à la session
func (s *Session) DefinirDevise(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devise = code
}

// Devise retourne la devise applicable, ou une valeur par défaut
func (s *Session) Devise() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.devise == "" {
		return "XOF"
	}
	return s.devise
}

// DefinirRegimeTaxe fixe le régime de taxe du client livré
func (s *Session) DefinirRegimeTaxe(regime sagex3.Reference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regimeTaxe = regime
}

// RegimeTaxe retourne le régime de taxe courant
func (s *Session) RegimeTaxe() sagex3.Reference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regimeTaxe
}

// NouvelleRecherche invalide toute recherche catalogue en vol : une
// nouvelle saisie supplante la précédente, elle ne s'y enfile pas.
func (s *Session) NouvelleRecherche() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generationRecherche++
	return s.generationRecherche
}

// RechercheCourante vérifie qu'une recherche n'a pas été supplantée
func (s *Session) RechercheCourante(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return generation == s.generationRecherche
}

// OuvrirBrouillon ouvre un brouillon de livraison pour la session. Le
// brouillon reprend le client livré et l'adresse déjà sélectionnés.
func (s *Session) OuvrirBrouillon(siteExpedition string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := livraison.NewBrouillon(siteExpedition)
	b.ClientLivre = s.clientLivre
	b.ClientFacture = s.clientFacture
	b.AdresseLivraison = s.adresseChoisie
	s.brouillon = b
}

// AvecBrouillon exécute fn sous verrou avec le brouillon ouvert.
// Retourne ErrBrouillonFerme si aucun brouillon n'est ouvert.
func (s *Session) AvecBrouillon(fn func(b *livraison.Brouillon) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.brouillon == nil {
		return ErrBrouillonFerme
	}
	return fn(s.brouillon)
}

// FermerBrouillon abandonne le brouillon, après soumission ou annulation
func (s *Session) FermerBrouillon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brouillon = nil
}
