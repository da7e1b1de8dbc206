package session

import (
	"errors"
	"sync"
)

// ErrBrouillonFerme est retourné quand aucun brouillon de livraison n'est ouvert
var ErrBrouillonFerme = errors.New("aucun brouillon de livraison ouvert")

// Registre tient les sessions de caisse par terminal
type Registre struct {
	mu          sync.Mutex
	parTerminal map[string]*Session
}

// NewRegistre crée un registre de sessions vide
func NewRegistre() *Registre {
	return &Registre{
		parTerminal: make(map[string]*Session),
	}
}

// Obtenir retourne la session d'un terminal, en l'ouvrant au besoin
func (r *Registre) Obtenir(terminal string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.parTerminal[terminal]; ok {
		return s
	}
	s := NewSession(terminal)
	r.parTerminal[terminal] = s
	return s
}

// Fermer supprime la session d'un terminal
func (r *Registre) Fermer(terminal string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parTerminal, terminal)
}
