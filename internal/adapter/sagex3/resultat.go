package sagex3

// Resultat enveloppe toute réponse du backend. Les échecs réseau ne se
// propagent jamais en erreur Go : la caisse doit rester utilisable hors
// ligne, l'appelant ne branche que sur Succes et Local.
type Resultat[T any] struct {
	Donnees T      `json:"donnees"`
	Succes  bool   `json:"succes"`
	Local   bool   `json:"local"` // Données servies localement (cache ou secours)
	Erreur  string `json:"erreur,omitempty"`
}

// distant construit un résultat issu du backend
func distant[T any](donnees T) Resultat[T] {
	return Resultat[T]{Donnees: donnees, Succes: true}
}

// local construit un résultat de secours : l'appel a échoué mais des
// données locales permettent de continuer
func local[T any](donnees T, err error) Resultat[T] {
	r := Resultat[T]{Donnees: donnees, Succes: true, Local: true}
	if err != nil {
		r.Erreur = err.Error()
	}
	return r
}

// echec construit un résultat sans données exploitables
func echec[T any](err error) Resultat[T] {
	r := Resultat[T]{}
	if err != nil {
		r.Erreur = err.Error()
	}
	return r
}
