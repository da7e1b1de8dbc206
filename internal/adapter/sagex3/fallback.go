package sagex3

import "github.com/malicksy/pos-sagex3/internal/domain/catalogue"

// Données de secours embarquées : le strict nécessaire pour que la caisse
// reste utilisable quand le backend et le cache sont tous deux vides.

const deviseSecours = "XOF"

func articlesSecours() []catalogue.Article {
	return []catalogue.Article{
		{Code: "ART-EAU-150", Designation: "Eau minérale 1.5L", PrixBase: 500, Categorie: "Boissons", Stock: 200, Unite: "UN"},
		{Code: "ART-RIZ-25", Designation: "Riz parfumé 25kg", PrixBase: 14500, Categorie: "Épicerie", Stock: 80, Unite: "UN"},
		{Code: "ART-HUI-5", Designation: "Huile végétale 5L", PrixBase: 7000, Categorie: "Épicerie", Stock: 60, Unite: "UN"},
		{Code: "ART-SUC-1", Designation: "Sucre en poudre 1kg", PrixBase: 800, Categorie: "Épicerie", Stock: 150, Unite: "UN"},
		{Code: "ART-LAI-400", Designation: "Lait en poudre 400g", PrixBase: 2500, Categorie: "Crèmerie", Stock: 90, Unite: "UN"},
	}
}

func clientsSecours() []Tiers {
	return []Tiers{
		{Code: "DIVERS", Nom: "Client de passage", Devise: deviseSecours},
	}
}

func sitesVenteSecours() []Adresse {
	return []Adresse{
		{Code: "SIEGE", Intitule: "Site principal", ParDefaut: true},
	}
}

func typesCommandeSecours() []Reference {
	return []Reference{
		{Code: "SON", Libelle: "Commande de vente"},
		{Code: "SDN", Libelle: "Bon de livraison"},
	}
}

func modesLivraisonSecours() []Reference {
	return []Reference{
		{Code: "STD", Libelle: "Livraison standard"},
		{Code: "EXP", Libelle: "Enlèvement sur place"},
	}
}

func transporteursSecours() []Reference {
	return []Reference{
		{Code: "INT", Libelle: "Transport interne"},
	}
}

func regimeTaxeSecours() Reference {
	return Reference{Code: "NAT", Libelle: "Régime national"}
}

func conditionsFacturationSecours() ConditionsFacturation {
	return ConditionsFacturation{
		ConditionPaiement: "COMPTANT",
	}
}
