package transaction

import (
	"fmt"
	"strings"

	"github.com/malicksy/pos-sagex3/internal/domain/catalogue"
)

const largeurTicket = 40

// Ticket rend une transaction sous forme de ticket de caisse texte,
// montants formatés dans la devise du reçu
func Ticket(t *Transaction) string {
	var b strings.Builder
	devise := t.Recu.Devise

	ligneCentree(&b, t.Recu.Magasin)
	ligneCentree(&b, fmt.Sprintf("Terminal %s - %s", t.Recu.Terminal, t.Recu.Caissier))
	ligneCentree(&b, t.Horodatage.Format("02/01/2006 15:04"))
	separateur(&b)

	for i := range t.Lignes {
		l := &t.Lignes[i]
		b.WriteString(fmt.Sprintf("%s\n", l.Designation))
		b.WriteString(fmt.Sprintf("  %d x %s%s\n",
			l.Quantite,
			catalogue.Formater(l.PrixUnitaireTTC, devise),
			alignerDroite(catalogue.Formater(l.TotalTTC, devise), largeurTicket-16-len(fmt.Sprintf("%d", l.Quantite)))))
	}

	separateur(&b)
	b.WriteString(fmt.Sprintf("Sous-total HT %s\n", alignerDroite(catalogue.Formater(t.Totaux.SousTotalHT, devise), largeurTicket-14)))
	b.WriteString(fmt.Sprintf("Taxe %s\n", alignerDroite(catalogue.Formater(t.Totaux.Taxe, devise), largeurTicket-5)))
	b.WriteString(fmt.Sprintf("TOTAL %s\n", alignerDroite(catalogue.Formater(t.Totaux.Total, devise), largeurTicket-6)))
	separateur(&b)
	ligneCentree(&b, fmt.Sprintf("Paiement : %s", t.ModePaiement))
	ligneCentree(&b, t.ID)

	return b.String()
}

func separateur(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", largeurTicket) + "\n")
}

func ligneCentree(b *strings.Builder, s string) {
	if len(s) >= largeurTicket {
		b.WriteString(s + "\n")
		return
	}
	marge := (largeurTicket - len(s)) / 2
	b.WriteString(strings.Repeat(" ", marge) + s + "\n")
}

func alignerDroite(s string, largeur int) string {
	if largeur <= len(s) {
		return s
	}
	return strings.Repeat(" ", largeur-len(s)) + s
}
