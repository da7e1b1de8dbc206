package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/sagex3"
	"github.com/malicksy/pos-sagex3/internal/domain/catalogue"
	"github.com/malicksy/pos-sagex3/internal/domain/panier"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
	"github.com/malicksy/pos-sagex3/internal/session"
	"github.com/malicksy/pos-sagex3/pkg/auth"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// CaisseController gère le panier et l'encaissement d'un terminal
type CaisseController struct {
	x3              *sagex3.Client
	sessions        *session.Registre
	transactionRepo transaction.Repository
	assembleur      *transaction.Assembleur
	magasin         string
	logger          logger.Logger
}

// NewCaisseController crée une nouvelle instance de CaisseController
func NewCaisseController(
	x3 *sagex3.Client,
	sessions *session.Registre,
	transactionRepo transaction.Repository,
	assembleur *transaction.Assembleur,
	magasin string,
	logger logger.Logger,
) *CaisseController {
	return &CaisseController{
		x3:              x3,
		sessions:        sessions,
		transactionRepo: transactionRepo,
		assembleur:      assembleur,
		magasin:         magasin,
		logger:          logger,
	}
}

// Panier retourne l'état courant du panier
// @Summary État du panier
// @Tags caisse
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.PanierResponse
// @Router /caisse/panier [get]
func (c *CaisseController) Panier(ctx *gin.Context) {
	s := c.sessions.Obtenir(auth.TerminalID(ctx))

	ctx.JSON(http.StatusOK, dto.PanierResponse{
		Lignes: s.LignesPanier(),
		Totaux: s.TotauxPanier(),
		Devise: s.Devise(),
	})
}

// AjouterArticle ajoute un article au panier, tarifé pour le client de la
// session. En mode dégradé la ligne est tarifée au prix de base local.
// @Summary Ajouter un article au panier
// @Tags caisse
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param ligne body dto.LignePanierRequest true "Article et quantité"
// @Success 200 {object} dto.PanierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /caisse/panier [post]
func (c *CaisseController) AjouterArticle(ctx *gin.Context) {
	var req dto.LignePanierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}
	if req.Quantite <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "quantité invalide", "la quantité doit être positive"))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))

	liste := c.x3.Articles(ctx.Request.Context(), c.x3.Dossier())
	var article *catalogue.Article
	for i := range liste.Donnees {
		if liste.Donnees[i].Code == req.CodeArticle {
			article = &liste.Donnees[i]
			break
		}
	}
	if article == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "article inconnu", req.CodeArticle))
		return
	}

	// Tarification pour le client de la session
	prix := c.x3.CalculerPrix(ctx.Request.Context(),
		[]sagex3.DemandePrix{{
			CodeArticle: req.CodeArticle,
			Quantite:    float64(req.Quantite),
			CodeClient:  s.ClientLivre(),
			Devise:      s.Devise(),
			Unite:       article.Unite,
		}},
		map[string]float64{req.CodeArticle: article.PrixBase})

	ligne := panier.Ligne{
		ArticleCode: req.CodeArticle,
		Designation: article.Designation,
		Unite:       article.Unite,
		Quantite:    req.Quantite,
	}
	if len(prix.Donnees) > 0 {
		ligne.PrixUnitaireHT = prix.Donnees[0].PrixHT
		ligne.PrixUnitaireTTC = prix.Donnees[0].PrixTTC
		ligne.PrixValorisation = prix.Donnees[0].Valorisation
	}

	if err := s.AvecPanier(func(p *panier.Panier) error {
		return p.Ajouter(ligne)
	}); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ajout impossible", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.PanierResponse{
		Lignes: s.LignesPanier(),
		Totaux: s.TotauxPanier(),
		Devise: s.Devise(),
	})
}

// DefinirQuantite fixe la quantité d'une ligne du panier.
// Une quantité nulle ou négative retire la ligne.
// @Summary Changer la quantité d'une ligne
// @Tags caisse
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param code path string true "Code article"
// @Param quantite body dto.QuantiteRequest true "Nouvelle quantité"
// @Success 200 {object} dto.PanierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /caisse/panier/{code} [patch]
func (c *CaisseController) DefinirQuantite(ctx *gin.Context) {
	var req dto.QuantiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	err := s.AvecPanier(func(p *panier.Panier) error {
		return p.DefinirQuantite(ctx.Param("code"), req.Quantite)
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "ligne introuvable", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.PanierResponse{
		Lignes: s.LignesPanier(),
		Totaux: s.TotauxPanier(),
		Devise: s.Devise(),
	})
}

// ViderPanier vide le panier du terminal
// @Summary Vider le panier
// @Tags caisse
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Router /caisse/panier [delete]
func (c *CaisseController) ViderPanier(ctx *gin.Context) {
	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	s.ViderPanier()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("panier vidé", nil))
}

// DefinirClientLivre change le client livré de la session et recharge ses
// adresses de livraison, son tiers facturé, son régime de taxe et sa
// devise. Le rechargement d'adresses est gardé contre les réponses
// périmées : si le client change encore pendant l'appel, le résultat est
// jeté.
// @Summary Changer le client livré
// @Tags caisse
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientLivreRequest true "Code du client livré"
// @Success 200 {object} dto.AdressesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /caisse/client [put]
func (c *CaisseController) DefinirClientLivre(ctx *gin.Context) {
	var req dto.ClientLivreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	generation := s.DefinirClientLivre(req.CodeClient)

	adresses := c.x3.AdressesLivraison(ctx.Request.Context(), req.CodeClient)
	if !s.AppliquerAdresses(generation, adresses.Donnees) {
		c.logger.Debug("rechargement d'adresses périmé écarté", "client", req.CodeClient)
	}

	// Dépendances secondaires du changement de client, au mieux
	if facture := c.x3.ClientFacture(ctx.Request.Context(), req.CodeClient); facture.Succes {
		s.DefinirClientFacture(facture.Donnees.Code)
	}
	if regime := c.x3.RegimeTaxe(ctx.Request.Context(), req.CodeClient); regime.Succes {
		s.DefinirRegimeTaxe(regime.Donnees)
	}
	if devise := c.x3.DeviseClient(ctx.Request.Context(), req.CodeClient); devise.Succes && !devise.Local {
		s.DefinirDevise(devise.Donnees)
	}

	chargees, choisie := s.Adresses()
	ctx.JSON(http.StatusOK, dto.AdressesResponse{
		Adresses: chargees,
		Choisie:  choisie,
		Local:    adresses.Local,
	})
}

// Adresses retourne les adresses de livraison chargées pour la session
// @Summary Adresses de livraison de la session
// @Tags caisse
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.AdressesResponse
// @Router /caisse/adresses [get]
func (c *CaisseController) Adresses(ctx *gin.Context) {
	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	chargees, choisie := s.Adresses()
	ctx.JSON(http.StatusOK, dto.AdressesResponse{Adresses: chargees, Choisie: choisie})
}

// ChoisirAdresse fixe l'adresse de livraison de la session
// @Summary Choisir une adresse de livraison
// @Tags caisse
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param adresse body dto.AdresseRequest true "Code adresse"
// @Success 200 {object} dto.AdressesResponse
// @Router /caisse/adresse [put]
func (c *CaisseController) ChoisirAdresse(ctx *gin.Context) {
	var req dto.AdresseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	s.ChoisirAdresse(req.Code)

	chargees, choisie := s.Adresses()
	ctx.JSON(http.StatusOK, dto.AdressesResponse{Adresses: chargees, Choisie: choisie})
}

// Encaisser fige le panier en transaction, soumet le paiement et
// journalise le résultat. Un panier vide n'est pas encaissable. Si le
// processeur de paiement est injoignable, le règlement est approuvé
// localement et signalé comme tel.
// @Summary Encaisser le panier
// @Tags caisse
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param encaissement body dto.EncaissementRequest true "Mode de paiement"
// @Success 201 {object} dto.EncaissementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 402 {object} dto.EncaissementResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /caisse/encaissement [post]
func (c *CaisseController) Encaisser(ctx *gin.Context) {
	var req dto.EncaissementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	terminal := auth.TerminalID(ctx)
	s := c.sessions.Obtenir(terminal)

	codeClient := req.CodeClient
	if codeClient == "" {
		codeClient = s.ClientLivre()
	}

	recu := transaction.Recu{
		Magasin:  c.magasin,
		Caissier: ctx.GetString("caissier_nom"),
		Terminal: terminal,
		Devise:   s.Devise(),
	}

	var tx *transaction.Transaction
	var ok bool
	_ = s.AvecPanier(func(p *panier.Panier) error {
		tx, ok = c.assembleur.Assembler(p, transaction.ModePaiement(req.ModePaiement), codeClient, recu)
		return nil
	})
	if !ok {
		if !transaction.ModePaiementValide(transaction.ModePaiement(req.ModePaiement)) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "mode de paiement invalide", req.ModePaiement))
			return
		}
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "panier vide", "rien à encaisser"))
		return
	}

	paiement := c.x3.TraiterPaiement(ctx.Request.Context(), sagex3.DemandePaiement{
		Montant:   tx.Totaux.Total,
		Mode:      req.ModePaiement,
		Devise:    s.Devise(),
		Reference: tx.ID,
	})

	if paiement.Donnees.Autorise {
		if err := tx.Confirmer(c.assembleur.HorodatageAuPaiement); err != nil {
			c.logger.Error("transition de statut impossible", "transaction", tx.ID, "error", err)
		}
	} else {
		_ = tx.Echouer()
	}

	if err := c.transactionRepo.Create(ctx, tx); err != nil {
		c.logger.Error("journalisation de la transaction impossible", "transaction", tx.ID, "error", err)
	}

	if tx.Statut != transaction.StatutValidee {
		// Paiement refusé : le panier reste à l'écran pour une nouvelle tentative
		ctx.JSON(http.StatusPaymentRequired, dto.EncaissementResponse{Transaction: tx})
		return
	}

	s.ViderPanier()
	ctx.JSON(http.StatusCreated, dto.EncaissementResponse{
		Transaction:   tx,
		Ticket:        transaction.Ticket(tx),
		PaiementLocal: paiement.Local,
	})
}
