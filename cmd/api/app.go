package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/malicksy/pos-sagex3/docs"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/controller"
	"github.com/malicksy/pos-sagex3/internal/adapter/repository"
	"github.com/malicksy/pos-sagex3/internal/adapter/sagex3"
	"github.com/malicksy/pos-sagex3/internal/domain/caissier"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
	"github.com/malicksy/pos-sagex3/internal/infrastructure/database"
	"github.com/malicksy/pos-sagex3/internal/session"
	"github.com/malicksy/pos-sagex3/pkg/auth"
	"github.com/malicksy/pos-sagex3/pkg/logger"
	"github.com/malicksy/pos-sagex3/pkg/requestid"
)

// App représente l'application et ses dépendances
type App struct {
	router                *gin.Engine
	db                    *pgxpool.Pool
	logger                logger.Logger
	x3                    *sagex3.Client
	sessions              *session.Registre
	authController        *controller.AuthController
	catalogueController   *controller.CatalogueController
	referenceController   *controller.ReferenceController
	caisseController      *controller.CaisseController
	livraisonController   *controller.LivraisonController
	transactionController *controller.TransactionController
}

// NewApp crée une nouvelle instance de l'application
func NewApp() *App {
	log := logger.NewLogger()

	// Client du backend Sage X3
	x3 := sagex3.NewClient(sagex3.NewConfigFromEnv(), log)

	// Sessions de terminal
	sessions := session.NewRegistre()

	// Journal des transactions, PostgreSQL ou mémoire en mode hors ligne
	var db *pgxpool.Pool
	var transactionRepo transaction.Repository
	var caissierRepo caissier.Repository

	db, err := database.NewPostgresDB()
	if err != nil {
		log.Warn("base de données injoignable, journal en mémoire", "error", err)
		transactionRepo = repository.NewMemoireTransactionRepository()
		memoire := repository.NewMemoireCaissierRepository()
		// Sans base, le dépôt mémoire démarre vide : un gérant de secours
		// est amorcé pour que la caisse reste utilisable hors ligne
		if err := repository.AmorcerGerantSecours(memoire, getEnv("POS_PIN_SECOURS", "0000")); err != nil {
			log.Error("amorçage du gérant de secours impossible", "error", err)
		}
		caissierRepo = memoire
	} else {
		transactionRepo = repository.NewTransactionRepository(db)
		caissierRepo = repository.NewCaissierRepository(db)
	}

	assembleur := &transaction.Assembleur{
		HorodatageAuPaiement: os.Getenv("POS_HORODATAGE_PAIEMENT") == "true",
	}
	magasin := getEnv("POS_MAGASIN", "MAGASIN")

	authController := controller.NewAuthController(caissierRepo, log)
	catalogueController := controller.NewCatalogueController(x3, sessions, log)
	referenceController := controller.NewReferenceController(x3, log)
	caisseController := controller.NewCaisseController(x3, sessions, transactionRepo, assembleur, magasin, log)
	livraisonController := controller.NewLivraisonController(x3, sessions, log)
	transactionController := controller.NewTransactionController(transactionRepo, log)

	router := gin.Default()
	router.Use(requestid.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnv("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", auth.HeaderTerminal, requestid.HeaderRequestID},
		ExposeHeaders:    []string{requestid.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:                router,
		db:                    db,
		logger:                log,
		x3:                    x3,
		sessions:              sessions,
		authController:        authController,
		catalogueController:   catalogueController,
		referenceController:   referenceController,
		caisseController:      caisseController,
		livraisonController:   livraisonController,
		transactionController: transactionController,
	}
}

// SetupRoutes configure les routes de l'application
func (a *App) SetupRoutes() {
	api := a.router.Group("/api/v1")

	// État de santé, relaie celui du backend
	api.GET("/health", func(c *gin.Context) {
		sante := a.x3.Sante(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"backend": sante.Donnees.Statut,
			"local":   sante.Local,
		})
	})

	// Documentation Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentification des caissiers
	api.POST("/auth/login", a.authController.Login)
	api.POST("/auth/refresh", a.authController.Refresh)

	// Routes protégées par le token caissier
	protege := api.Group("")
	protege.Use(auth.Middleware())

	catalogue := protege.Group("/catalogue")
	{
		catalogue.GET("/articles", a.catalogueController.Lister)
		catalogue.GET("/articles/recherche", a.catalogueController.Rechercher)
	}

	references := protege.Group("/references")
	{
		references.GET("/clients", a.referenceController.Clients)
		references.GET("/sites-vente", a.referenceController.SitesVente)
		references.GET("/adresses-expedition", a.referenceController.AdressesExpedition)
		references.GET("/types-commande", a.referenceController.TypesCommande)
		references.GET("/modes-livraison", a.referenceController.ModesLivraison)
		references.GET("/transporteurs", a.referenceController.Transporteurs)
		references.GET("/regime-taxe", a.referenceController.RegimeTaxe)
		references.GET("/conditions-facturation", a.referenceController.ConditionsFacturation)
		references.GET("/taxes-appliquees", a.referenceController.TaxesAppliquees)
		references.POST("/synchronisation", a.referenceController.Synchroniser)
	}

	caisse := protege.Group("/caisse")
	{
		caisse.GET("/panier", a.caisseController.Panier)
		caisse.POST("/panier", a.caisseController.AjouterArticle)
		caisse.PATCH("/panier/:code", a.caisseController.DefinirQuantite)
		caisse.DELETE("/panier", a.caisseController.ViderPanier)
		caisse.PUT("/client", a.caisseController.DefinirClientLivre)
		caisse.GET("/adresses", a.caisseController.Adresses)
		caisse.PUT("/adresse", a.caisseController.ChoisirAdresse)
		caisse.POST("/encaissement", a.caisseController.Encaisser)
	}

	livraison := protege.Group("/livraison")
	{
		livraison.POST("/brouillon", a.livraisonController.Ouvrir)
		livraison.GET("/brouillon", a.livraisonController.Etat)
		livraison.PATCH("/brouillon", a.livraisonController.DefinirChamps)
		livraison.DELETE("/brouillon", a.livraisonController.Annuler)
		livraison.POST("/brouillon/articles", a.livraisonController.Selectionner)
		livraison.POST("/brouillon/articles/tout", a.livraisonController.ToutAjouter)
		livraison.PATCH("/brouillon/articles/:code", a.livraisonController.DefinirQuantite)
		livraison.DELETE("/brouillon/articles/:code", a.livraisonController.Deselectionner)
		livraison.POST("/brouillon/soumission", a.livraisonController.Soumettre)
	}

	transactions := protege.Group("/transactions")
	{
		transactions.GET("", a.transactionController.List)
		transactions.GET("/:id", a.transactionController.GetByID)
		transactions.GET("/:id/ticket", a.transactionController.Ticket)
		transactions.PATCH("/:id/statut", a.transactionController.UpdateStatut)
	}
}

// Start démarre le serveur HTTP
func (a *App) Start() error {
	a.SetupRoutes()

	port := getEnv("PORT", "8080")
	a.logger.Info("serveur démarré", "port", port)
	return a.router.Run(":" + port)
}

// Close libère les ressources de l'application
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// getEnv retourne la valeur d'une variable d'environnement ou une valeur par défaut
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
