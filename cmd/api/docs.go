package main

// @title           POS Sage X3 API
// @version         1.0
// @description     Passerelle de caisse et de livraison pour un backend Sage X3

// @contact.name   Support API
// @contact.email  support@pos-sagex3.local

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description En-tête d'authentification JWT au format Bearer. Exemple: "Bearer {token}"
