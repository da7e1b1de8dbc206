package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Charger les variables d'environnement
	if err := godotenv.Load(); err != nil {
		log.Printf("Avertissement: fichier .env introuvable: %v", err)
	}

	app := NewApp()
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("Erreur au démarrage du serveur: %v", err)
	}
}
