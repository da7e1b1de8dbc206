package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/malicksy/pos-sagex3/internal/adapter/repository"
	"github.com/malicksy/pos-sagex3/internal/domain/caissier"
	"github.com/malicksy/pos-sagex3/internal/infrastructure/database"
)

func main() {
	// Charger les variables d'environnement
	if err := godotenv.Load(); err != nil {
		log.Printf("Avertissement: fichier .env introuvable: %v", err)
	}

	// Appliquer les migrations du schéma
	if err := database.RunMigrations("migrations"); err != nil {
		log.Fatalf("Erreur lors des migrations: %v", err)
	}
	log.Println("Migrations appliquées avec succès")

	// Amorcer un caissier gérant si la table est vide
	if err := seedCaissier(); err != nil {
		log.Fatalf("Erreur lors de l'amorçage du caissier: %v", err)
	}
}

func seedCaissier() error {
	db, err := database.NewPostgresDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := repository.NewCaissierRepository(db)
	if _, err := repo.FindByCode(ctx, "ADMIN"); err == nil {
		log.Println("Caissier ADMIN déjà présent, amorçage ignoré")
		return nil
	}

	admin, err := caissier.NewCaissier("ADMIN", "Administrateur", caissier.RoleGerant)
	if err != nil {
		return err
	}
	if err := admin.DefinirPin("0000"); err != nil {
		return err
	}

	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Println("Caissier ADMIN créé (PIN par défaut à changer)")
	return nil
}
