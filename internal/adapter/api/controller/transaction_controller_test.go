package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/repository"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

func newRouteurTransactions(t *testing.T) (*gin.Engine, *repository.MemoireTransactionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoireTransactionRepository()
	transactionController := NewTransactionController(repo, logger.NewLogger())

	router := gin.New()
	router.GET("/transactions/:id", transactionController.GetByID)
	router.PATCH("/transactions/:id/statut", transactionController.UpdateStatut)
	return router, repo
}

func TestUpdateStatutRapprochement(t *testing.T) {
	router, repo := newRouteurTransactions(t)

	// Encaissement hors ligne : le paiement reste à confirmer au
	// rapprochement avec le backend
	tx := &transaction.Transaction{
		ID:           "TX-TEST-1",
		ModePaiement: transaction.ModeEspeces,
		Statut:       transaction.StatutEnAttente,
		Horodatage:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), tx))

	w := requeteJSON(t, router, http.MethodPatch, "/transactions/TX-TEST-1/statut",
		dto.StatutRequest{Statut: "validee"})
	require.Equal(t, http.StatusOK, w.Code)

	var reponse transaction.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reponse))
	assert.Equal(t, transaction.StatutValidee, reponse.Statut)

	relue, err := repo.FindByID(context.Background(), "TX-TEST-1")
	require.NoError(t, err)
	assert.Equal(t, transaction.StatutValidee, relue.Statut)
}

func TestUpdateStatutInconnu(t *testing.T) {
	router, repo := newRouteurTransactions(t)

	tx := &transaction.Transaction{ID: "TX-TEST-2", Statut: transaction.StatutEnAttente}
	require.NoError(t, repo.Create(context.Background(), tx))

	w := requeteJSON(t, router, http.MethodPatch, "/transactions/TX-TEST-2/statut",
		dto.StatutRequest{Statut: "annulee"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatutTransactionIntrouvable(t *testing.T) {
	router, _ := newRouteurTransactions(t)

	w := requeteJSON(t, router, http.MethodPatch, "/transactions/TX-ABSENT/statut",
		dto.StatutRequest{Statut: "validee"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
