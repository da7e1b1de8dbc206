package sagex3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// Budgets d'expiration par criticité d'endpoint. Un dépassement bascule
// sur les données locales, il n'interrompt jamais le flux de caisse.
const (
	TimeoutSante      = 3 * time.Second
	TimeoutReferences = 5 * time.Second
	TimeoutCatalogue  = 10 * time.Second
	TimeoutTarifs     = 15 * time.Second
	TimeoutCommande   = 20 * time.Second
)

// Config contient la configuration du connecteur Sage X3
type Config struct {
	BaseURL  string        // Origine du backend REST
	Dossier  string        // Dossier / site X3 par défaut
	CacheTTL time.Duration // Durée de rétention des dernières bonnes réponses
}

// NewConfigFromEnv crée une configuration à partir des variables d'environnement
func NewConfigFromEnv() Config {
	ttl, err := strconv.Atoi(getEnv("SAGEX3_CACHE_TTL", "900"))
	if err != nil || ttl <= 0 {
		ttl = 900
	}

	return Config{
		BaseURL:  getEnv("SAGEX3_BASE_URL", "http://localhost:8000"),
		Dossier:  getEnv("SAGEX3_FOLDER", ""),
		CacheTTL: time.Duration(ttl) * time.Second,
	}
}

// Client est le connecteur HTTP vers le backend Sage X3. Chaque appel
// retourne un Resultat : en cas d'échec réseau, de réponse non-2xx ou de
// JSON invalide, la dernière bonne réponse en cache puis les données de
// secours embarquées prennent le relais.
type Client struct {
	baseURL    string
	dossier    string
	httpClient *http.Client
	cache      *gocache.Cache
	log        logger.Logger
}

// NewClient crée un connecteur Sage X3
func NewClient(cfg Config, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		dossier: cfg.Dossier,
		// Le délai est porté par le contexte de chaque appel
		httpClient: &http.Client{},
		cache:      gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		log:        log,
	}
}

// Dossier retourne le dossier X3 par défaut du connecteur
func (c *Client) Dossier() string {
	return c.dossier
}

// get exécute un GET JSON avec le budget de temps donné
func (c *Client) get(ctx context.Context, chemin string, query url.Values, timeout time.Duration, cible interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.baseURL + chemin
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("préparation de la requête %s: %w", chemin, err)
	}
	req.Header.Set("Accept", "application/json")

	return c.executer(req, chemin, cible)
}

// post exécute un POST JSON avec le budget de temps donné
func (c *Client) post(ctx context.Context, chemin string, corps interface{}, timeout time.Duration, cible interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	donnees, err := json.Marshal(corps)
	if err != nil {
		return fmt.Errorf("sérialisation du corps %s: %w", chemin, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chemin, bytes.NewReader(donnees))
	if err != nil {
		return fmt.Errorf("préparation de la requête %s: %w", chemin, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.executer(req, chemin, cible)
}

func (c *Client) executer(req *http.Request, chemin string, cible interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("appel %s: %w", chemin, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("appel %s: statut %d", chemin, resp.StatusCode)
	}

	if cible == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(cible); err != nil {
		// Réponse partielle ou malformée : même traitement qu'une indisponibilité
		return fmt.Errorf("décodage de la réponse %s: %w", chemin, err)
	}
	return nil
}

// lireAvecSecours encapsule le schéma de repli des lectures : backend,
// puis dernière bonne réponse en cache, puis données de secours.
func lireAvecSecours[T any](c *Client, cle string, appel func() (T, error), secours func() T) Resultat[T] {
	donnees, err := appel()
	if err == nil {
		c.cache.SetDefault(cle, donnees)
		return distant(donnees)
	}

	c.log.Warn("backend indisponible, repli sur les données locales", "cle", cle, "erreur", err)

	if enCache, ok := c.cache.Get(cle); ok {
		if valeurs, ok := enCache.(T); ok {
			return local(valeurs, err)
		}
	}
	return local(secours(), err)
}

// getEnv retourne la valeur d'une variable d'environnement ou une valeur par défaut
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
