package dto

// ErrorResponse représente la structure de réponse pour les erreurs
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse représente la structure de réponse pour les opérations réussies
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ProxyResponse enveloppe une donnée relayée depuis le backend Sage X3.
// Local signale des données servies en mode dégradé ; l'avertissement est
// affichable en bandeau non bloquant côté caisse.
type ProxyResponse struct {
	Data          interface{} `json:"data"`
	Local         bool        `json:"local"`
	Avertissement string      `json:"avertissement,omitempty"`
}

// Pagination représente la structure de pagination
type Pagination struct {
	Page     int
	PageSize int
}

// GetPagination retourne une structure de pagination avec des valeurs par défaut
func GetPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = 20
	} else if pageSize > 100 {
		pageSize = 100
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// NewErrorResponse crée une nouvelle réponse d'erreur
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse crée une nouvelle réponse de succès
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// NewProxyResponse crée une réponse relayée, avec l'avertissement de mode
// dégradé quand les données sont servies localement
func NewProxyResponse(data interface{}, local bool, erreur string) ProxyResponse {
	r := ProxyResponse{Data: data, Local: local}
	if local {
		r.Avertissement = "backend indisponible, données locales"
		if erreur != "" {
			r.Avertissement += " (" + erreur + ")"
		}
	}
	return r
}
