package dto

// LoginRequest est la demande d'ouverture de session caissier
type LoginRequest struct {
	Code     string `json:"code" binding:"required"`
	Pin      string `json:"pin" binding:"required"`
	Terminal string `json:"terminal" binding:"required"`
}

// LoginResponse est la réponse d'ouverture de session
type LoginResponse struct {
	Token    string `json:"token"`
	Nom      string `json:"nom"`
	Role     string `json:"role"`
	Terminal string `json:"terminal"`
}

// RefreshRequest est la demande de renouvellement d'un token
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

// RefreshResponse est la réponse de renouvellement de token
type RefreshResponse struct {
	Token string `json:"token"`
}
