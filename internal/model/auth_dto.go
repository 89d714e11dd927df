package model

type SignupRequest struct {
	Phone           string `json:"phone" validate:"required"`
	UserID          string `json:"userId" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type LoginRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message    string `json:"message"`
	UserID     string `json:"user_id"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	Token      string `json:"token,omitempty"`
}

type AdminLoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token,omitempty"`
}
