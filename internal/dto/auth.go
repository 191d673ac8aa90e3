package dto

// SignupRequest registers a new citizen account.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates a citizen.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest authenticates an administrator.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token plus the identity it was issued for.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId,omitempty"`
	Email    string `json:"email,omitempty"`
	AdminID  int64  `json:"adminId,omitempty"`
	Username string `json:"username,omitempty"`
}

// SignupResponse echoes the created account.
type SignupResponse struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
}
