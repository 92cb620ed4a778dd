package dto

// SignupRequest — входные данные регистрации. is_host выбирается
// один раз при регистрации: хост владеет календарём, гость — нет.
type SignupRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	Password      string `json:"password"`
	PasswordAgain string `json:"password_again"`
	IsHost        bool   `json:"is_host"`
}

// LoginRequest — входные данные входа.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse — публичное представление пользователя (без пароля).
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// AuthResponse — ответ на регистрацию/вход.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest — изменение профиля текущим пользователем.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}
