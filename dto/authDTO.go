package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUser struct {
	DocID     string `json:"docId"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Rol       string `json:"rol"`
	LastLogin string `json:"last_login"`
}

type SigninResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

type SessionResponse struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expiresAt"`
}
