package memberservice

// Member профиль участника клуба из MemberService
type Member struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	MembershipLevel string `json:"membership_level"`
	Active          bool   `json:"active"`
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
