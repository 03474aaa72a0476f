package dto

type SignupInput struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Nickname string `form:"nickname" json:"nickname" validate:"required"`
}

type SignupResponse struct {
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
}
