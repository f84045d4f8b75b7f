package dto

// LoginReq is the /login form.
type LoginReq struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
