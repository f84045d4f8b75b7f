// Package dto defines form payloads for the auth feature's HTTP transport layer.
package dto

// SignupReq is the /signup form. Emptiness is checked by the usecase so the page can show one message.
type SignupReq struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}
