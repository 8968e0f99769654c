// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq is the body of POST /api/auth/signup.
type SignupReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
