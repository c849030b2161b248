package auth

import (
	"net/http"
)

// User is the signed-in visitor.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Authenticator delegates sign-in to an identity provider and recognises the
// session cookie it leaves behind.
type Authenticator interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	AuthCallback(w http.ResponseWriter, r *http.Request)
	CurrentUser(r *http.Request) (*User, bool)
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
