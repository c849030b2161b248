package auth

import (
	"net/http"
)

const MOCK_TOKEN = "mock-token"

// MockAuth signs every visitor in as a fixed user without contacting a provider.
type MockAuth struct {
	cookieName string
}

func NewMockAuth(cookieName string) *MockAuth {
	return &MockAuth{cookieName: cookieName}
}

func (m *MockAuth) Login(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    MOCK_TOKEN,
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

func (m *MockAuth) Logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, m.cookieName)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

func (m *MockAuth) AuthCallback(w http.ResponseWriter, r *http.Request) {
	m.Login(w, r)
}

func (m *MockAuth) CurrentUser(r *http.Request) (*User, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value != MOCK_TOKEN {
		return nil, false
	}
	return &User{Email: "mock.user@brown.edu", Name: "Mock User"}, true
}
