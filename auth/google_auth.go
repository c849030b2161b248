package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const GOOGLE_USERINFO_URL = "https://www.googleapis.com/oauth2/v2/userinfo"
const STATE_COOKIE_NAME = "df-oauth-state"
const TOKEN_TTL = 24 * time.Hour

var ErrMissingCredentials = errors.New("GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, CALLBACK_URL and SESSION_SECRET must be set")

// GoogleAuth signs visitors in with Google and keeps them signed in with an
// HS256 JWT cookie.
type GoogleAuth struct {
	serverKey   []byte
	authConfig  *oauth2.Config
	cookieName  string
	userInfoURL string
	logger      *slog.Logger
}

type GoogleAuthConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	SessionKey   string
	CookieName   string
}

func NewGoogleAuth(cfg GoogleAuthConfig, logger *slog.Logger) (*GoogleAuth, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.CallbackURL == "" || cfg.SessionKey == "" {
		return nil, ErrMissingCredentials
	}
	authConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
	return &GoogleAuth{
		serverKey:   []byte(cfg.SessionKey),
		authConfig:  authConfig,
		cookieName:  cfg.CookieName,
		userInfoURL: GOOGLE_USERINFO_URL,
		logger:      logger,
	}, nil
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func (a *GoogleAuth) createToken(user User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"email": user.Email,
			"name":  user.Name,
			"exp":   time.Now().Add(TOKEN_TTL).Unix(),
		})
	return token.SignedString(a.serverKey)
}

func (a *GoogleAuth) parseToken(tokenString string) (*User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.serverKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return &User{Email: email, Name: name}, nil
}

func (a *GoogleAuth) Login(w http.ResponseWriter, r *http.Request) {
	state, err := generateState()
	if err != nil {
		http.Error(w, "failed to start sign in", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     STATE_COOKIE_NAME,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	url := a.authConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (a *GoogleAuth) Logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, a.cookieName)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

type userData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

func (a *GoogleAuth) getUserData(ctx context.Context, token *oauth2.Token) (*userData, error) {
	client := a.authConfig.Client(ctx, token)
	resp, err := client.Get(a.userInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status code: " + resp.Status)
	}
	var data userData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &data, nil
}

func (a *GoogleAuth) AuthCallback(w http.ResponseWriter, r *http.Request) {
	state, err := r.Cookie(STATE_COOKIE_NAME)
	if err != nil || state.Value == "" || state.Value != r.FormValue("state") {
		http.Error(w, "invalid oauth state", http.StatusBadRequest)
		return
	}
	clearCookie(w, STATE_COOKIE_NAME)

	token, err := a.authConfig.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		a.logger.Error("[GoogleAuth] Code exchange failed", "err", err)
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	data, err := a.getUserData(r.Context(), token)
	if err != nil {
		a.logger.Error("[GoogleAuth] Fetching user info failed", "err", err)
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	ownToken, err := a.createToken(User{Email: data.Email, Name: data.Name})
	if err != nil {
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    ownToken,
		Path:     "/",
		Expires:  time.Now().Add(TOKEN_TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	a.logger.Info("[GoogleAuth] Signed in", "email", data.Email)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

func (a *GoogleAuth) CurrentUser(r *http.Request) (*User, bool) {
	cookie, err := r.Cookie(a.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	user, err := a.parseToken(cookie.Value)
	if err != nil {
		a.logger.Debug("[GoogleAuth] Rejected session cookie", "err", err)
		return nil, false
	}
	return user, true
}
