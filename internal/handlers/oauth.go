package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"errorswag/internal/config"
	"errorswag/internal/models"
	"errorswag/internal/repository"
	"errorswag/internal/services"
	"errorswag/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

// OAuthHandler drives the Google social-login flow: state round-trip, code
// exchange, then find-or-create of the account keyed by email.
type OAuthHandler struct {
	users       *repository.Repository[models.User]
	tokens      *services.TokenService
	oauthConfig *oauth2.Config
}

func NewOAuthHandler(database *gorm.DB, cfg *config.Config, tokens *services.TokenService) *OAuthHandler {
	return &OAuthHandler{
		users:  repository.New[models.User](database),
		tokens: tokens,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.SiteURL + "/auth/google/redirect",
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// googleUserInfo is the subset of the userinfo response we consume.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	Picture       string `json:"picture"`
}

func generateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GoogleLogin stores a random state token in the session and redirects to
// the consent screen.
func (h *OAuthHandler) GoogleLogin(c *gin.Context) {
	state, err := generateStateToken()
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	session := sessions.Default(c)
	session.Set("oauth_state", state)
	session.Save()

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback validates the state, exchanges the code, and logs the user
// in — creating the account first if the email is new.
func (h *OAuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)
	savedState := session.Get("oauth_state")

	if savedState == nil || c.Query("state") != savedState.(string) {
		SendError(c, http.StatusBadRequest, "Invalid state parameter")
		return
	}
	session.Delete("oauth_state")
	session.Save()

	code := c.Query("code")
	if code == "" {
		SendError(c, http.StatusBadRequest, "Authorization code missing")
		return
	}

	oauthToken, err := h.oauthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		SendError(c, http.StatusInternalServerError, "Failed to exchange access token")
		return
	}

	info, err := h.getGoogleUserInfo(oauthToken.AccessToken)
	if err != nil {
		SendError(c, http.StatusInternalServerError, "Failed to fetch user info")
		return
	}
	if !info.VerifiedEmail {
		SendError(c, http.StatusBadRequest, "Google email is not verified")
		return
	}

	username := info.Name
	if username == "" {
		username = strings.Split(info.Email, "@")[0]
	}
	// The provider id doubles as the initial password so the user can set a
	// real one later.
	hash, err := utils.HashPassword(info.ID)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	user, created, err := h.users.FindOrCreate(c.Request.Context(),
		repository.Criteria{"email": info.Email},
		models.User{
			Username: username,
			Email:    info.Email,
			Avatar:   info.Picture,
			Password: hash,
			Role:     models.RoleUser,
		})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.tokens.Sign(services.TokenPayload{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	data := gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"status":   user.Status,
		"token":    token,
		"created":  created,
	}
	if created {
		SendSuccess(c, http.StatusCreated, data, "Account created successfully. Welcome to errorSwag.")
		return
	}
	SendSuccess(c, http.StatusOK, data, "")
}

// Fail is the OAuth failure landing route.
func (h *OAuthHandler) Fail(c *gin.Context) {
	SendError(c, http.StatusBadRequest, "Authentication fail")
}

func (h *OAuthHandler) getGoogleUserInfo(accessToken string) (*googleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
