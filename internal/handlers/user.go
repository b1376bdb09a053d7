package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"errorswag/internal/config"
	"errorswag/internal/middleware"
	"errorswag/internal/models"
	"errorswag/internal/pagination"
	"errorswag/internal/repository"
	"errorswag/internal/services"
	"errorswag/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

var avatarImageRe = regexp.MustCompile(`(?i)(\.jpg|\.jpeg|\.png|\.gif)$`)

type UserHandler struct {
	users     *repository.Repository[models.User]
	followers *repository.Repository[models.Follower]
	tokens    *services.TokenService
	mail      *services.MailService
	cfg       *config.Config
}

func NewUserHandler(database *gorm.DB, cfg *config.Config, tokens *services.TokenService, mail *services.MailService) *UserHandler {
	return &UserHandler{
		users:     repository.New[models.User](database),
		followers: repository.New[models.Follower](database),
		tokens:    tokens,
		mail:      mail,
		cfg:       cfg,
	}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin superadmin"`
}

type followRequest struct {
	FolloweeID uint `json:"followeeId" binding:"required"`
}

// sendVerificationMail mails the signed verification link. Fire-and-forget,
// the request never waits on delivery.
func (h *UserHandler) sendVerificationMail(user *models.User, token string) {
	confirmURL := fmt.Sprintf("%s/api/v1/auth/verify/%s", h.cfg.SiteURL, token)
	h.mail.SendConfirmAccountEmail(user.Username, user.Email, confirmURL)
}

func (h *UserHandler) signToken(user *models.User) (string, error) {
	return h.tokens.Sign(services.TokenPayload{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// CreateAccount registers a new user and sends the verification link.
func (h *UserHandler) CreateAccount(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Username = strings.ToLower(req.Username)
	req.Email = strings.ToLower(req.Email)

	existing, err := h.users.FindOneByField(c.Request.Context(), repository.Criteria{"email": req.Email})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		if existing.Status == models.StatusUnverified {
			SendError(c, http.StatusBadRequest, "This account is already registered. A verification link has been sent to your email. Check your email to continue.")
			return
		}
		SendError(c, http.StatusBadRequest, "User with this email address already exist")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	user, err := h.users.Create(c.Request.Context(), &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleUser,
		Status:   models.StatusUnverified,
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.signToken(user)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.sendVerificationMail(user, token)

	SendSuccess(c, http.StatusCreated, gin.H{
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"status":   user.Status,
		"token":    token,
	}, "Account created successfully. An email verification link has been sent to your email address.")
}

// Login authenticates by email/password. The response differs by account
// status: unverified gets a fresh verification mail and a bare token,
// inactive gets a token plus the deactivation notice, active gets the full
// profile.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.FindOneByField(c.Request.Context(), repository.Criteria{"email": strings.ToLower(req.Email)})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		SendError(c, http.StatusUnauthorized, "Invalid user credentials.")
		return
	}

	token, err := h.signToken(user)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	switch user.Status {
	case models.StatusUnverified:
		h.sendVerificationMail(user, token)
		SendSuccess(c, http.StatusOK, gin.H{"token": token},
			"Account has not been activated. Kindly check your email address for a verification link.")
	case models.StatusInactive:
		SendSuccess(c, http.StatusOK, gin.H{"token": token},
			"Your account has been deactivated. Kindly contact support for help.")
	default:
		SendSuccess(c, http.StatusOK, gin.H{
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"status":   user.Status,
			"token":    token,
		}, "")
	}
}

// VerifyAccount flips unverified -> active for the identity inside the
// verification token. Re-submitting after activation is an error, not a
// second transition.
func (h *UserHandler) VerifyAccount(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	user, err := h.users.FindOneByField(c.Request.Context(), repository.Criteria{"email": currentUser.Email})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if user != nil && user.Status != models.StatusActive {
		rows, err := h.users.Update(c.Request.Context(),
			repository.Criteria{"status": models.StatusActive},
			repository.Criteria{"email": currentUser.Email})
		if err != nil {
			SendError(c, http.StatusInternalServerError, err.Error())
			return
		}
		if rows > 0 {
			SendSuccess(c, http.StatusOK, nil, "Your account has been activated.")
			return
		}
	}

	SendError(c, http.StatusBadRequest, "Invalid validation token.")
}

// UpdateProfile updates the requester's avatar and bio.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Avatar != "" && !avatarImageRe.MatchString(req.Avatar) {
		SendError(c, http.StatusBadRequest, "Avatar should be an Image")
		return
	}

	updates := repository.Criteria{}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Bio != "" {
		updates["bio"] = strings.TrimSpace(req.Bio)
	}

	if len(updates) > 0 {
		if _, err := h.users.Update(c.Request.Context(), updates,
			repository.Criteria{"id": middleware.CurrentUser(c).ID}); err != nil {
			SendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	SendSuccess(c, http.StatusOK, nil, "Record successfully updated")
}

// UpdateRole changes another user's role; gated by SuperAdminCheck.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	id := utils.StringToInt(c.Param("id"))
	user, err := h.users.FindOneByField(c.Request.Context(), repository.Criteria{"id": id})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		SendError(c, http.StatusBadRequest, "Invalid User ID")
		return
	}

	rows, err := h.users.Update(c.Request.Context(),
		repository.Criteria{"role": req.Role},
		repository.Criteria{"id": id})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	SendSuccess(c, http.StatusOK, gin.H{"updated": rows}, "")
}

// ViewProfile returns an active user's profile.
func (h *UserHandler) ViewProfile(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	user, err := h.users.FindOneByField(c.Request.Context(), repository.Criteria{
		"id":     id,
		"status": models.StatusActive,
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		SendError(c, http.StatusBadRequest, "Invalid User ID")
		return
	}

	SendSuccess(c, http.StatusOK, user, "")
}

// ListUsers returns the paginated user directory with projected fields.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := middleware.PageQuery(c)
	paginate := pagination.New(page, limit)
	l, offset := paginate.QueryMetadata()

	count, users, err := h.users.FindAndCountAll(c.Request.Context(), repository.Query{
		Limit:  l,
		Offset: offset,
		Fields: []string{"id", "username", "email", "avatar", "role", "status"},
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	SendSuccessWithMeta(c, http.StatusOK, users, "", paginate.PageMetadata(count, "/api/v1/users", ""))
}

// Follow creates the follow edge unless it already exists.
func (h *UserHandler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	me := middleware.CurrentUser(c)

	_, created, err := h.followers.FindOrCreate(c.Request.Context(),
		repository.Criteria{"follower_id": me.ID, "followee_id": req.FolloweeID},
		models.Follower{FollowerID: me.ID, FolloweeID: req.FolloweeID})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if created {
		SendSuccess(c, http.StatusOK, nil, fmt.Sprintf("You just followed the user with id = %d", req.FolloweeID))
		return
	}
	SendError(c, http.StatusBadRequest, fmt.Sprintf("You were already following the user with id = %d", req.FolloweeID))
}

// Unfollow removes an existing follow edge; absence is an error, not a
// no-op.
func (h *UserHandler) Unfollow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	me := middleware.CurrentUser(c)
	criteria := repository.Criteria{"follower_id": me.ID, "followee_id": req.FolloweeID}

	edge, err := h.followers.FindOneByField(c.Request.Context(), criteria)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if edge == nil {
		SendError(c, http.StatusBadRequest, "You were not following this user")
		return
	}

	if _, err := h.followers.Remove(c.Request.Context(), criteria); err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	SendSuccess(c, http.StatusOK, nil, fmt.Sprintf("You have succesfully unfollowed user with id =%d", req.FolloweeID))
}

// GetFollowers lists the accounts following the requester.
func (h *UserHandler) GetFollowers(c *gin.Context) {
	me := middleware.CurrentUser(c)

	followers, err := h.followers.FindAndInclude(c.Request.Context(),
		repository.Criteria{"followee_id": me.ID}, "Follower", nil)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if len(followers) == 0 {
		SendError(c, http.StatusOK, "You do not have any followers at the moment")
		return
	}
	SendSuccess(c, http.StatusOK, followers, "")
}

// GetFollowings lists the accounts the requester follows.
func (h *UserHandler) GetFollowings(c *gin.Context) {
	me := middleware.CurrentUser(c)

	followings, err := h.followers.FindAndInclude(c.Request.Context(),
		repository.Criteria{"follower_id": me.ID}, "Followee", nil)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if len(followings) == 0 {
		SendError(c, http.StatusOK, "You are not following anyone at the moment")
		return
	}
	SendSuccess(c, http.StatusOK, followings, "")
}
