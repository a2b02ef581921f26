package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/config"
	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-api/internal/middleware"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	log    *logrus.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_body"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.WithError(err).Error("failed to hash password")
		httperr.Respond(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := "user"
	if h.config.AdminEmail != "" && email == h.config.AdminEmail {
		role = middleware.RoleAdmin
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		httperr.Respond(c, httperr.Classify(err, "email_already_exists"))
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")

	httpresp.Created(c, gin.H{
		"user":  userView(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_body"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if httperr.IsNotFound(err) {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Abort(c, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"user":  userView(&user),
		"token": token,
	})
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":      u.ID,
		"name":    u.Name,
		"surname": u.Surname,
		"email":   u.Email,
		"phone":   u.Phone,
		"role":    u.Role,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
