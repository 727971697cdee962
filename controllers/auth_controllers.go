package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
	"restaurant-reservation-api/utils"
)

type AuthController struct {
	Users *repositories.UserRepository
	Roles *repositories.RoleRepository
}

func NewAuthController(users *repositories.UserRepository, roles *repositories.RoleRepository) *AuthController {
	return &AuthController{Users: users, Roles: roles}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login verifies the credentials and issues a signed token.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ac.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		utils.ErrorLogger.Printf("Authentication failed for %q: %v", req.Username, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.RoleNames())
	if err != nil {
		utils.ErrorLogger.Printf("Token generation failed for %q: %v", user.Username, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	utils.InfoLogger.Printf("User %q logged in", user.Username)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// RegisterUser creates an account carrying the User role.
func (ac *AuthController) RegisterUser(c *gin.Context) {
	ac.register(c, models.RoleUser)
}

// RegisterAdmin creates an account carrying both the User and Admin roles.
func (ac *AuthController) RegisterAdmin(c *gin.Context) {
	ac.register(c, models.RoleUser, models.RoleAdmin)
}

func (ac *AuthController) register(c *gin.Context, roleNames ...string) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	taken, err := ac.Users.ExistsByUsername(req.Username)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if taken {
		utils.RespondError(c, http.StatusBadRequest, errors.New("username already taken"))
		return
	}

	roles := make([]models.Role, 0, len(roleNames))
	for _, name := range roleNames {
		role, err := ac.Roles.GetByName(name)
		if err != nil {
			respondRepoError(c, err)
			return
		}
		roles = append(roles, *role)
	}

	user := models.User{Username: req.Username, Roles: roles}
	created, err := ac.Users.CreateWithPassword(&user, req.Password)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	token, err := utils.GenerateToken(created.ID, created.Username, created.RoleNames())
	if err != nil {
		utils.ErrorLogger.Printf("Token generation failed for %q: %v", created.Username, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	utils.InfoLogger.Printf("New user %q registered with roles %v", created.Username, roleNames)
	utils.RespondJSON(c, http.StatusCreated, "Registration successful", gin.H{"token": token})
}
