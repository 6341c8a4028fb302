package handler

import (
	"net/http"

	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type userHandler struct {
	userService service.UserService
	log         *logrus.Logger
}

func NewUserHandler(userService service.UserService, log *logrus.Logger) UserHandler {
	return &userHandler{userService: userService, log: log}
}

type UserCreateRequest struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=5"`
	IsAdmin   bool   `json:"is_admin"`
}

type UserUpdateRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=5"`
}

func (h *userHandler) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for user create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Create(service.UserCreate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		respondError(c, h.log, err, "create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *userHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		respondError(c, h.log, err, "list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *userHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Param("username"))
	if err != nil {
		respondError(c, h.log, err, "get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *userHandler) Update(c *gin.Context) {
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for user update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Update(c.Param("username"), service.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, h.log, err, "update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *userHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := h.userService.Delete(username); err != nil {
		respondError(c, h.log, err, "delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": username})
}
