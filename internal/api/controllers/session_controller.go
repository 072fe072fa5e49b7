package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"destinex/internal/models/request_models"
	"destinex/internal/models/response_models"
	"destinex/internal/session"
	"destinex/pkg/utils"
)

type SessionController struct {
	sessions session.StoreInterface
}

func NewSessionController(sessions session.StoreInterface) *SessionController {
	return &SessionController{sessions: sessions}
}

// Register creates a local account and signs it in atomically.
func (s *SessionController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sess, err := s.sessions.Register(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSessionResponse(sess), "Account created successfully")
}

func (s *SessionController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sess, err := s.sessions.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSessionResponse(sess), "Login successful")
}

func (s *SessionController) Logout(c *gin.Context) {
	if err := s.sessions.Clear(); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Logged out")
}

// Me returns the rehydrated current session, if one exists.
func (s *SessionController) Me(c *gin.Context) {
	sess, ok := s.sessions.Current()
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No active session")
		return
	}
	utils.RespondSuccess(c, response_models.NewSessionResponse(sess), "")
}
