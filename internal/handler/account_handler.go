package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/cqrs"
	"github.com/Aasthik17/ExpenseEase/shared/middleware"
	"github.com/Aasthik17/ExpenseEase/shared/models"
	"github.com/gin-gonic/gin"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	Signup(cqrs.SignupCommand) (*cqrs.SignupResult, error)
}

// AuthQuerier defines the read-side operations used by AccountHandler.
type AuthQuerier interface {
	Login(cqrs.LoginCommand) (*models.UserView, error)
}

type AccountHandler struct {
	commands AccountCommander
	queries  AuthQuerier
}

type SignupRequest struct {
	Name  string     `json:"name" validate:"required"`
	Email string     `json:"email" validate:"required"`
	Pin   flexString `json:"pin" validate:"required"`
}

type LoginRequest struct {
	Email string     `json:"email"`
	Pin   flexString `json:"pin"`
}

func NewAccountHandler(commands AccountCommander, queries AuthQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	result, err := h.commands.Signup(cqrs.SignupCommand{
		Name:  req.Name,
		Email: req.Email,
		Pin:   req.Pin.String(),
	})
	if err != nil {
		log.Printf("[%s] Signup error: %v", middleware.GetRequestID(c), err)
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, result.User)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.queries.Login(cqrs.LoginCommand{
		Email: req.Email,
		Pin:   req.Pin.String(),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("[%s] Login error: %v", middleware.GetRequestID(c), err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, view)
}
