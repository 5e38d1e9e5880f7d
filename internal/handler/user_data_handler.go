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

type UserDataQuerier interface {
	GetUserData(cqrs.GetUserDataQuery) (*models.UserData, error)
}

type UserDataHandler struct {
	queries UserDataQuerier
}

func NewUserDataHandler(queries UserDataQuerier) *UserDataHandler {
	return &UserDataHandler{queries: queries}
}

func (h *UserDataHandler) GetUserData(c *gin.Context) {
	data, err := h.queries.GetUserData(cqrs.GetUserDataQuery{UserID: c.Param("userId")})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("[%s] User data error: %v", middleware.GetRequestID(c), err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, data)
}
