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

// ExpenseCommander defines the write-side operations used by ExpenseHandler.
type ExpenseCommander interface {
	CreateExpense(cqrs.CreateExpenseCommand) (*models.Expense, error)
	DeleteExpense(cqrs.DeleteExpenseCommand) error
}

type ExpenseHandler struct {
	commands ExpenseCommander
}

type CreateExpenseRequest struct {
	UserID   string     `json:"user_id" validate:"required"`
	Title    string     `json:"title" validate:"required"`
	Amount   flexString `json:"amount" validate:"required"`
	Category string     `json:"category" validate:"required"`
	Date     string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes    string     `json:"notes"`
	Source   string     `json:"source"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewExpenseHandler(commands ExpenseCommander) *ExpenseHandler {
	return &ExpenseHandler{commands: commands}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	expense, err := h.commands.CreateExpense(cqrs.CreateExpenseCommand{
		UserID:   req.UserID,
		Title:    req.Title,
		Amount:   req.Amount.String(),
		Category: req.Category,
		Date:     req.Date,
		Notes:    req.Notes,
		Source:   req.Source,
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[%s] Error creating expense: %v", middleware.GetRequestID(c), err)
		middleware.RespondWithErrorDetails(c, http.StatusInternalServerError, "Failed to create expense", err.Error())
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	err := h.commands.DeleteExpense(cqrs.DeleteExpenseCommand{ExpenseID: c.Param("expenseId")})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Expense not found")
			return
		}
		log.Printf("[%s] Delete expense error: %v", middleware.GetRequestID(c), err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}
