// Package server assembles the HTTP surface of the API.
package server

import (
	"net/http"

	"github.com/Aasthik17/ExpenseEase/internal/handler"
	"github.com/Aasthik17/ExpenseEase/shared/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Accounts *handler.AccountHandler
	UserData *handler.UserDataHandler
	Expenses *handler.ExpenseHandler
}

// NewRouter wires every route. Browsers from any origin may call the API.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/signup", h.Accounts.Signup)
		api.POST("/login", h.Accounts.Login)
		api.GET("/user-data/:userId", h.UserData.GetUserData)
		api.POST("/expenses", h.Expenses.CreateExpense)
		api.DELETE("/expenses/:expenseId", h.Expenses.DeleteExpense)
	}

	return router
}
