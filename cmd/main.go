package main

import (
	"context"
	"log"

	"github.com/Aasthik17/ExpenseEase/internal/command"
	"github.com/Aasthik17/ExpenseEase/internal/config"
	"github.com/Aasthik17/ExpenseEase/internal/database"
	"github.com/Aasthik17/ExpenseEase/internal/handler"
	"github.com/Aasthik17/ExpenseEase/internal/query"
	"github.com/Aasthik17/ExpenseEase/internal/repository"
	"github.com/Aasthik17/ExpenseEase/internal/server"
	"github.com/Aasthik17/ExpenseEase/shared/events"
	redisClient "github.com/Aasthik17/ExpenseEase/shared/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Connection pool shared by every repository
	db, err := database.Connect(context.Background(), cfg.Database, cfg.RunMigrations)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Event publisher, disabled without a Redis address
	var publisher events.EventPublisher = events.NopPublisher{}
	if cfg.Redis.Enabled() {
		redis, err := redisClient.NewClient(context.Background(), redisClient.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Printf("Event publishing disabled: %v", err)
		} else {
			defer redis.Close()
			publisher = events.NewPublisher(redis.Client)
		}
	}

	// CQRS: write and read repositories over the same pool
	userRepo := repository.NewUserRepository(db)
	preferencesRepo := repository.NewPreferencesRepository(db)
	expenseWriteRepo := repository.NewExpenseWriteRepository(db)
	expenseReadRepo := repository.NewExpenseReadRepository(db)

	// Command + Query services
	accountCommands := command.NewAccountCommandService(userRepo, command.NewPreferencesInitializer(preferencesRepo), publisher)
	expenseCommands := command.NewExpenseCommandService(expenseWriteRepo, publisher)
	authQueries := query.NewAuthQueryService(userRepo)
	userDataQueries := query.NewUserDataQueryService(userRepo, preferencesRepo, query.NewExpenseQueryService(expenseReadRepo))

	router := server.NewRouter(server.Handlers{
		Accounts: handler.NewAccountHandler(accountCommands, authQueries),
		UserData: handler.NewUserDataHandler(userDataQueries),
		Expenses: handler.NewExpenseHandler(expenseCommands),
	})

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
