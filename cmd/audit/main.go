package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Aasthik17/ExpenseEase/internal/audit"
	"github.com/Aasthik17/ExpenseEase/internal/config"
	"github.com/Aasthik17/ExpenseEase/shared/events"
	redisClient "github.com/Aasthik17/ExpenseEase/shared/redis"
	"github.com/google/uuid"
)

const auditGroup = "expenseease-audit"

func main() {
	cfg := config.Load()
	if !cfg.Redis.Enabled() {
		log.Fatalf("REDIS_ADDR must be set to consume ledger events")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redis, err := redisClient.NewClient(ctx, redisClient.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	auditLog := audit.NewLogger()
	consumer := "audit-" + uuid.NewString()

	var wg sync.WaitGroup
	for _, stream := range []string{events.UserEventsStream, events.ExpenseEventsStream} {
		subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
			Group:    auditGroup,
			Consumer: consumer,
			Stream:   stream,
			Handler:  auditLog.Handle,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := subscriber.Start(ctx); err != nil {
				log.Printf("Subscriber stopped: %v", err)
			}
		}()
	}

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down...")
	cancel()
	wg.Wait()
}
