package command

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/cqrs"
	"github.com/Aasthik17/ExpenseEase/shared/events"
	"github.com/Aasthik17/ExpenseEase/shared/models"
	"github.com/Aasthik17/ExpenseEase/shared/utils"
	"github.com/shopspring/decimal"
)

type ExpenseWriter interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id string) (*models.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ExpenseCommandService records and removes ledger entries.
type ExpenseCommandService struct {
	expenses  ExpenseWriter
	publisher events.EventPublisher
	now       func() time.Time
}

func NewExpenseCommandService(expenses ExpenseWriter, publisher events.EventPublisher) *ExpenseCommandService {
	return &ExpenseCommandService{
		expenses:  expenses,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateExpense validates and stores a new expense, then returns the row as
// read back from storage.
func (s *ExpenseCommandService) CreateExpense(cmd cqrs.CreateExpenseCommand) (*models.Expense, error) {
	expense, err := s.buildExpense(cmd)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	stored, err := s.expenses.GetByID(ctx, expense.ID)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.ExpenseEventsStream, events.ExpenseCreated, events.ExpenseCreatedEvent{
		ExpenseID: stored.ID,
		UserID:    stored.UserID,
		Amount:    stored.Amount,
		Category:  stored.Category,
		Date:      stored.Date,
	}); err != nil {
		log.Printf("Failed to publish expense.created event: %v", err)
	}
	return stored, nil
}

func (s *ExpenseCommandService) DeleteExpense(cmd cqrs.DeleteExpenseCommand) error {
	if !utils.ValidateExpenseID(cmd.ExpenseID) {
		return apperrors.NotFound("expense")
	}
	ctx := context.Background()
	if err := s.expenses.Delete(ctx, cmd.ExpenseID); err != nil {
		return err
	}
	if err := s.publisher.Publish(ctx, events.ExpenseEventsStream, events.ExpenseDeleted, events.ExpenseDeletedEvent{
		ExpenseID: cmd.ExpenseID,
	}); err != nil {
		log.Printf("Failed to publish expense.deleted event: %v", err)
	}
	return nil
}

func (s *ExpenseCommandService) buildExpense(cmd cqrs.CreateExpenseCommand) (*models.Expense, error) {
	required := []struct{ field, value string }{
		{"user_id", cmd.UserID},
		{"title", cmd.Title},
		{"amount", cmd.Amount},
		{"category", cmd.Category},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, apperrors.Validation(r.field, "is required")
		}
	}

	amount, err := parseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	date := cmd.Date
	if strings.TrimSpace(date) == "" {
		date = utils.Today(s.now())
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, apperrors.Validation("date", "must be a calendar date formatted as YYYY-MM-DD")
	}

	id, err := utils.GenerateID(utils.ExpenseIDPrefix)
	if err != nil {
		return nil, err
	}

	return &models.Expense{
		ID:       id,
		UserID:   cmd.UserID,
		Title:    cmd.Title,
		Amount:   amount,
		Category: cmd.Category,
		Date:     date,
		Notes:    utils.OptionalString(cmd.Notes),
		Source:   utils.OptionalString(cmd.Source),
	}, nil
}

// maxAmount is the first magnitude that does not fit NUMERIC(12,2).
var maxAmount = decimal.New(1, 10)

// parseAmount accepts plain decimal text such as "12.50", "-3" or "0".
// Anything else, including surrounding whitespace, is rejected, as are
// magnitudes the expenses.amount column cannot hold.
func parseAmount(raw string) (float64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, apperrors.Validation("amount", "must be a number")
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return 0, apperrors.Validation("amount", "is out of range")
	}
	return d.InexactFloat64(), nil
}
