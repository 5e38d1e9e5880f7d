package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/Aasthik17/ExpenseEase/shared/models"
)

// ID prefixes for generated identifiers.
const (
	UserIDPrefix    = "usr"
	ExpenseIDPrefix = "exp"
)

const idLength = 10

// randomSource feeds GenerateID.
var randomSource io.Reader = rand.Reader

// GenerateID generates a unique ID with the given prefix
func GenerateID(prefix string) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	result := make([]byte, idLength)
	for i := range result {
		num, err := rand.Int(randomSource, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate %s id: %w", prefix, err)
		}
		result[i] = charset[num.Int64()]
	}

	return fmt.Sprintf("%s-%s", prefix, string(result)), nil
}

// ValidateUserID validates the user ID format
func ValidateUserID(userID string) bool {
	return hasIDShape(userID, UserIDPrefix)
}

// ValidateExpenseID validates the expense ID format
func ValidateExpenseID(expenseID string) bool {
	return hasIDShape(expenseID, ExpenseIDPrefix)
}

func hasIDShape(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"-") && len(id) == len(prefix)+1+idLength
}

// OptionalString maps an empty string to nil so that absent optional fields
// are stored and rendered as null.
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Today returns the UTC calendar date of t in models.DateLayout.
func Today(t time.Time) string {
	return t.UTC().Format(models.DateLayout)
}
