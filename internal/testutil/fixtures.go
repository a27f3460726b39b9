package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"folio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestHolding creates a holding for the given display ticker. The
// ticker is escaped the same way the portfolio service escapes it on write.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID, ticker string, shares, investment float64) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		UserID:     userID,
		Ticker:     models.EscapeTicker(ticker),
		Shares:     shares,
		Investment: investment,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestPerformancePoint creates a performance point for the given month key.
func CreateTestPerformancePoint(t *testing.T, db *gorm.DB, userID, monthKey string, value float64) *models.PerformancePoint {
	t.Helper()

	point := &models.PerformancePoint{
		UserID:   userID,
		MonthKey: monthKey,
		Value:    value,
	}
	if err := db.Create(point).Error; err != nil {
		t.Fatalf("failed to create test performance point: %v", err)
	}
	return point
}
