package database

import (
	"testing"
	"time"

	"household-finance/internal/config"
	"household-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.CreateIndexes(); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}

	return testDB
}

func CreateTestHousehold(t *testing.T, db *DB, name string) *models.Household {
	t.Helper()

	household := &models.Household{
		Name:     name,
		Currency: "EUR",
	}

	if err := db.Create(household).Error; err != nil {
		t.Fatalf("failed to create test household: %v", err)
	}

	return household
}

func CreateTestAccount(t *testing.T, db *DB, householdID uuid.UUID, name string) *models.Account {
	t.Helper()

	account := &models.Account{
		HouseholdID: householdID,
		Name:        name,
		AccountType: models.AccountTypeChecking,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestTransaction(t *testing.T, db *DB, householdID, accountID uuid.UUID, name, txType string, amount decimal.Decimal, valueDate time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		HouseholdID: householdID,
		AccountID:   accountID,
		Name:        name,
		Type:        txType,
		Amount:      amount,
		ValueDate:   valueDate,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CreateTestTemplate(t *testing.T, db *DB, template *models.TransactionTemplate) *models.TransactionTemplate {
	t.Helper()

	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test template: %v", err)
	}

	return template
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"transaction_templates",
		"counterparties",
		"categories",
		"accounts",
		"households",
	}

	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
