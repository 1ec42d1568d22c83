package repositories_test

import (
	"testing"

	"household-finance/internal/database"
	"household-finance/internal/models"
	"household-finance/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	db            *database.DB
	accountRepo   repositories.AccountRepositoryInterface
	householdRepo repositories.HouseholdRepositoryInterface
	household     *models.Household
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.accountRepo = repositories.NewAccountRepository(s.db.DB)
	s.householdRepo = repositories.NewHouseholdRepository(s.db.DB)
	s.household = database.CreateTestHousehold(s.T(), s.db, "Repo Household")
}

func (s *AccountRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AccountRepositoryTestSuite) TestCreateAndGetByID() {
	account := &models.Account{
		HouseholdID: s.household.ID,
		Name:        "Joint Checking",
		AccountType: models.AccountTypeChecking,
		IBAN:        "DE89370400440532013000",
	}
	s.Require().NoError(s.accountRepo.Create(account))
	s.NotEqual(uuid.Nil, account.ID)

	found, err := s.accountRepo.GetByID(account.ID)
	s.Require().NoError(err)
	s.Equal("Joint Checking", found.Name)
	s.Equal("DE89370400440532013000", found.IBAN)
}

func (s *AccountRepositoryTestSuite) TestCreate_DefaultsAccountType() {
	account := &models.Account{
		HouseholdID: s.household.ID,
		Name:        "Wallet",
	}
	s.Require().NoError(s.accountRepo.Create(account))
	s.Equal(models.AccountTypeChecking, account.AccountType)
}

func (s *AccountRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.accountRepo.GetByID(uuid.New())
	s.ErrorIs(err, repositories.ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestGetByHousehold_OrderedAndScoped() {
	other := database.CreateTestHousehold(s.T(), s.db, "Other Household")
	database.CreateTestAccount(s.T(), s.db, other.ID, "Foreign")

	for _, name := range []string{"Savings", "Checking", "Cash"} {
		database.CreateTestAccount(s.T(), s.db, s.household.ID, name)
	}

	accounts, err := s.accountRepo.GetByHousehold(s.household.ID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 3)
	s.Equal("Cash", accounts[0].Name)
	s.Equal("Checking", accounts[1].Name)
	s.Equal("Savings", accounts[2].Name)
}

func (s *AccountRepositoryTestSuite) TestHouseholdCreateAndGet() {
	household := &models.Household{Name: "New Household", Currency: "USD"}
	s.Require().NoError(s.householdRepo.Create(household))
	s.NotEqual(uuid.Nil, household.ID)

	found, err := s.householdRepo.GetByID(household.ID)
	s.Require().NoError(err)
	s.Equal("New Household", found.Name)
	s.Equal("USD", found.Currency)
}

func (s *AccountRepositoryTestSuite) TestHouseholdGetByID_NotFound() {
	_, err := s.householdRepo.GetByID(uuid.New())
	s.ErrorIs(err, repositories.ErrHouseholdNotFound)
}
