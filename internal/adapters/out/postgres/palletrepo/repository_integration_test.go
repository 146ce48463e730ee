package palletrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/palletrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PalletRepositoryIntegrationTestSuite provides integration tests for
// PalletRepository using PostgreSQL containers.
type PalletRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *palletrepo.GormPalletRepository
	tracker    *MockAggregateTracker
}

func (suite *PalletRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&palletrepo.PalletDTO{}))
}

func (suite *PalletRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pallets").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = palletrepo.NewGormPalletRepository(suite.db, suite.tracker)
}

func (suite *PalletRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PalletRepositoryIntegrationTestSuite) TestAddAndGet_StoredPallet_RoundTrips() {
	ctx := context.Background()

	slotID := kernel.NewUUID()
	stored := suite.createStoredPallet(slotID)
	suite.tracker.On("TrackAggregate", stored.ID(), stored).Once()

	suite.Require().NoError(suite.repository.Add(ctx, stored))

	retrieved, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)

	suite.Equal(stored.ID(), retrieved.ID())
	suite.Equal(stored.Name(), retrieved.Name())
	suite.Equal(stored.ProductID(), retrieved.ProductID())
	suite.Equal(stored.Quantity(), retrieved.Quantity())
	suite.Equal(stored.MaxCapacity(), retrieved.MaxCapacity())
	suite.Equal(pallet.Stored, retrieved.Status())
	suite.Require().NotNil(retrieved.SlotID())
	suite.Equal(slotID, *retrieved.SlotID())
	suite.Nil(retrieved.PurchaseOrderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PalletRepositoryIntegrationTestSuite) TestAddAndGet_InboundPallet_KeepsPurchaseOrderReference() {
	ctx := context.Background()

	purchaseOrderID := kernel.NewUUID()
	inbound, err := pallet.NewInboundPallet(
		kernel.NewUUID(), "PO-PLT-1", kernel.NewUUID(), 40, 60, purchaseOrderID, "Acme Logistics",
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", inbound.ID(), inbound).Once()
	suite.Require().NoError(suite.repository.Add(ctx, inbound))

	retrieved, err := suite.repository.Get(ctx, inbound.ID())
	suite.Require().NoError(err)

	suite.Equal(pallet.ReadyToShip, retrieved.Status())
	suite.Require().NotNil(retrieved.PurchaseOrderID())
	suite.Equal(purchaseOrderID, *retrieved.PurchaseOrderID())
	suite.Equal("Acme Logistics", retrieved.SupplierName())
	suite.Nil(retrieved.SlotID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PalletRepositoryIntegrationTestSuite) TestUpdate_UnstoringPallet_ClearsSlotReference() {
	ctx := context.Background()

	slotID := kernel.NewUUID()
	stored := suite.createStoredPallet(slotID)
	suite.tracker.On("TrackAggregate", stored.ID(), stored).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, stored))

	suite.Require().NoError(stored.ApplyTransition(stored.Name(), stored.Quantity(), stored.MaxCapacity(), pallet.Unstored, nil))
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	retrieved, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(pallet.Unstored, retrieved.Status())
	suite.Nil(retrieved.SlotID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PalletRepositoryIntegrationTestSuite) TestDelete_ExistingPallet_RemovesRow() {
	ctx := context.Background()

	slotID := kernel.NewUUID()
	stored := suite.createStoredPallet(slotID)
	suite.tracker.On("TrackAggregate", stored.ID(), stored).Once()

	suite.Require().NoError(suite.repository.Add(ctx, stored))
	suite.Require().NoError(suite.repository.Delete(ctx, stored.ID()))

	retrieved, err := suite.repository.Get(ctx, stored.ID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PalletRepositoryIntegrationTestSuite) TestDelete_NonExistentPallet_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PalletRepositoryIntegrationTestSuite) TestGetAllStored_MixedStatuses_ReturnsOnlyStored() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	storedA := suite.createStoredPallet(kernel.NewUUID())
	storedB := suite.createStoredPallet(kernel.NewUUID())
	unstored, err := pallet.NewPallet(kernel.NewUUID(), "FLOOR-1", kernel.NewUUID(), 10, 50, pallet.Unstored, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, storedA))
	suite.Require().NoError(suite.repository.Add(ctx, storedB))
	suite.Require().NoError(suite.repository.Add(ctx, unstored))

	pallets, err := suite.repository.GetAllStored(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pallets, 2)
	for _, p := range pallets {
		suite.Equal(pallet.Stored, p.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createStoredPallet creates a stored pallet bound to the given slot.
func (suite *PalletRepositoryIntegrationTestSuite) createStoredPallet(slotID kernel.UUID) *pallet.Pallet {
	p, err := pallet.NewPallet(kernel.NewUUID(), "PLT-100", kernel.NewUUID(), 30, 50, pallet.Stored, &slotID)
	suite.Require().NoError(err)
	return p
}

func TestPalletRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PalletRepositoryIntegrationTestSuite))
}
