package productrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
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

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers, including the row-lock
// behavior the stock workflows depend on.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_Success() {
	ctx := context.Background()

	testProduct := suite.createTestProduct()
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()

	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&productrepo.ProductDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_ExistingProduct_ReturnsProduct() {
	ctx := context.Background()

	id := kernel.NewUUID()
	original, err := product.RestoreProduct(id, "Hex Nut M10", 15, 240)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrieved.ID())
	suite.Equal("Hex Nut M10", retrieved.Name())
	suite.Equal(int64(15), retrieved.UnitPriceCents())
	suite.Equal(240, retrieved.StockedQuantity())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_ZeroStock_WritesZero() {
	ctx := context.Background()

	id := kernel.NewUUID()
	original, err := product.RestoreProduct(id, "Washer", 5, 100)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	drained, err := product.RestoreProduct(id, "Washer", 5, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, drained))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.StockedQuantity())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestProduct())
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_LockedRow_ReturnsConcurrentModificationError() {
	ctx := context.Background()

	id := kernel.NewUUID()
	original, err := product.RestoreProduct(id, "Pallet Wrap", 800, 50)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// First transaction takes the row lock and holds it.
	holder := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(holder.Error)
	defer holder.Rollback()

	holderRepo := productrepo.NewGormProductRepository(holder, suite.tracker)
	_, err = holderRepo.GetForUpdate(ctx, id)
	suite.Require().NoError(err)

	// Second transaction must fail immediately instead of queueing.
	contender := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(contender.Error)
	defer contender.Rollback()

	contenderRepo := productrepo.NewGormProductRepository(contender, suite.tracker)
	_, err = contenderRepo.GetForUpdate(ctx, id)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_FreeRow_ReturnsProduct() {
	ctx := context.Background()

	id := kernel.NewUUID()
	original, err := product.RestoreProduct(id, "Strap", 120, 30)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	tx := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := productrepo.NewGormProductRepository(tx, suite.tracker)
	retrieved, err := txRepo.GetForUpdate(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(30, retrieved.StockedQuantity())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestProduct creates a basic product with default values.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct() *product.Product {
	testProduct, err := product.NewProduct(kernel.NewUUID(), "Bolt M8", 25)
	suite.Require().NoError(err)
	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
