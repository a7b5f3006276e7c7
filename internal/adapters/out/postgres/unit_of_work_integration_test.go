package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	postgres_adapter "parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/postgres/accountrepo"
	"parcels/internal/adapters/out/postgres/customerrepo"
	"parcels/internal/adapters/out/postgres/eventrepo"
	"parcels/internal/adapters/out/postgres/parcelrepo"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/tracking"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&eventrepo.EventDTO{},
		&accountrepo.AccountDTO{},
		&customerrepo.CustomerDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, tracking_events, accounts, customers").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ParcelRepository(), "First instance should provide parcel repository")
	suite.NotNil(uow1.TrackingEventRepository(), "First instance should provide event repository")
	suite.NotNil(uow2.AccountRepository(), "Second instance should provide account repository")
	suite.NotNil(uow2.CustomerRepository(), "Second instance should provide customer repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_StatusTransitionAtomicity verifies the canonical write path:
// the locked parcel read, the status write and the audit trail append commit
// as one unit and are both visible afterwards.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusTransitionAtomicity() {
	ctx := context.Background()
	testParcel := suite.seedParcel()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.ParcelRepository().GetForUpdate(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)

	err = locked.ChangeStatus(account.RoleWarehouse, parcel.StatusReceived)
	suite.Require().NoError(err)
	err = uow.ParcelRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	event := suite.statusEvent(locked, "warehouse1", "Central Hub")
	err = uow.TrackingEventRepository().Add(ctx, event)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Both writes are visible through a fresh unit of work
	newUow := suite.factory.Create()
	retrieved, err := newUow.ParcelRepository().Get(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusReceived, retrieved.Status())

	history := suite.parcelHistory(testParcel.TrackingNumber())
	suite.Require().Len(history, 1)
	suite.Equal("RECEIVED", history[0].EventType)
	suite.Equal("warehouse1", history[0].Operator)
	suite.Equal("Central Hub", history[0].Location)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards both the
// status write and the audit trail append made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	testParcel := suite.seedParcel()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.ParcelRepository().GetForUpdate(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)

	err = locked.ChangeStatus(account.RoleStaff, parcel.StatusReceived)
	suite.Require().NoError(err)
	err = uow.ParcelRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	err = uow.TrackingEventRepository().Add(ctx, suite.statusEvent(locked, "staff1", ""))
	suite.Require().NoError(err)

	// Changes are visible within the transaction
	inTx, err := uow.ParcelRepository().Get(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusReceived, inTx.Status())

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Neither the status write nor the event survived
	newUow := suite.factory.Create()
	retrieved, err := newUow.ParcelRepository().Get(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusCreated, retrieved.Status())
	suite.Empty(suite.parcelHistory(testParcel.TrackingNumber()))
}

// TestUnitOfWork_IdentityTransaction verifies account and customer profile
// writes span a single transaction, matching the registration flow.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IdentityTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	acc, err := account.NewAccount("carol", "carol-secret", account.RoleCustomer)
	suite.Require().NoError(err)
	profile, err := account.NewCustomer("carol", "Carol Jones", "555-0101", "carol@example.com", "10 Elm St", "", "")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AccountRepository().Add(ctx, acc)
	suite.Require().NoError(err)
	err = uow.CustomerRepository().Add(ctx, profile)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedAcc, err := newUow.AccountRepository().GetByUsername(ctx, "carol")
	suite.Require().NoError(err)
	suite.Equal(account.RoleCustomer, retrievedAcc.Role())
	suite.True(retrievedAcc.PasswordMatches("carol-secret"))

	retrievedProfile, err := newUow.CustomerRepository().GetByAccount(ctx, "carol")
	suite.Require().NoError(err)
	suite.Equal("Carol Jones", retrievedProfile.Name())
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	parcel1 := createTestParcel(suite.T())
	parcel2 := createTestParcel(suite.T())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ParcelRepository().Add(ctx, parcel1)
	suite.Require().NoError(err)
	err = uow2.ParcelRepository().Add(ctx, parcel2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.ParcelRepository().Get(ctx, parcel1.TrackingNumber())
	suite.Require().NoError(err, "UOW1 should see parcel1")

	_, err = uow1.ParcelRepository().Get(ctx, parcel2.TrackingNumber())
	suite.Require().Error(err, "UOW1 should not see parcel2")

	_, err = uow2.ParcelRepository().Get(ctx, parcel2.TrackingNumber())
	suite.Require().NoError(err, "UOW2 should see parcel2")

	_, err = uow2.ParcelRepository().Get(ctx, parcel1.TrackingNumber())
	suite.Require().Error(err, "UOW2 should not see parcel1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ParcelRepository().Get(ctx, parcel1.TrackingNumber())
	suite.Require().NoError(err, "Parcel1 should persist after commit")

	_, err = newUow.ParcelRepository().Get(ctx, parcel2.TrackingNumber())
	suite.Require().Error(err, "Parcel2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := createTestParcel(suite.T())

	err := uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	retrieved, err := uow.ParcelRepository().Get(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(testParcel.TrackingNumber().IsEqual(retrieved.TrackingNumber()))

	newUow := suite.factory.Create()
	retrieved, err = newUow.ParcelRepository().Get(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(testParcel.TrackingNumber().IsEqual(retrieved.TrackingNumber()))
}

// TestUnitOfWork_ConcurrentTransitionsSerialize verifies that GetForUpdate
// serializes concurrent transitions on the same parcel: both commit, the
// audit trail records both, and the parcel ends in a consistent state.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentTransitionsSerialize() {
	ctx := context.Background()
	testParcel := suite.seedParcel()

	transition := func(target parcel.Status) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		locked, err := uow.ParcelRepository().GetForUpdate(ctx, testParcel.TrackingNumber())
		if err != nil {
			return err
		}
		if err := locked.ChangeStatus(account.RoleStaff, target); err != nil {
			return err
		}
		if err := uow.ParcelRepository().Update(ctx, locked); err != nil {
			return err
		}
		trailEntry, err := tracking.NewEvent(
			locked.TrackingNumber(),
			target.String(),
			time.Now().UTC(),
			tracking.Context{Location: "Central Hub"},
			"staff1",
			fmt.Sprintf("status changed to %s", target),
		)
		if err != nil {
			return err
		}
		if err := uow.TrackingEventRepository().Add(ctx, trailEntry); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	targets := []parcel.Status{parcel.StatusReceived, parcel.StatusInWarehouse}
	results := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target parcel.Status) {
			defer wg.Done()
			results[i] = transition(target)
		}(i, target)
	}
	wg.Wait()

	suite.Require().NoError(results[0], "First concurrent transition should commit")
	suite.Require().NoError(results[1], "Second concurrent transition should commit")

	// Both transitions appear in the trail; the final status belongs to
	// whichever transaction acquired the row lock last.
	history := suite.parcelHistory(testParcel.TrackingNumber())
	suite.Require().Len(history, 2)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ParcelRepository().Get(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.Contains(targets, retrieved.Status())
	suite.Equal(retrieved.Status().String(), history[0].EventType)
}

// TestUnitOfWork_DeliveryFlow drives a parcel through the full lifecycle
// using the command handlers and verifies the audit trail through the read
// side: creation, billing and five status changes, newest first.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryFlow() {
	ctx := context.Background()
	factory := parcelUoWFactory{inner: suite.factory}

	createHandler := commands.NewCreateParcelCommandHandler(factory)
	amountHandler := commands.NewSetParcelAmountCommandHandler(factory)
	statusHandler := commands.NewSetParcelStatusCommandHandler(factory)

	createCmd, err := commands.NewCreateParcelCommand(
		"test1", "Jane Doe", "1 Main St", 2.5, "", "", 0, "", "", "staff1")
	suite.Require().NoError(err)

	created, err := createHandler.Handle(ctx, createCmd)
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusCreated, created.Status())

	amountCmd, err := commands.NewSetParcelAmountCommand(
		"staff1", created.TrackingNumber(), 120, "cod", "")
	suite.Require().NoError(err)
	billed, err := amountHandler.Handle(ctx, amountCmd)
	suite.Require().NoError(err)
	suite.Equal(parcel.PaymentStatusUnpaidCOD, billed.PaymentStatus())

	steps := []struct {
		role      account.Role
		operator  string
		status    parcel.Status
		vehicleID string
	}{
		{account.RoleWarehouse, "warehouse1", parcel.StatusReceived, ""},
		{account.RoleWarehouse, "warehouse1", parcel.StatusInWarehouse, ""},
		{account.RoleWarehouse, "warehouse1", parcel.StatusLoaded, "TRUCK-9"},
		{account.RoleDriver, "driver1", parcel.StatusInTransit, "TRUCK-9"},
		{account.RoleDriver, "driver1", parcel.StatusDelivered, "TRUCK-9"},
	}
	for _, step := range steps {
		cmd, err := commands.NewSetParcelStatusCommand(
			step.role, step.operator, created.TrackingNumber(), step.status,
			"", step.vehicleID, "", "")
		suite.Require().NoError(err)
		suite.Require().NoError(statusHandler.Handle(ctx, cmd))
	}

	history := suite.parcelHistory(created.TrackingNumber())
	suite.Require().Len(history, 7)
	wantOrder := []string{
		"DELIVERED", "IN_TRANSIT", "LOADED", "IN_WAREHOUSE", "RECEIVED",
		tracking.EventTypeBillingCompleted, "CREATED",
	}
	for i, want := range wantOrder {
		suite.Equal(want, history[i].EventType)
	}

	// The sender sees the delivered parcel in records, and the vehicle
	// filter matches case-insensitively on the trail
	recordsHandler, err := queries.NewListParcelRecordsQueryHandler(suite.db)
	suite.Require().NoError(err)

	query, err := queries.NewListParcelRecordsQuery(account.RoleCustomer, "test1", "truck-9", "")
	suite.Require().NoError(err)
	records, err := recordsHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(created.TrackingNumber().String(), records[0].TrackingNumber)
	suite.Equal("DELIVERED", records[0].Status)
}

// TestListParcelRecords_TrailFiltersWiden verifies that supplying both a
// vehicle and a warehouse pattern widens the record search: a parcel whose
// trail matches either pattern is returned.
func (suite *UnitOfWorkIntegrationTestSuite) TestListParcelRecords_TrailFiltersWiden() {
	ctx := context.Background()

	byVehicle := suite.seedParcel()
	byWarehouse := suite.seedParcel()

	uow := suite.factory.Create()
	vehicleEvent, err := tracking.NewEvent(
		byVehicle.TrackingNumber(),
		parcel.StatusInTransit.String(),
		time.Now().UTC(),
		tracking.Context{VehicleID: "TRUCK-1"},
		"driver1",
		"status changed to IN_TRANSIT",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TrackingEventRepository().Add(ctx, vehicleEvent))

	warehouseEvent, err := tracking.NewEvent(
		byWarehouse.TrackingNumber(),
		parcel.StatusInWarehouse.String(),
		time.Now().UTC(),
		tracking.Context{WarehouseID: "WH-1"},
		"warehouse1",
		"status changed to IN_WAREHOUSE",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TrackingEventRepository().Add(ctx, warehouseEvent))

	handler, err := queries.NewListParcelRecordsQueryHandler(suite.db)
	suite.Require().NoError(err)

	// Each parcel's trail matches exactly one of the two patterns
	query, err := queries.NewListParcelRecordsQuery(account.RoleStaff, "staff1", "truck-1", "wh-1")
	suite.Require().NoError(err)
	records, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(records, 2)
	got := []string{records[0].TrackingNumber, records[1].TrackingNumber}
	suite.Contains(got, byVehicle.TrackingNumber().String())
	suite.Contains(got, byWarehouse.TrackingNumber().String())
}

// seedParcel persists a parcel in Created status outside any transaction.
func (suite *UnitOfWorkIntegrationTestSuite) seedParcel() *parcel.Parcel {
	testParcel := createTestParcel(suite.T())
	uow := suite.factory.Create()
	err := uow.ParcelRepository().Add(context.Background(), testParcel)
	suite.Require().NoError(err)
	return testParcel
}

// statusEvent builds an audit event matching the parcel's current status.
func (suite *UnitOfWorkIntegrationTestSuite) statusEvent(
	p *parcel.Parcel, operator, location string,
) *tracking.Event {
	event, err := tracking.NewEvent(
		p.TrackingNumber(),
		p.Status().String(),
		time.Now().UTC(),
		tracking.Context{Location: location},
		operator,
		fmt.Sprintf("status changed to %s", p.Status()),
	)
	suite.Require().NoError(err)
	return event
}

// parcelHistory reads the audit trail through the read-side query handler.
func (suite *UnitOfWorkIntegrationTestSuite) parcelHistory(
	tn parcel.TrackingNumber,
) []queries.GetParcelHistoryQueryResponse {
	handler, err := queries.NewGetParcelHistoryQueryHandler(suite.db)
	suite.Require().NoError(err)
	query, err := queries.NewGetParcelHistoryQuery(tn.String())
	suite.Require().NoError(err)
	history, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return history
}

// parcelUoWFactory narrows the full unit of work factory to the parcel
// command surface, mirroring the composition root wiring.
type parcelUoWFactory struct {
	inner ports.UnitOfWorkFactory
}

func (f parcelUoWFactory) Create() commands.ParcelUoW {
	return f.inner.Create()
}

// createTestParcel creates a valid parcel for testing purposes.
func createTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	now := time.Now().UTC()
	p, err := parcel.NewParcel(
		parcel.NewTrackingNumber(now),
		"test1",
		"Jane Doe",
		"1 Main St",
		2.5,
		"",
		0,
		"",
		"",
		now,
	)
	if err != nil {
		t.Fatalf("create test parcel: %v", err)
	}
	return p
}
