package queries_test

import (
	"context"
	"testing"
	"time"

	"courierdocs/internal/adapters/out/postgres/noterepo"
	"courierdocs/internal/core/application/usecases/queries"
	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDeliveryNoteQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDeliveryNoteQueryHandler
	noteRepo  *noterepo.GormDeliveryNoteRepository
}

func (suite *GetDeliveryNoteQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&noterepo.DeliveryNoteDTO{}, &noterepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDeliveryNoteQueryHandler(db)
	suite.noteRepo = noterepo.NewGormDeliveryNoteRepository(db, &mockAggregateTracker{})
}

func (suite *GetDeliveryNoteQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDeliveryNoteQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE delivery_notes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDeliveryNoteQueryHandlerTestSuite) TestHandle_FullNote() {
	ctx := context.Background()

	hose, err := deliverynote.ItemFromStrings("2", "Hydraulic hose", "100.00")
	suite.Require().NoError(err)
	fitting, err := deliverynote.ItemFromStrings("1", "Fitting", "50.00")
	suite.Require().NoError(err)

	note, err := deliverynote.NewDeliveryNote(
		kernel.NewUUID(), "DN1001", "Mining Supplies CC",
		time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		"14 Quarry Rd, Boksburg",
		[]deliverynote.Item{hose, fitting})
	suite.Require().NoError(err)
	note.SetContact("S. Dlamini", "083 555 0199")
	note.LinkJob("J-2041", "CE-88")

	err = suite.noteRepo.Add(ctx, note)
	suite.Require().NoError(err)

	query, err := queries.NewGetDeliveryNoteQuery(note.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(note.ID(), result.ID)
	suite.Equal("DN1001", result.NoteNumber)
	suite.Equal("Mining Supplies CC", result.ClientName)
	suite.Equal("14 Quarry Rd, Boksburg", result.Address)
	suite.Require().NotNil(result.ContactPerson)
	suite.Equal("S. Dlamini", *result.ContactPerson)
	suite.Require().NotNil(result.JobNumber)
	suite.Equal("J-2041", *result.JobNumber)
	suite.Require().NotNil(result.CENumber)
	suite.Equal("CE-88", *result.CENumber)

	suite.Equal("250.00", result.Subtotal)
	suite.Equal("37.50", result.VAT)
	suite.Equal("287.50", result.Total)

	suite.Require().Len(result.Items, 2)
	suite.Equal("Hydraulic hose", result.Items[0].Description)
	suite.Equal("2", result.Items[0].Quantity)
	suite.Equal("100.00", result.Items[0].Price)
	suite.Equal("200.00", result.Items[0].Total)
	suite.Equal("Fitting", result.Items[1].Description)
	suite.Equal("50.00", result.Items[1].Total)
}

func (suite *GetDeliveryNoteQueryHandlerTestSuite) TestHandle_MinimalNote() {
	ctx := context.Background()

	item, err := deliverynote.ItemFromStrings("1", "Gasket", "10.00")
	suite.Require().NoError(err)

	note, err := deliverynote.NewDeliveryNote(
		kernel.NewUUID(), "DN1002", "Acme Ltd",
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		"1 Factory Rd, Johannesburg",
		[]deliverynote.Item{item})
	suite.Require().NoError(err)

	err = suite.noteRepo.Add(ctx, note)
	suite.Require().NoError(err)

	query, err := queries.NewGetDeliveryNoteQuery(note.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Nil(result.ContactPerson)
	suite.Nil(result.ContactNumber)
	suite.Nil(result.JobNumber)
	suite.Nil(result.CENumber)
	suite.Equal("10.00", result.Subtotal)
	suite.Equal("1.50", result.VAT)
	suite.Equal("11.50", result.Total)
}

func (suite *GetDeliveryNoteQueryHandlerTestSuite) TestHandle_MissingNote() {
	query, err := queries.NewGetDeliveryNoteQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetDeliveryNoteQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetDeliveryNoteQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetDeliveryNoteQueryIsNotConstructed)
}

func TestGetDeliveryNoteQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryNoteQueryHandlerTestSuite))
}
