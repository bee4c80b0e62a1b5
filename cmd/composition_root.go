package cmd

import (
	"courierdocs/internal/adapters/out/pdfrender"
	"courierdocs/internal/adapters/out/postgres"
	"courierdocs/internal/adapters/out/postgres/jobrepo"
	"courierdocs/internal/adapters/out/postgres/noterepo"
	"courierdocs/internal/adapters/out/postgres/settingsrepo"
	"courierdocs/internal/adapters/out/postgres/shipmentrepo"
	"courierdocs/internal/core/application/usecases/commands"
	"courierdocs/internal/core/application/usecases/queries"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	renderer   ports.DocumentRenderer
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		renderer:   pdfrender.NewFpdfRenderer(),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkShipmentCollectedCommandHandler() commands.MarkShipmentCollectedCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkShipmentCollectedCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryNoteCommandHandler() commands.CreateDeliveryNoteCommandHandler {
	var f commands.NoteUoWFactory = FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertSettingCommandHandler() commands.UpsertSettingCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertSettingCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncollectedShipmentsQueryHandler() queries.GetUncollectedShipmentsQueryHandler {
	return queries.NewGetUncollectedShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryNoteQueryHandler() queries.GetDeliveryNoteQueryHandler {
	return queries.NewGetDeliveryNoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGenerateWaybillDocumentQueryHandler() queries.GenerateWaybillDocumentQueryHandler {
	return queries.NewGenerateWaybillDocumentQueryHandler(
		shipmentrepo.NewGormShipmentRepository(c.gormDB, noopTracker{}),
		jobrepo.NewGormJobRepository(c.gormDB),
		settingsrepo.NewGormSettingsRepository(c.gormDB),
		c.renderer,
	)
}

func (c *CompositionRoot) CreateGenerateDeliveryNoteDocumentQueryHandler() queries.GenerateDeliveryNoteDocumentQueryHandler {
	return queries.NewGenerateDeliveryNoteDocumentQueryHandler(
		noterepo.NewGormDeliveryNoteRepository(c.gormDB, noopTracker{}),
		settingsrepo.NewGormSettingsRepository(c.gormDB),
		c.renderer,
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncNoteUoWFactory func() commands.NoteUoW

func (f FuncNoteUoWFactory) Create() commands.NoteUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

// noopTracker backs read-only repository instances that never take part in a
// unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
