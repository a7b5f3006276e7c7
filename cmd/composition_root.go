package cmd

import (
	"gorm.io/gorm"

	"parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateServer wires every command and query handler into the HTTP server.
func (c *CompositionRoot) CreateServer() (*http.Server, error) {
	authenticateHandler, err := queries.NewAuthenticateQueryHandler(c.gormDB)
	if err != nil {
		return nil, err
	}
	parcelHistoryHandler, err := queries.NewGetParcelHistoryQueryHandler(c.gormDB)
	if err != nil {
		return nil, err
	}
	parcelRecordsHandler, err := queries.NewListParcelRecordsQueryHandler(c.gormDB)
	if err != nil {
		return nil, err
	}
	listCustomersHandler, err := queries.NewListCustomersQueryHandler(c.gormDB)
	if err != nil {
		return nil, err
	}

	return http.NewServer(
		http.NewTokenSigner(c.config.JWTSecret, c.config.TokenTTL),
		c.CreateCreateParcelCommandHandler(),
		c.CreateSetParcelStatusCommandHandler(),
		c.CreateSetParcelAmountCommandHandler(),
		c.CreateDeleteParcelCommandHandler(),
		c.CreateRegisterCustomerCommandHandler(),
		c.CreateCreateCustomerCommandHandler(),
		c.CreateUpdateCustomerCommandHandler(),
		authenticateHandler,
		parcelHistoryHandler,
		parcelRecordsHandler,
		listCustomersHandler,
	), nil
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateSetParcelStatusCommandHandler() commands.SetParcelStatusCommandHandler {
	return commands.NewSetParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateSetParcelAmountCommandHandler() commands.SetParcelAmountCommandHandler {
	return commands.NewSetParcelAmountCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.identityUoWFactory())
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}
