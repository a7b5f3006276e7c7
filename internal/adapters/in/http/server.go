// Package http provides the inbound HTTP adapter. It translates echo
// requests into commands and queries and maps domain errors onto the
// status codes of the public API.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	signer TokenSigner

	// Command handlers
	createParcelHandler    commands.CreateParcelCommandHandler
	setParcelStatusHandler commands.SetParcelStatusCommandHandler
	setParcelAmountHandler commands.SetParcelAmountCommandHandler
	deleteParcelHandler    commands.DeleteParcelCommandHandler
	registerHandler        commands.RegisterCustomerCommandHandler
	createCustomerHandler  commands.CreateCustomerCommandHandler
	updateCustomerHandler  commands.UpdateCustomerCommandHandler

	// Query handlers
	authenticateHandler  queries.AuthenticateQueryHandler
	parcelHistoryHandler queries.GetParcelHistoryQueryHandler
	parcelRecordsHandler queries.ListParcelRecordsQueryHandler
	listCustomersHandler queries.ListCustomersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	signer TokenSigner,
	createParcelHandler commands.CreateParcelCommandHandler,
	setParcelStatusHandler commands.SetParcelStatusCommandHandler,
	setParcelAmountHandler commands.SetParcelAmountCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	registerHandler commands.RegisterCustomerCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	authenticateHandler queries.AuthenticateQueryHandler,
	parcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	parcelRecordsHandler queries.ListParcelRecordsQueryHandler,
	listCustomersHandler queries.ListCustomersQueryHandler,
) *Server {
	return &Server{
		signer:                 signer,
		createParcelHandler:    createParcelHandler,
		setParcelStatusHandler: setParcelStatusHandler,
		setParcelAmountHandler: setParcelAmountHandler,
		deleteParcelHandler:    deleteParcelHandler,
		registerHandler:        registerHandler,
		createCustomerHandler:  createCustomerHandler,
		updateCustomerHandler:  updateCustomerHandler,
		authenticateHandler:    authenticateHandler,
		parcelHistoryHandler:   parcelHistoryHandler,
		parcelRecordsHandler:   parcelRecordsHandler,
		listCustomersHandler:   listCustomersHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Everything
// except health, login and registration sits behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/auth/login", s.Login)
	e.POST("/api/auth/register", s.Register)

	authed := e.Group("", RequireAuth(s.signer))
	authed.POST("/api/parcels", s.CreateParcel)
	authed.POST("/api/parcels/status", s.SetParcelStatus)
	authed.POST("/api/parcels/amount", s.SetParcelAmount)
	authed.DELETE("/api/parcels/:trackingNo", s.DeleteParcel,
		RequireRoles(account.RoleAdmin, account.RoleStaff))
	authed.GET("/api/parcels/:trackingNo/history", s.GetParcelHistory)
	authed.GET("/records", s.GetRecords)

	customers := authed.Group("/api/customers", RequireRoles(account.RoleAdmin, account.RoleStaff))
	customers.POST("", s.CreateCustomer)
	customers.GET("", s.GetCustomers)
	customers.PUT("/:account", s.UpdateCustomer)
}

// Health handles GET /health - liveness probe, no auth.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/auth/login - verifies credentials and issues a token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateQuery(req.Username, req.Password)
	if err != nil {
		return s.mapError(ctx, err)
	}

	identity, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrInvalidCredentials) {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid username or password",
		})
	}
	if err != nil {
		return s.mapError(ctx, err)
	}

	actor := Actor{Username: identity.Username, Role: identity.Role}
	token, err := s.signer.Issue(actor, time.Now())
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: identity.Username,
		Role:     identity.Role.String(),
	})
}

// Register handles POST /api/auth/register - customer self-registration.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(
		req.Username, req.Password,
		req.Name, req.Phone, req.Email, req.Address,
		req.CustomerType, req.BillingPreference,
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	err = s.registerHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrUsernameAlreadyTaken) {
		return badRequest(ctx, "username already taken")
	}
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateParcel handles POST /api/parcels - registers a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	var req createParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if req.Weight.present && !req.Weight.valid {
		return badRequest(ctx, "weight must be numeric")
	}
	if req.DeclaredValue.present && !req.DeclaredValue.valid {
		return badRequest(ctx, "declared_value must be numeric")
	}

	senderID := req.SenderID
	if actor.Role == account.RoleCustomer || senderID == "" {
		senderID = actor.Username
	}

	cmd, err := commands.NewCreateParcelCommand(
		senderID,
		req.RecipientName,
		req.RecipientAddress,
		req.Weight.value,
		string(req.Volume),
		req.PackageType,
		req.DeclaredValue.value,
		req.Contents,
		req.ServiceType,
		actor.Username,
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelToResponse(created))
}

// SetParcelStatus handles POST /api/parcels/status - the status transition endpoint.
func (s *Server) SetParcelStatus(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	var req setStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	trackingNumber, err := parcel.TrackingNumberFromString(req.TrackingNumber)
	if err != nil {
		return s.mapError(ctx, err)
	}
	newStatus, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return s.mapError(ctx, err)
	}

	cmd, err := commands.NewSetParcelStatusCommand(
		actor.Role,
		actor.Username,
		trackingNumber,
		newStatus,
		req.Location,
		req.VehicleID,
		req.WarehouseID,
		req.Description,
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	if err = s.setParcelStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"tracking_no": trackingNumber.String(),
		"status":      newStatus.String(),
	})
}

// SetParcelAmount handles POST /api/parcels/amount - billing.
func (s *Server) SetParcelAmount(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	var req setAmountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if !req.Amount.present {
		return badRequest(ctx, "amount is required")
	}
	if !req.Amount.valid {
		return badRequest(ctx, "amount must be numeric")
	}

	trackingNumber, err := parcel.TrackingNumberFromString(req.TrackingNumber)
	if err != nil {
		return s.mapError(ctx, err)
	}

	cmd, err := commands.NewSetParcelAmountCommand(
		actor.Username,
		trackingNumber,
		req.Amount.value,
		req.PaymentMethod,
		req.ServiceType,
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	updated, err := s.setParcelAmountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelToResponse(updated))
}

// DeleteParcel handles DELETE /api/parcels/:trackingNo - removes a parcel
// and its audit trail. Role gating happens in the route middleware.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("trackingNo"))
	if err != nil {
		return s.mapError(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(trackingNumber)
	if err != nil {
		return s.mapError(ctx, err)
	}

	if err = s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("parcel %s deleted", trackingNumber),
	})
}

// GetParcelHistory handles GET /api/parcels/:trackingNo/history.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	query, err := queries.NewGetParcelHistoryQuery(ctx.Param("trackingNo"))
	if err != nil {
		return s.mapError(ctx, err)
	}

	events, err := s.parcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]eventResponse, len(events))
	for i, event := range events {
		response[i] = eventResponse{
			EventID:        event.EventID,
			TrackingNumber: event.TrackingNumber,
			EventType:      event.EventType,
			Timestamp:      event.Timestamp.Format(time.RFC3339),
			Location:       event.Location,
			VehicleID:      event.VehicleID,
			WarehouseID:    event.WarehouseID,
			Operator:       event.Operator,
			Description:    event.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRecords handles GET /records - parcel listing with optional
// vehicle/warehouse substring filters.
func (s *Server) GetRecords(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	query, err := queries.NewListParcelRecordsQuery(
		actor.Role,
		actor.Username,
		ctx.QueryParam("vehicle_id"),
		ctx.QueryParam("warehouse_id"),
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	records, err := s.parcelRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]recordResponse, len(records))
	for i, record := range records {
		response[i] = recordResponse{
			TrackingNumber:   record.TrackingNumber,
			SenderID:         record.SenderID,
			RecipientName:    record.RecipientName,
			RecipientAddress: record.RecipientAddress,
			Weight:           record.Weight,
			PackageType:      record.PackageType,
			Date:             record.CreatedAt.Format("2006-01-02"),
			Amount:           record.Amount,
			Status:           record.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/customers - office-side profile creation.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req customerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(
		req.Account, req.Name, req.Phone, req.Email, req.Address,
		req.CustomerType, req.BillingPreference,
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCustomers handles GET /api/customers - lists all customer profiles.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query, err := queries.NewListCustomersQuery()
	if err != nil {
		return s.mapError(ctx, err)
	}

	customers, err := s.listCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]customerResponse, len(customers))
	for i, customer := range customers {
		response[i] = customerResponse{
			Account:           customer.AccountUsername,
			Name:              customer.Name,
			Phone:             customer.Phone,
			Email:             customer.Email,
			Address:           customer.Address,
			CustomerType:      customer.CustomerType,
			BillingPreference: customer.BillingPreference,
			CreatedAt:         customer.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCustomer handles PUT /api/customers/:account - profile update.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	var req customerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		ctx.Param("account"), req.Name, req.Phone, req.Email, req.Address,
		req.CustomerType, req.BillingPreference,
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	if err = s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// mapError translates domain and application errors onto API status codes.
// Validation errors surface their message; everything unrecognized becomes
// an opaque 500 so internals never leak.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	case errors.Is(err, parcel.ErrAbnormalStateLocked):
		return badRequest(ctx, err.Error())
	case errors.Is(err, parcel.ErrCustomerMayNotChangeStatus),
		errors.Is(err, parcel.ErrStatusNotAllowedForRole):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
