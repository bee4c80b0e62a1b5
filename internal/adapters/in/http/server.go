// Package http exposes the application's commands and queries over a JSON API
// and serves the generated PDF documents.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"courierdocs/internal/core/application/usecases/commands"
	"courierdocs/internal/core/application/usecases/queries"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/shipment"
	"courierdocs/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for inbound request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks a bound request struct against its validate tags.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler
	markCollectedHandler  commands.MarkShipmentCollectedCommandHandler
	createNoteHandler     commands.CreateDeliveryNoteCommandHandler
	upsertSettingHandler  commands.UpsertSettingCommandHandler

	getShipmentHandler             queries.GetShipmentQueryHandler
	getUncollectedShipmentsHandler queries.GetUncollectedShipmentsQueryHandler
	getDeliveryNoteHandler         queries.GetDeliveryNoteQueryHandler
	generateWaybillHandler         queries.GenerateWaybillDocumentQueryHandler
	generateNoteDocumentHandler    queries.GenerateDeliveryNoteDocumentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	markCollectedHandler commands.MarkShipmentCollectedCommandHandler,
	createNoteHandler commands.CreateDeliveryNoteCommandHandler,
	upsertSettingHandler commands.UpsertSettingCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getUncollectedShipmentsHandler queries.GetUncollectedShipmentsQueryHandler,
	getDeliveryNoteHandler queries.GetDeliveryNoteQueryHandler,
	generateWaybillHandler queries.GenerateWaybillDocumentQueryHandler,
	generateNoteDocumentHandler queries.GenerateDeliveryNoteDocumentQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:          createShipmentHandler,
		updateShipmentHandler:          updateShipmentHandler,
		markCollectedHandler:           markCollectedHandler,
		createNoteHandler:              createNoteHandler,
		upsertSettingHandler:           upsertSettingHandler,
		getShipmentHandler:             getShipmentHandler,
		getUncollectedShipmentsHandler: getUncollectedShipmentsHandler,
		getDeliveryNoteHandler:         getDeliveryNoteHandler,
		generateWaybillHandler:         generateWaybillHandler,
		generateNoteDocumentHandler:    generateNoteDocumentHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetUncollectedShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)
	api.POST("/shipments/:id/collect", s.MarkShipmentCollected)
	api.GET("/shipments/:id/waybill", s.GetWaybillDocument)

	api.POST("/delivery-notes", s.CreateDeliveryNote)
	api.GET("/delivery-notes/:id", s.GetDeliveryNote)
	api.GET("/delivery-notes/:id/document", s.GetDeliveryNoteDocument)

	api.PUT("/settings/:key", s.UpsertSetting)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// PartyRequest is one side of a shipment in a request body.
type PartyRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// ElementRequest is one packed element line in a request body.
type ElementRequest struct {
	Description string `json:"description" validate:"required"`
	Quantity    string `json:"quantity"`
}

// ShipmentRequest is the body of shipment create and update requests.
type ShipmentRequest struct {
	Sender        PartyRequest     `json:"sender" validate:"required"`
	Recipient     PartyRequest     `json:"recipient" validate:"required"`
	Elements      []ElementRequest `json:"elements" validate:"required,min=1,dive"`
	JobNumber     string           `json:"jobNumber"`
	CENumber      string           `json:"ceNumber"`
	CourierCharge string           `json:"courierCharge"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request ShipmentRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		commands.PartyData(request.Sender),
		commands.PartyData(request.Recipient),
		elementData(request.Elements),
		request.JobNumber,
		request.CENumber,
		request.CourierCharge,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// UpdateShipment handles PUT /api/v1/shipments/:id.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ShipmentRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		shipmentID,
		commands.PartyData(request.Sender),
		commands.PartyData(request.Recipient),
		elementData(request.Elements),
		request.JobNumber,
		request.CENumber,
		request.CourierCharge,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkCollectedRequest is the optional body of the collect endpoint.
// An absent or null collectedAt means "now".
type MarkCollectedRequest struct {
	CollectedAt *time.Time `json:"collectedAt"`
}

// MarkShipmentCollected handles POST /api/v1/shipments/:id/collect.
func (s *Server) MarkShipmentCollected(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request MarkCollectedRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	collectedAt := time.Now().UTC()
	if request.CollectedAt != nil {
		collectedAt = *request.CollectedAt
	}

	cmd, err := commands.NewMarkShipmentCollectedCommand(shipmentID, collectedAt)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.markCollectedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipmentResponse is the JSON read model of one shipment.
type ShipmentResponse struct {
	ID               string            `json:"id"`
	TrackingNumber   string            `json:"trackingNumber"`
	SenderName       string            `json:"senderName"`
	SenderContact    string            `json:"senderContact"`
	SenderAddress    string            `json:"senderAddress"`
	RecipientName    string            `json:"recipientName"`
	RecipientContact string            `json:"recipientContact"`
	RecipientAddress string            `json:"recipientAddress"`
	JobNumber        *string           `json:"jobNumber"`
	CENumber         *string           `json:"ceNumber"`
	CourierCharge    *string           `json:"courierCharge"`
	Elements         []ElementResponse `json:"elements"`
	CreatedAt        time.Time         `json:"createdAt"`
	CollectedAt      *time.Time        `json:"collectedAt"`
}

// ElementResponse is one packed element line of a shipment response.
type ElementResponse struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	elements := make([]ElementResponse, len(result.Elements))
	for i, element := range result.Elements {
		elements[i] = ElementResponse(element)
	}

	return ctx.JSON(http.StatusOK, ShipmentResponse{
		ID:               result.ID.String(),
		TrackingNumber:   result.TrackingNumber,
		SenderName:       result.SenderName,
		SenderContact:    result.SenderContact,
		SenderAddress:    result.SenderAddress,
		RecipientName:    result.RecipientName,
		RecipientContact: result.RecipientContact,
		RecipientAddress: result.RecipientAddress,
		JobNumber:        result.JobNumber,
		CENumber:         result.CENumber,
		CourierCharge:    result.CourierCharge,
		Elements:         elements,
		CreatedAt:        result.CreatedAt,
		CollectedAt:      result.CollectedAt,
	})
}

// UncollectedShipmentResponse is one outstanding shipment line.
type UncollectedShipmentResponse struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	RecipientName  string    `json:"recipientName"`
	JobNumber      *string   `json:"jobNumber"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GetUncollectedShipments handles GET /api/v1/shipments.
func (s *Server) GetUncollectedShipments(ctx echo.Context) error {
	query := queries.NewGetUncollectedShipmentsQuery()

	results, err := s.getUncollectedShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UncollectedShipmentResponse, len(results))
	for i, result := range results {
		response[i] = UncollectedShipmentResponse{
			ID:             result.ID.String(),
			TrackingNumber: result.TrackingNumber,
			RecipientName:  result.RecipientName,
			JobNumber:      result.JobNumber,
			CreatedAt:      result.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ItemRequest is one billed line in a delivery note request body.
type ItemRequest struct {
	Quantity    string `json:"quantity" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
}

// DeliveryNoteRequest is the body of delivery note create requests.
type DeliveryNoteRequest struct {
	ClientName    string        `json:"clientName" validate:"required"`
	Date          time.Time     `json:"date" validate:"required"`
	Address       string        `json:"address" validate:"required"`
	Items         []ItemRequest `json:"items" validate:"required,min=1,dive"`
	ContactPerson string        `json:"contactPerson"`
	ContactNumber string        `json:"contactNumber"`
	JobNumber     string        `json:"jobNumber"`
	CENumber      string        `json:"ceNumber"`
}

// CreateDeliveryNote handles POST /api/v1/delivery-notes.
func (s *Server) CreateDeliveryNote(ctx echo.Context) error {
	var request DeliveryNoteRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	noteID := kernel.NewUUID()
	items := make([]commands.ItemData, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.ItemData(item)
	}

	cmd, err := commands.NewCreateDeliveryNoteCommand(
		noteID,
		request.ClientName,
		request.Date,
		request.Address,
		items,
		request.ContactPerson,
		request.ContactNumber,
		request.JobNumber,
		request.CENumber,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: noteID.String()})
}

// DeliveryNoteResponse is the JSON read model of one delivery note.
type DeliveryNoteResponse struct {
	ID            string         `json:"id"`
	NoteNumber    string         `json:"noteNumber"`
	ClientName    string         `json:"clientName"`
	Date          time.Time      `json:"date"`
	Address       string         `json:"address"`
	ContactPerson *string        `json:"contactPerson"`
	ContactNumber *string        `json:"contactNumber"`
	JobNumber     *string        `json:"jobNumber"`
	CENumber      *string        `json:"ceNumber"`
	Items         []ItemResponse `json:"items"`
	Subtotal      string         `json:"subtotal"`
	VAT           string         `json:"vat"`
	Total         string         `json:"total"`
}

// ItemResponse is one billed line of a delivery note response.
type ItemResponse struct {
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// GetDeliveryNote handles GET /api/v1/delivery-notes/:id.
func (s *Server) GetDeliveryNote(ctx echo.Context) error {
	noteID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetDeliveryNoteQuery(noteID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getDeliveryNoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]ItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = ItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, DeliveryNoteResponse{
		ID:            result.ID.String(),
		NoteNumber:    result.NoteNumber,
		ClientName:    result.ClientName,
		Date:          result.Date,
		Address:       result.Address,
		ContactPerson: result.ContactPerson,
		ContactNumber: result.ContactNumber,
		JobNumber:     result.JobNumber,
		CENumber:      result.CENumber,
		Items:         items,
		Subtotal:      result.Subtotal,
		VAT:           result.VAT,
		Total:         result.Total,
	})
}

// SettingRequest is the body of setting upsert requests. An empty value is
// allowed and clears the setting's effect.
type SettingRequest struct {
	Value string `json:"value"`
}

// UpsertSetting handles PUT /api/v1/settings/:key.
func (s *Server) UpsertSetting(ctx echo.Context) error {
	var request SettingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpsertSettingCommand(ctx.Param("key"), request.Value)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.upsertSettingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWaybillDocument handles GET /api/v1/shipments/:id/waybill.
func (s *Server) GetWaybillDocument(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGenerateWaybillDocumentQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	document, err := s.generateWaybillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return serveDocument(ctx, document)
}

// GetDeliveryNoteDocument handles GET /api/v1/delivery-notes/:id/document.
func (s *Server) GetDeliveryNoteDocument(ctx echo.Context) error {
	noteID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGenerateDeliveryNoteDocumentQuery(noteID)
	if err != nil {
		return badRequest(ctx, err)
	}

	document, err := s.generateNoteDocumentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return serveDocument(ctx, document)
}

func serveDocument(ctx echo.Context, document queries.DocumentResponse) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%q", document.FileName))
	return ctx.Blob(http.StatusOK, "application/pdf", document.Content)
}

func bindAndValidate(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(request); err != nil {
		httpErr := &echo.HTTPError{}
		if errors.As(err, &httpErr) {
			return ctx.JSON(httpErr.Code, ErrorResponse{
				Code:    httpErr.Code,
				Message: fmt.Sprintf("%v", httpErr.Message),
			})
		}
		return badRequest(ctx, err)
	}
	return nil
}

func elementData(elements []ElementRequest) []commands.ElementData {
	data := make([]commands.ElementData, len(elements))
	for i, element := range elements {
		data[i] = commands.ElementData(element)
	}
	return data
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// errorResponse maps use-case errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, shipment.ErrShipmentAlreadyCollected):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
