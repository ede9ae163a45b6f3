// Package http adapts the REST surface described in api/openapi.yml to the
// application's command and query handlers.
package http

import (
	"errors"
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/returns"
	"procurement/internal/core/domain/services"
	"procurement/internal/generated/servers"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server implements the generated ServerInterface.
// It translates wire payloads into commands and queries and maps the error
// taxonomy onto HTTP status codes.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	receivePartialHandler     commands.ReceivePartialCommandHandler
	confirmDeliveryHandler    commands.ConfirmDeliveryCommandHandler
	createReturnHandler       commands.CreateReturnCommandHandler
	updateReturnStatusHandler commands.UpdateReturnStatusCommandHandler
	completeReturnHandler     commands.CompleteReturnCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	suggestMatchesHandler     queries.SuggestMatchesQueryHandler
	getAllReturnsHandler      queries.GetAllReturnsQueryHandler
	getAllCreditNotesHandler  queries.GetAllCreditNotesQueryHandler
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	receivePartialHandler commands.ReceivePartialCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	createReturnHandler commands.CreateReturnCommandHandler,
	updateReturnStatusHandler commands.UpdateReturnStatusCommandHandler,
	completeReturnHandler commands.CompleteReturnCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	suggestMatchesHandler queries.SuggestMatchesQueryHandler,
	getAllReturnsHandler queries.GetAllReturnsQueryHandler,
	getAllCreditNotesHandler queries.GetAllCreditNotesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		receivePartialHandler:     receivePartialHandler,
		confirmDeliveryHandler:    confirmDeliveryHandler,
		createReturnHandler:       createReturnHandler,
		updateReturnStatusHandler: updateReturnStatusHandler,
		completeReturnHandler:     completeReturnHandler,
		getOrderHandler:           getOrderHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		suggestMatchesHandler:     suggestMatchesHandler,
		getAllReturnsHandler:      getAllReturnsHandler,
		getAllCreditNotesHandler:  getAllCreditNotesHandler,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	store, err := storeContext(params.XStoreID)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.CreateOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.UUIDFromBytes(body.SupplierId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		unitPrice, priceErr := decimal.NewFromString(item.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+item.UnitPrice)
		}

		items = append(items, commands.OrderItemInput{
			CatalogID:   item.CatalogId,
			Name:        item.Name,
			Category:    deref(item.Category),
			Subcategory: deref(item.Subcategory),
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		store,
		supplierID,
		items,
		deref(body.IsConnected),
		deref(body.Notes),
		body.ExpectedDelivery,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderId{Id: orderID.Bytes()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	store, err := storeContext(params.XStoreID)
	if err != nil {
		return respondError(ctx, err)
	}

	var statusFilter *order.Status
	if params.Status != nil {
		status, statusErr := order.StatusFromString(*params.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		statusFilter = &status
	}

	var supplierFilter *kernel.UUID
	if params.SupplierId != nil {
		supplierID, supplierErr := kernel.UUIDFromBytes((*params.SupplierId)[:])
		if supplierErr != nil {
			return respondError(ctx, supplierErr)
		}
		supplierFilter = &supplierID
	}

	query, err := queries.NewGetAllOrdersQuery(store, statusFilter, supplierFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.OrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, servers.OrderSummary{
			Id:               o.OrderID.Bytes(),
			SupplierId:       o.SupplierID.Bytes(),
			Status:           o.Status,
			TotalAmount:      o.TotalAmount.String(),
			IsConnected:      o.IsConnected,
			Reconciled:       o.Reconciled,
			ExpectedDelivery: o.ExpectedDelivery,
			CreatedAt:        o.CreatedAt,
			UpdatedAt:        o.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderById handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderByIdParams) error {
	store, orderID, err := scope(params.XStoreID, orderId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(store, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]servers.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		wireItem := servers.OrderItem{
			Id:               item.ItemID.Bytes(),
			CatalogId:        item.CatalogID,
			Name:             item.Name,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice.String(),
			TotalPrice:       item.TotalPrice.String(),
			ReceivedQuantity: item.ReceivedQuantity,
		}
		if item.Category != "" {
			wireItem.Category = ptr(item.Category)
		}
		if item.Subcategory != "" {
			wireItem.Subcategory = ptr(item.Subcategory)
		}
		if item.MappedProductID != nil {
			mapped := item.MappedProductID.Bytes()
			wireItem.MappedProductId = &mapped
		}
		items = append(items, wireItem)
	}

	response := servers.Order{
		Id:               o.OrderID.Bytes(),
		SupplierId:       o.SupplierID.Bytes(),
		Status:           o.Status,
		TotalAmount:      o.TotalAmount.String(),
		IsConnected:      o.IsConnected,
		Reconciled:       o.Reconciled,
		ExpectedDelivery: o.ExpectedDelivery,
		Version:          o.Version,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Items:            items,
	}
	if o.Notes != "" {
		response.Notes = ptr(o.Notes)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params servers.UpdateOrderStatusParams) error {
	store, orderID, err := scope(params.XStoreID, orderId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.UpdateOrderStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(store, orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceivePartial handles PUT /api/v1/orders/{orderId}/receive-partial.
func (s *Server) ReceivePartial(ctx echo.Context, orderId openapi_types.UUID, params servers.ReceivePartialParams) error {
	store, orderID, err := scope(params.XStoreID, orderId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.ReceivePartialRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	entries := make([]commands.ReceiptInput, 0, len(body.Items))
	for _, entry := range body.Items {
		itemID, itemErr := kernel.UUIDFromBytes(entry.ItemId[:])
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		entries = append(entries, commands.ReceiptInput{
			ItemID:   itemID,
			Quantity: entry.Quantity,
		})
	}

	cmd, err := commands.NewReceivePartialCommand(store, orderID, entries, deref(body.Note))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.receivePartialHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SuggestMatches handles POST /api/v1/orders/{orderId}/suggest-matches.
func (s *Server) SuggestMatches(ctx echo.Context, orderId openapi_types.UUID, params servers.SuggestMatchesParams) error {
	store, orderID, err := scope(params.XStoreID, orderId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewSuggestMatchesQuery(store, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	suggestions, err := s.suggestMatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Suggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		wire := servers.Suggestion{
			CatalogId:       suggestion.CatalogID,
			CatalogName:     suggestion.CatalogName,
			Quantity:        suggestion.Quantity,
			UnitPrice:       suggestion.UnitPrice.String(),
			Source:          servers.SuggestionSource(suggestion.Source.String()),
			Confidence:      suggestion.Confidence,
			SuggestedAction: suggestedAction(suggestion.DefaultAction()),
		}
		if suggestion.CatalogCategory != "" {
			wire.CatalogCategory = ptr(suggestion.CatalogCategory)
		}
		if suggestion.CatalogSubcategory != "" {
			wire.CatalogSubcategory = ptr(suggestion.CatalogSubcategory)
		}
		if suggestion.MatchedProductID != nil {
			matched := suggestion.MatchedProductID.Bytes()
			wire.MatchedProductId = &matched
		}
		if suggestion.MatchedProductName != "" {
			wire.MatchedProductName = ptr(suggestion.MatchedProductName)
		}
		if suggestion.Reason != "" {
			wire.Reason = ptr(suggestion.Reason)
		}
		response = append(response, wire)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmDelivery handles POST /api/v1/orders/{orderId}/confirm-delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context, orderId openapi_types.UUID, params servers.ConfirmDeliveryParams) error {
	store, orderID, err := scope(params.XStoreID, orderId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.ConfirmDeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	decisions := make([]services.Decision, 0, len(body.Decisions))
	for _, wire := range body.Decisions {
		decision, decisionErr := toDecision(wire)
		if decisionErr != nil {
			return respondError(ctx, decisionErr)
		}
		decisions = append(decisions, decision)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(store, orderID, decisions)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReturn handles POST /api/v1/returns.
func (s *Server) CreateReturn(ctx echo.Context, params servers.CreateReturnParams) error {
	store, err := storeContext(params.XStoreID)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.CreateReturnRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := returns.KindFromString(string(body.Kind))
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.ReturnItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductId[:])
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		unitPrice, priceErr := decimal.NewFromString(item.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+item.UnitPrice)
		}

		items = append(items, commands.ReturnItemInput{
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			Reason:      deref(item.Reason),
		})
	}

	orderRef, err := optionalID(body.OrderId)
	if err != nil {
		return respondError(ctx, err)
	}
	supplierRef, err := optionalID(body.SupplierId)
	if err != nil {
		return respondError(ctx, err)
	}

	returnID := kernel.NewUUID()
	cmd, err := commands.NewCreateReturnCommand(returnID, store, kind, items, orderRef, supplierRef, deref(body.Notes))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ReturnId{Id: returnID.Bytes()})
}

// GetReturns handles GET /api/v1/returns.
func (s *Server) GetReturns(ctx echo.Context, params servers.GetReturnsParams) error {
	store, err := storeContext(params.XStoreID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAllReturnsQuery(store)
	if err != nil {
		return respondError(ctx, err)
	}

	results, err := s.getAllReturnsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Return, 0, len(results))
	for _, r := range results {
		wire := servers.Return{
			Id:          r.ReturnID.Bytes(),
			Kind:        r.Kind,
			Status:      r.Status,
			TotalAmount: r.TotalAmount.String(),
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}
		if r.OrderID != nil {
			id := r.OrderID.Bytes()
			wire.OrderId = &id
		}
		if r.SupplierID != nil {
			id := r.SupplierID.Bytes()
			wire.SupplierId = &id
		}
		if r.CreditNoteID != nil {
			id := r.CreditNoteID.Bytes()
			wire.CreditNoteId = &id
		}
		response = append(response, wire)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateReturnStatus handles PUT /api/v1/returns/{returnId}/status.
func (s *Server) UpdateReturnStatus(ctx echo.Context, returnId openapi_types.UUID, params servers.UpdateReturnStatusParams) error {
	store, returnID, err := scope(params.XStoreID, returnId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.UpdateReturnStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := returns.StatusFromString(string(body.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(store, returnID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateReturnStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteReturn handles PUT /api/v1/returns/{returnId}/complete.
func (s *Server) CompleteReturn(ctx echo.Context, returnId openapi_types.UUID, params servers.CompleteReturnParams) error {
	store, returnID, err := scope(params.XStoreID, returnId)
	if err != nil {
		return respondError(ctx, err)
	}

	// The note id may be supplied by the client so retries reuse it.
	creditNoteID := kernel.NewUUID()
	var body servers.CompleteReturnRequest
	if bindErr := ctx.Bind(&body); bindErr == nil && body.CreditNoteId != nil {
		creditNoteID, err = kernel.UUIDFromBytes((*body.CreditNoteId)[:])
		if err != nil {
			return respondError(ctx, err)
		}
	}

	cmd, err := commands.NewCompleteReturnCommand(store, returnID, creditNoteID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CreditNoteId{CreditNoteId: creditNoteID.Bytes()})
}

// GetCreditNotes handles GET /api/v1/credit-notes.
func (s *Server) GetCreditNotes(ctx echo.Context, params servers.GetCreditNotesParams) error {
	store, err := storeContext(params.XStoreID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAllCreditNotesQuery(store)
	if err != nil {
		return respondError(ctx, err)
	}

	notes, err := s.getAllCreditNotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.CreditNote, 0, len(notes))
	for _, note := range notes {
		response = append(response, servers.CreditNote{
			Id:         note.CreditNoteID.Bytes(),
			ReturnId:   note.ReturnID.Bytes(),
			Amount:     note.Amount.String(),
			UsedAmount: note.UsedAmount.String(),
			Remaining:  note.Remaining.String(),
			Status:     note.Status,
			CreatedAt:  note.CreatedAt,
			UpdatedAt:  note.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondError maps domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrQuantityExceedsOrdered),
		errors.Is(err, errs.ErrIncompleteMapping):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrReconciliationRequired),
		errors.Is(err, errs.ErrStaleState):
		code = http.StatusConflict
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func storeContext(raw openapi_types.UUID) (kernel.StoreContext, error) {
	storeID, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.StoreContext{}, err
	}
	return kernel.NewStoreContext(storeID)
}

func optionalID(raw *openapi_types.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func scope(rawStore, rawID openapi_types.UUID) (kernel.StoreContext, kernel.UUID, error) {
	store, err := storeContext(rawStore)
	if err != nil {
		return kernel.StoreContext{}, kernel.UUID{}, err
	}
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return kernel.StoreContext{}, kernel.UUID{}, err
	}
	return store, id, nil
}

func toDecision(wire servers.DecisionRequest) (services.Decision, error) {
	if wire.ProductId != nil && deref(wire.CreateNew) {
		return services.Decision{}, errs.NewValueIsInvalidError(
			"decision cannot both link a product and request creation")
	}
	if wire.ProductId != nil {
		productID, err := kernel.UUIDFromBytes((*wire.ProductId)[:])
		if err != nil {
			return services.Decision{}, err
		}
		return services.NewLinkDecision(wire.CatalogId, productID)
	}
	if deref(wire.CreateNew) {
		return services.NewCreateDecision(wire.CatalogId)
	}
	return services.Decision{}, errs.NewValueIsRequiredError("productId or createNew")
}

func suggestedAction(action services.Action) servers.SuggestionSuggestedAction {
	switch action {
	case services.ActionLinkProduct:
		return servers.SuggestionSuggestedActionLinkProduct
	case services.ActionCreateNew:
		return servers.SuggestionSuggestedActionCreateNew
	default:
		return servers.SuggestionSuggestedActionAmbiguous
	}
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
