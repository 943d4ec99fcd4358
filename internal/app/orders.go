package app

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/api"
	"github.com/metinatakli/cinex/internal/domain"
)

func (app *Application) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CheckoutRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	snapshot, err := app.orders.Checkout(r.Context(), app.mustGetActor(r), toDomainCart(input))
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/orders/%s", snapshot.Order.ID))

	err = app.writeJSON(w, http.StatusCreated, toOrderResponse(snapshot), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOrderHandler(w http.ResponseWriter, r *http.Request, orderID uuid.UUID) {
	snapshot, err := app.orders.GetOrder(r.Context(), app.mustGetActor(r), orderID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toOrderResponse(snapshot), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelPurchaseHandler(w http.ResponseWriter, r *http.Request, purchaseID uuid.UUID) {
	purchase, err := app.cancellations.CancelPurchase(r.Context(), app.mustGetActor(r), purchaseID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toPurchaseResponse(purchase), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainCart(input api.CheckoutRequest) domain.Cart {
	cart := domain.Cart{
		Items:            make([]domain.CartItem, 0, len(input.Items)),
		PaymentMethod:    domain.PaymentMethod(input.PaymentMethod),
		PaymentReference: input.PaymentReference,
	}

	for _, item := range input.Items {
		cart.Items = append(cart.Items, domain.CartItem{
			Type:       domain.CartItemType(item.Type),
			ShowtimeID: item.ShowtimeId,
			Seats:      item.Seats,
			AdultCount: item.AdultCount,
			ChildCount: item.ChildCount,
			SnackID:    item.SnackId,
			Quantity:   item.Quantity,
		})
	}

	return cart
}

func toOrderResponse(snapshot *domain.OrderSnapshot) api.OrderResponse {
	order := snapshot.Order

	resp := api.OrderResponse{
		Id:               order.ID,
		UserId:           order.UserID,
		Status:           string(order.Status),
		TotalPrice:       order.TotalPrice,
		PaymentMethod:    string(order.PaymentMethod),
		PaymentReference: order.PaymentReference,
		Bookings:         make([]api.BookingResponse, 0, len(snapshot.Bookings)),
		CreatedAt:        order.CreatedAt,
		CanceledAt:       order.CanceledAt,
	}

	for i := range snapshot.Bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&snapshot.Bookings[i]))
	}

	if snapshot.Purchase != nil {
		purchase := toPurchaseResponse(snapshot.Purchase)
		resp.Purchase = &purchase
	}

	return resp
}

func toPurchaseResponse(purchase *domain.Purchase) api.PurchaseResponse {
	resp := api.PurchaseResponse{
		Id:         purchase.ID,
		UserId:     purchase.UserID,
		Items:      make([]api.PurchaseItem, 0, len(purchase.Items)),
		TotalPrice: purchase.TotalPrice,
		Canceled:   purchase.Canceled,
		CreatedAt:  purchase.CreatedAt,
		CanceledAt: purchase.CanceledAt,
	}

	for _, item := range purchase.Items {
		resp.Items = append(resp.Items, api.PurchaseItem{
			SnackId:  item.SnackID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Canceled: item.Canceled,
		})
	}

	return resp
}
