package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/repo"
)

var ErrInvalidOrderData = errors.New("invalid order data: owner and items are required")

// listOrdersHandler godoc
//
//	@Summary		List kitchen orders
//	@Description	Get all orders for a kitchen, newest first
//	@Tags			orders
//	@Produce		json
//	@Param			kitchenId	query		string	true	"Kitchen ID"
//	@Success		200			{array}		domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	kitchenID := r.URL.Query().Get("kitchenId")
	if kitchenID == "" {
		app.badRequestResponse(w, r, ErrMissingKitchenID)
		return
	}

	orders, err := app.orderService.ListOrders(r.Context(), kitchenID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createOrderHandler godoc
//
//	@Summary		Submit an order
//	@Description	Persists an order submitted by the web form
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.Order	true	"Order"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := readJson(w, r, &order); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if order.KitchenID == "" || order.ItemsSummary == "" {
		app.badRequestResponse(w, r, ErrInvalidOrderData)
		return
	}

	if order.ID == "" {
		order.ID = fmt.Sprintf("WEB-%d", time.Now().UnixNano())
	}

	if err := app.orderService.SubmitOrder(r.Context(), &order); err != nil {
		if errors.Is(err, repo.ErrDuplicateOrder) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"status":  "success",
		"orderId": order.ID,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
