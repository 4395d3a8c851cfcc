package main

import (
	"errors"
	"net/http"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
)

var ErrMissingKitchenID = errors.New("missing kitchenId")

type ReplaceMenuRequest struct {
	KitchenID string             `json:"kitchenId" validate:"required"`
	Menu      *[]domain.MenuItem `json:"menu" validate:"required"`
}

// getMenuHandler godoc
//
//	@Summary		Get kitchen menu
//	@Description	Get all menu items for a kitchen
//	@Tags			menus
//	@Produce		json
//	@Param			kitchenId	query		string	true	"Kitchen ID"
//	@Success		200			{array}		domain.MenuItem
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	kitchenID := r.URL.Query().Get("kitchenId")
	if kitchenID == "" {
		app.badRequestResponse(w, r, ErrMissingKitchenID)
		return
	}

	items, err := app.menuService.GetMenu(r.Context(), kitchenID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// replaceMenuHandler godoc
//
//	@Summary		Replace kitchen menu
//	@Description	Atomically replaces the whole menu of a kitchen
//	@Tags			menus
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReplaceMenuRequest	true	"Menu replacement request"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu [post]
func (app *application) replaceMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req ReplaceMenuRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.menuService.ReplaceMenu(r.Context(), req.KitchenID, *req.Menu); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"status": "success",
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
