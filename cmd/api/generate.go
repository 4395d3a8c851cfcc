package main

import (
	"net/http"
)

type GenerateRequest struct {
	DishName string `json:"dish_name" validate:"required"`
}

// generateHandler godoc
//
//	@Summary		Generate dish content
//	@Description	Generates a short description and an image search keyword for a dish
//	@Tags			generate
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GenerateRequest	true	"Dish"
//	@Success		200		{object}	service.DishContent
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/generate [post]
func (app *application) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	content, err := app.genService.GenerateDishContent(r.Context(), req.DishName)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, content); err != nil {
		app.internalServerError(w, r, err)
	}
}
