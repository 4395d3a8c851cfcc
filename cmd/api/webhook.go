package main

import (
	"net/http"

	"github.com/Anant2019/home-kitchen-app/internal/service"
)

type WebhookRequest struct {
	Message   string `json:"message"`
	IsGroup   bool   `json:"isGroup"`
	Sender    string `json:"sender"`
	KitchenID string `json:"kitchenId"`
}

type WebhookResponse struct {
	Response string `json:"response"`
}

// whatsappWebhookHandler godoc
//
//	@Summary		Inbound WhatsApp message
//	@Description	Resolves a free-text order message; always answers 200 with a chat reply
//	@Tags			webhook
//	@Accept			json
//	@Produce		json
//	@Param			request	body		WebhookRequest	true	"Inbound message"
//	@Success		200		{object}	WebhookResponse
//	@Router			/whatsapp-webhook [post]
func (app *application) whatsappWebhookHandler(w http.ResponseWriter, r *http.Request) {
	// the caller is a chat user: business failures become reply text, not
	// HTTP errors
	var req WebhookRequest
	if err := readJson(w, r, &req); err != nil {
		app.logger.Warnw("malformed webhook payload", "error", err)
		app.respondWebhook(w, r, "Sorry, I'm having trouble understanding. Please use the menu link.")
		return
	}

	if req.KitchenID == "" {
		req.KitchenID = app.config.defaultKitchen
	}

	reply := app.webhookService.HandleMessage(r.Context(), service.InboundMessage{
		Message:   req.Message,
		Sender:    req.Sender,
		KitchenID: req.KitchenID,
		IsGroup:   req.IsGroup,
	})

	app.respondWebhook(w, r, reply)
}

func (app *application) respondWebhook(w http.ResponseWriter, r *http.Request, reply string) {
	if err := app.jsonRespone(w, http.StatusOK, WebhookResponse{Response: reply}); err != nil {
		app.internalServerError(w, r, err)
	}
}
