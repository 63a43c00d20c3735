package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"offer_landing/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnLookup, th.CommandEqual("lookup"))
	adminGroup.HandleMessage(h.OnLookupID, th.CommandEqual("lookupid"))
	adminGroup.HandleMessage(h.OnLink, th.CommandEqual("link"))
	adminGroup.HandleMessage(h.OnEvents, th.CommandEqual("events"))
}
