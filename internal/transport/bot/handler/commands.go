package handler

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/service/landing"
	"offer_landing/internal/domain/value"
	"offer_landing/pkg/logx"
)

const (
	StartMessage = `<b>Offer landing</b>

/lookup <code>deal_uuid</code> shows the offer for an external id
/lookupid <code>NID</code> shows the offer for a CRM id
/link <code>action</code> <code>deal_uuid</code> builds the advisor chat link
/events <code>session_id</code> lists the stored events of a page session`

	LinkUsage = "Usage: /link <code>action</code> <code>deal_uuid</code>\nActions: " +
		"oferta, visita, habi-paga-todo, cliente-paga-tramites"

	EventsUsage       = "Usage: /events <code>session_id</code>"
	EventsUnavailable = "Events are stored only with the queue analytics backend"

	// Telegram rejects longer messages, so only the newest events are listed.
	maxListedEvents = 30
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, StartMessage)
}

func (h *Handler) OnLookup(ctx *th.Context, msg telego.Message) error {
	return h.lookup(ctx, msg, value.ByExternalID)
}

func (h *Handler) OnLookupID(ctx *th.Context, msg telego.Message) error {
	return h.lookup(ctx, msg, value.ByInternalID)
}

func (h *Handler) lookup(ctx *th.Context, msg telego.Message, mode value.LookupMode) error {
	args := commandArgs(msg.Text)
	if len(args) < 1 {
		return h.sendHTML(ctx, msg.Chat.ID, html.EscapeString(mode.MissingKeyMessage()))
	}

	record := h.deals.Lookup(ctx, args[0], mode)

	return h.sendHTML(ctx, msg.Chat.ID, DealText(args[0], mode, record))
}

func (h *Handler) OnLink(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) < 2 { //nolint:mnd
		return h.sendHTML(ctx, msg.Chat.ID, LinkUsage)
	}

	action, err := value.ParseContactAction(args[0])
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, LinkUsage)
	}

	record := h.deals.Lookup(ctx, args[1], value.ByExternalID)

	return h.sendHTML(ctx, msg.Chat.ID, LinkText(record, action))
}

func (h *Handler) OnEvents(ctx *th.Context, msg telego.Message) error {
	if h.events == nil {
		return h.sendHTML(ctx, msg.Chat.ID, EventsUnavailable)
	}

	args := commandArgs(msg.Text)
	if len(args) < 1 {
		return h.sendHTML(ctx, msg.Chat.ID, EventsUsage)
	}

	events, err := h.events.ListBySession(ctx, args[0])
	if err != nil {
		logger(ctx).Error("events.ListBySession", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, "Could not load events, see logs")
	}

	return h.sendHTML(ctx, msg.Chat.ID, EventsText(args[0], events))
}

// EventsText lists a session's events, oldest first, keeping the newest
// maxListedEvents.
func EventsText(sessionID string, events []entity.AnalyticsEvent) string {
	if len(events) == 0 {
		return fmt.Sprintf("No events for <code>%s</code>", html.EscapeString(sessionID))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "<b>Session</b> <code>%s</code>: %d events", html.EscapeString(sessionID), len(events))

	if len(events) > maxListedEvents {
		fmt.Fprintf(&b, ", newest %d", maxListedEvents)
		events = events[len(events)-maxListedEvents:]
	}

	for _, e := range events {
		fmt.Fprintf(&b, "\n%s %s", e.OccurredAt.UTC().Format(time.TimeOnly), html.EscapeString(e.Name))

		if e.Value != nil {
			fmt.Fprintf(&b, " = %d", *e.Value)
		}
	}

	return b.String()
}

// DealText renders a resolved record for operators.
func DealText(key string, mode value.LookupMode, record entity.DealRecord) string {
	view := landing.NewView(record)

	advisor := "unavailable"
	if view.ContactAvailable {
		advisor = html.EscapeString(view.ContactHandle)
	}

	return fmt.Sprintf(
		"<b>Deal</b> <code>%s</code> (%s)\nPrice: %s\nAdvisor: %s",
		html.EscapeString(key),
		mode,
		html.EscapeString(view.PriceFormatted),
		advisor,
	)
}

// LinkText renders the chat link a CTA would open.
func LinkText(record entity.DealRecord, action value.ContactAction) string {
	link, ok := landing.ContactURL(landing.CTAHandle(record, action), action)
	if !ok {
		return fmt.Sprintf("No advisor for <b>%s</b>", action)
	}

	return fmt.Sprintf("<b>%s</b>\n%s", action, html.EscapeString(link))
}

// commandArgs drops the command itself.
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	return fields[1:]
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
