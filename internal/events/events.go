package events

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

type Kind string

const (
	KindCommand     Kind = "command"
	KindText        Kind = "text"
	KindPhoto       Kind = "photo"
	KindVideo       Kind = "video"
	KindCallback    Kind = "callback"
	KindPreCheckout Kind = "pre_checkout"
	KindPayment     Kind = "payment"
	KindUnknown     Kind = "unknown"
)

// Event is the typed, transport-independent view of a Telegram update. The
// router dispatches on it instead of poking at the raw update.
type Event struct {
	Kind     Kind
	UserID   int64
	ChatID   int64
	ChatType models.ChatType

	MessageID int

	Command string
	Text    string
	Caption string

	PhotoFileID string
	VideoFileID string

	CallbackID   string
	CallbackData string

	PreCheckoutID   string
	PaymentPayload  string
	PaymentCurrency string
	PaymentTotal    int
}

// Classify maps an update to an Event. It is a pure function; no API calls,
// no state.
func Classify(update *models.Update) Event {
	if update == nil {
		return Event{Kind: KindUnknown}
	}

	if update.CallbackQuery != nil {
		ev := Event{
			Kind:         KindCallback,
			UserID:       update.CallbackQuery.From.ID,
			CallbackID:   update.CallbackQuery.ID,
			CallbackData: strings.TrimSpace(update.CallbackQuery.Data),
		}
		if msg := update.CallbackQuery.Message.Message; msg != nil {
			ev.ChatID = msg.Chat.ID
			ev.ChatType = msg.Chat.Type
			ev.MessageID = msg.ID
		} else if msg := update.CallbackQuery.Message.InaccessibleMessage; msg != nil {
			ev.ChatID = msg.Chat.ID
			ev.ChatType = msg.Chat.Type
		}
		return ev
	}

	if update.PreCheckoutQuery != nil {
		return Event{
			Kind:           KindPreCheckout,
			UserID:         update.PreCheckoutQuery.From.ID,
			PreCheckoutID:  update.PreCheckoutQuery.ID,
			PaymentPayload: strings.TrimSpace(update.PreCheckoutQuery.InvoicePayload),
		}
	}

	msg := update.Message
	if msg == nil {
		return Event{Kind: KindUnknown}
	}

	ev := Event{
		ChatID:    msg.Chat.ID,
		ChatType:  msg.Chat.Type,
		MessageID: msg.ID,
		Text:      msg.Text,
		Caption:   msg.Caption,
	}
	if msg.From != nil {
		ev.UserID = msg.From.ID
	}

	switch {
	case msg.SuccessfulPayment != nil:
		ev.Kind = KindPayment
		ev.PaymentPayload = strings.TrimSpace(msg.SuccessfulPayment.InvoicePayload)
		ev.PaymentCurrency = strings.TrimSpace(msg.SuccessfulPayment.Currency)
		ev.PaymentTotal = msg.SuccessfulPayment.TotalAmount
	case len(msg.Photo) > 0:
		ev.Kind = KindPhoto
		ev.PhotoFileID = bestPhoto(msg.Photo).FileID
	case msg.Video != nil:
		ev.Kind = KindVideo
		ev.VideoFileID = msg.Video.FileID
	case strings.HasPrefix(msg.Text, "/"):
		ev.Kind = KindCommand
		ev.Command = parseCommand(msg.Text)
	case msg.Text != "":
		ev.Kind = KindText
	default:
		ev.Kind = KindUnknown
	}
	return ev
}

func bestPhoto(sizes []models.PhotoSize) models.PhotoSize {
	best := sizes[0]
	for i := 1; i < len(sizes); i++ {
		if sizes[i].FileSize > best.FileSize {
			best = sizes[i]
		}
	}
	return best
}

// parseCommand extracts "/start" from "/start@SomeBot arg".
func parseCommand(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return ""
	}
	cmd := fields[0]
	if strings.Contains(cmd, "@") {
		cmd = strings.SplitN(cmd, "@", 2)[0]
	}
	return cmd
}

// IsGroup reports whether the event came from a group chat.
func (e Event) IsGroup() bool {
	return e.ChatType == models.ChatTypeGroup || e.ChatType == models.ChatTypeSupergroup
}
