package events

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func privateMsg() *models.Message {
	return &models.Message{
		ID:   10,
		From: &models.User{ID: 1},
		Chat: models.Chat{ID: 100, Type: models.ChatTypePrivate},
	}
}

func TestClassifyCommand(t *testing.T) {
	msg := privateMsg()
	msg.Text = "/start@MyBot hello"
	ev := Classify(&models.Update{Message: msg})

	assert.Equal(t, KindCommand, ev.Kind)
	assert.Equal(t, "/start", ev.Command)
	assert.Equal(t, int64(1), ev.UserID)
	assert.Equal(t, int64(100), ev.ChatID)
	assert.False(t, ev.IsGroup())
}

func TestClassifyPhotoPicksLargestSize(t *testing.T) {
	msg := privateMsg()
	msg.Caption = "Movie X"
	msg.Photo = []models.PhotoSize{
		{FileID: "small", FileSize: 100},
		{FileID: "big", FileSize: 9000},
		{FileID: "medium", FileSize: 500},
	}
	ev := Classify(&models.Update{Message: msg})

	assert.Equal(t, KindPhoto, ev.Kind)
	assert.Equal(t, "big", ev.PhotoFileID)
	assert.Equal(t, "Movie X", ev.Caption)
}

func TestClassifyVideo(t *testing.T) {
	msg := privateMsg()
	msg.Video = &models.Video{FileID: "vid-1"}
	ev := Classify(&models.Update{Message: msg})

	assert.Equal(t, KindVideo, ev.Kind)
	assert.Equal(t, "vid-1", ev.VideoFileID)
}

func TestClassifyCallback(t *testing.T) {
	ev := Classify(&models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb-1",
			From: models.User{ID: 7},
			Data: "  video_1787929200 ",
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{
					ID:   55,
					Chat: models.Chat{ID: -200, Type: models.ChatTypeSupergroup},
				},
			},
		},
	})

	assert.Equal(t, KindCallback, ev.Kind)
	assert.Equal(t, "video_1787929200", ev.CallbackData)
	assert.Equal(t, "cb-1", ev.CallbackID)
	assert.Equal(t, int64(7), ev.UserID)
	assert.Equal(t, int64(-200), ev.ChatID)
	assert.Equal(t, 55, ev.MessageID)
	assert.True(t, ev.IsGroup())
}

func TestClassifyPreCheckout(t *testing.T) {
	ev := Classify(&models.Update{
		PreCheckoutQuery: &models.PreCheckoutQuery{
			ID:             "pc-1",
			From:           &models.User{ID: 7},
			InvoicePayload: "premium_plan",
		},
	})

	assert.Equal(t, KindPreCheckout, ev.Kind)
	assert.Equal(t, "pc-1", ev.PreCheckoutID)
	assert.Equal(t, "premium_plan", ev.PaymentPayload)
}

func TestClassifySuccessfulPayment(t *testing.T) {
	msg := privateMsg()
	msg.SuccessfulPayment = &models.SuccessfulPayment{
		InvoicePayload: "premium_plan",
		Currency:       "XTR",
		TotalAmount:    150,
	}
	ev := Classify(&models.Update{Message: msg})

	assert.Equal(t, KindPayment, ev.Kind)
	assert.Equal(t, "premium_plan", ev.PaymentPayload)
	assert.Equal(t, "XTR", ev.PaymentCurrency)
	assert.Equal(t, 150, ev.PaymentTotal)
}

func TestClassifyGroupText(t *testing.T) {
	msg := privateMsg()
	msg.Chat = models.Chat{ID: -300, Type: models.ChatTypeGroup}
	msg.Text = "hola"
	ev := Classify(&models.Update{Message: msg})

	assert.Equal(t, KindText, ev.Kind)
	assert.True(t, ev.IsGroup())
}

func TestClassifyNil(t *testing.T) {
	assert.Equal(t, KindUnknown, Classify(nil).Kind)
	assert.Equal(t, KindUnknown, Classify(&models.Update{}).Kind)
}
