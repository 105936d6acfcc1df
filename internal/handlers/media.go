package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dncarrero/videoclub-bot/internal/events"
	"github.com/dncarrero/videoclub-bot/internal/messages"
	"github.com/dncarrero/videoclub-bot/internal/metrics"
	pkgs "github.com/dncarrero/videoclub-bot/internal/packages"
	"github.com/dncarrero/videoclub-bot/internal/utils"
	"github.com/dncarrero/videoclub-bot/types"
)

// HandleCoverPhoto stores a captioned photo as the uploader's pending cover.
// Photos with no caption are not part of the upload flow and are ignored.
func (h *Handlers) HandleCoverPhoto(ctx context.Context, b *bot.Bot, ev events.Event) {
	if strings.TrimSpace(ev.Caption) == "" {
		return
	}
	if err := h.packages.BeginUpload(ev.UserID, ev.PhotoFileID, ev.Caption); err != nil {
		h.log.Error().Err(err).Int64("user_id", ev.UserID).Msg("failed to store pending cover")
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    ev.ChatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    ev.ChatID,
		Text:      messages.CoverReceived(ev.Caption),
		ParseMode: messages.ParseModeHTML,
	})
}

// HandleVideo pairs the video with the uploader's pending cover, creates the
// package and broadcasts the teaser to every known chat.
func (h *Handlers) HandleVideo(ctx context.Context, b *bot.Bot, ev events.Event) {
	id, pkg, err := h.packages.CompleteUpload(ev.UserID, ev.VideoFileID)
	if err != nil {
		text := messages.ErrorDefault()
		if errors.Is(err, pkgs.ErrNoPendingCover) {
			text = messages.VideoWithoutCover()
		} else {
			h.log.Error().Err(err).Int64("user_id", ev.UserID).Msg("failed to create package")
		}
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    ev.ChatID,
			Text:      text,
			ParseMode: messages.ParseModeHTML,
		})
		return
	}
	metrics.PackagesCreatedTotal.Inc()

	chats := h.state.KnownChats()
	delivered := h.broadcast(ctx, b, id, pkg, chats)

	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    ev.ChatID,
		Text:      messages.PackageCreated(pkg.Caption, delivered, len(chats)),
		ParseMode: messages.ParseModeHTML,
	})
}

// broadcast fans the cover out to every known chat, best effort. A failed
// delivery is logged and the loop moves on; there is no retry.
func (h *Handlers) broadcast(ctx context.Context, b *bot.Bot, id string, pkg types.ContentPackage, chats []int64) int {
	kb := utils.BuildInlineKeyboard([]utils.Button{
		{Text: messages.BtnWatchVideo, CallbackData: "video_" + id},
	})
	delivered := 0
	for _, chatID := range chats {
		_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      chatID,
			Photo:       &models.InputFileString{Data: pkg.CoverFileID},
			Caption:     messages.Escape(pkg.Caption),
			ParseMode:   messages.ParseModeHTML,
			ReplyMarkup: &kb,
		})
		if err != nil {
			metrics.BroadcastFailuresTotal.Inc()
			h.log.Warn().Err(err).Int64("chat_id", chatID).Str("package_id", id).
				Msg("broadcast delivery failed")
			continue
		}
		delivered++
	}
	h.log.Info().Str("package_id", id).Int("delivered", delivered).Int("chats", len(chats)).
		Msg("package broadcast")
	return delivered
}

// HandleVideoRequest runs the gated delivery path for a "video_<id>" press.
func (h *Handlers) HandleVideoRequest(ctx context.Context, b *bot.Bot, ev events.Event, packageID string) {
	pkg, missing, verdict := h.gate.Check(ctx, ev.UserID, packageID)

	switch verdict {
	case VerdictNotFound:
		metrics.ViewsDeniedTotal.WithLabelValues("not_found").Inc()
		_ = h.answerCallback(ctx, b, ev.CallbackID, "")
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    ev.ChatID,
			Text:      messages.ContentUnavailable(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	case VerdictNotSubscribed:
		metrics.ViewsDeniedTotal.WithLabelValues("not_subscribed").Inc()
		_ = h.answerCallback(ctx, b, ev.CallbackID, "")
		kb := h.joinKeyboard()
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      ev.ChatID,
			Text:        messages.NotSubscribed(missing),
			ParseMode:   messages.ParseModeHTML,
			ReplyMarkup: &kb,
		})
		return
	case VerdictQuotaExceeded:
		metrics.ViewsDeniedTotal.WithLabelValues("quota").Inc()
		_ = h.answerCallback(ctx, b, ev.CallbackID, "")
		kb := h.upsellKeyboard()
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      ev.ChatID,
			Text:        messages.QuotaExceeded(h.entitlements.FreeLimit()),
			ParseMode:   messages.ParseModeHTML,
			ReplyMarkup: &kb,
		})
		return
	}

	if _, err := h.entitlements.RegisterView(ev.UserID); err != nil {
		h.log.Error().Err(err).Int64("user_id", ev.UserID).Msg("failed to register view")
		_ = h.answerCallback(ctx, b, ev.CallbackID, "")
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    ev.ChatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}
	metrics.ViewsServedTotal.Inc()

	_ = h.answerCallback(ctx, b, ev.CallbackID, "")
	_, err := b.SendVideo(ctx, &bot.SendVideoParams{
		ChatID:         ev.ChatID,
		Video:          &models.InputFileString{Data: pkg.VideoFileID},
		Caption:        messages.Escape(pkg.Caption),
		ParseMode:      messages.ParseModeHTML,
		ProtectContent: true,
	})
	if err != nil {
		h.log.Error().Err(err).Str("package_id", packageID).Int64("chat_id", ev.ChatID).
			Msg("video delivery failed")
	}
}
