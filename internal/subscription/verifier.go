package subscription

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/dncarrero/videoclub-bot/internal/metrics"
)

// MembershipAPI is the slice of the Telegram API the verifier needs.
// *bot.Bot satisfies it.
type MembershipAPI interface {
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

// Verifier checks that a user belongs to every required channel. Checks are
// re-run on every gated action; a prior pass is never cached, so leaving a
// channel revokes access on the next attempt.
type Verifier struct {
	api      MembershipAPI
	channels []string
	log      zerolog.Logger
}

func NewVerifier(api MembershipAPI, channels []string, log zerolog.Logger) *Verifier {
	return &Verifier{
		api:      api,
		channels: channels,
		log:      log,
	}
}

func (v *Verifier) Channels() []string {
	return v.channels
}

// IsSubscribedToAll reports whether the user holds member, administrator or
// creator status in every required channel, and which channels are still
// missing. An API error counts as not subscribed for that channel.
func (v *Verifier) IsSubscribedToAll(ctx context.Context, userID int64) (bool, []string) {
	missing := make([]string, 0, len(v.channels))
	for _, channel := range v.channels {
		if !v.isMember(ctx, channel, userID) {
			missing = append(missing, channel)
		}
	}
	return len(missing) == 0, missing
}

func (v *Verifier) isMember(ctx context.Context, channel string, userID int64) bool {
	member, err := v.api.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: channel,
		UserID: userID,
	})
	if err != nil {
		// Fail closed: an error is indistinguishable from "not a member".
		metrics.MembershipCheckFailures.Inc()
		v.log.Warn().Err(err).Str("channel", channel).Int64("user_id", userID).
			Msg("membership check failed")
		return false
	}
	if member == nil {
		return false
	}
	switch member.Type {
	case models.ChatMemberTypeOwner,
		models.ChatMemberTypeAdministrator,
		models.ChatMemberTypeMember:
		return true
	default:
		return false
	}
}
