package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/AmirH031/SamanKhojo-sub003/internal/booking"
	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(NewNotifier),
)

type Params struct {
	fx.In

	Logger logger.Logger
	Config config.IConfig
}

type notifier struct {
	logger logger.Logger
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier wires the Telegram admin channel. When no bot token is
// configured the service runs without notifications.
func NewNotifier(p Params) (booking.Notifier, error) {
	token := p.Config.GetString("bot_token_samankhojo")
	if token == "" {
		p.Logger.Warn(context.Background(), "telegram bot token is not set, admin notifications disabled")
		return &notifier{logger: p.Logger}, nil
	}

	tb, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	return &notifier{
		logger: p.Logger,
		bot:    tb,
		chatID: cast.ToInt64(p.Config.GetString("admin_chat_id")),
	}, nil
}

func (n *notifier) BookingConfirmed(ctx context.Context, b structs.BookingNotification) {
	if n.bot == nil || n.chatID == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "New booking %s\n", b.BookingID)
	if b.UserName != "" || b.UserPhone != "" {
		fmt.Fprintf(&sb, "Customer: %s %s\n", b.UserName, b.UserPhone)
	}
	fmt.Fprintf(&sb, "Shops (%d): %s\n", b.TotalShops, strings.Join(b.ShopNames, ", "))
	fmt.Fprintf(&sb, "Items: %d", b.TotalItems)

	msg := tgbotapi.NewMessage(n.chatID, sb.String())
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Warn(ctx, " err on bot.Send", zap.Error(err))
	}
}
