package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"glas-taro/internal/tier"
)

// handleAdmin serves the premium management commands. The caller has already
// verified the sender is the configured admin.
func (b *Bot) handleAdmin(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := strings.Fields(msg.CommandArguments())

	switch msg.Command() {
	case "grant":
		if len(args) == 0 {
			b.sendText(chatID, "usage: /grant <user id> [username]")
			return
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			b.sendText(chatID, fmt.Sprintf("bad user id %q", args[0]))
			return
		}
		m := tier.Member{ID: id}
		if len(args) > 1 {
			m.Username = strings.TrimPrefix(args[1], "@")
		}
		if err := b.tiers.Grant(m); err != nil {
			b.sendText(chatID, fmt.Sprintf("grant failed: %v", err))
			return
		}
		b.sendText(chatID, fmt.Sprintf("user %d is premium now", id))
	case "revoke":
		if len(args) == 0 {
			b.sendText(chatID, "usage: /revoke <user id>")
			return
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			b.sendText(chatID, fmt.Sprintf("bad user id %q", args[0]))
			return
		}
		if err := b.tiers.Revoke(id); err != nil {
			b.sendText(chatID, fmt.Sprintf("revoke failed: %v", err))
			return
		}
		b.sendText(chatID, fmt.Sprintf("user %d is back on the free tier", id))
	case "premium":
		members := b.tiers.List()
		if len(members) == 0 {
			b.sendText(chatID, "no premium users")
			return
		}
		var sb strings.Builder
		sb.WriteString("premium users:\n")
		for _, m := range members {
			fmt.Fprintf(&sb, "- %d", m.ID)
			if m.Username != "" {
				fmt.Fprintf(&sb, " (@%s)", m.Username)
			}
			sb.WriteString("\n")
		}
		b.sendText(chatID, sb.String())
	}
}
