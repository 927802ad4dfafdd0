package reading

import (
	"fmt"
	"strings"

	"glas-taro/internal/deck"
)

func (o *Orchestrator) formatResult(userID int64, spread deck.SpreadType, question string, cards []deck.DrawnCard, text string, degraded bool) string {
	var b strings.Builder
	b.WriteString(o.texts.Textf(userID, "result_title", o.texts.SpreadName(userID, spread)))
	b.WriteString("\n\n")
	if question != "" {
		b.WriteString(o.texts.Textf(userID, "result_question", question))
		b.WriteString("\n\n")
	}
	b.WriteString(o.texts.Text(userID, "result_cards"))
	b.WriteString("\n")
	for i, c := range cards {
		fmt.Fprintf(&b, "%d. %s: %s (%s)", i+1, c.Position, c.Name, o.orientation(userID, c))
		if degraded {
			fmt.Fprintf(&b, " — %s", c.Meaning())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if degraded {
		b.WriteString(o.texts.Text(userID, "degraded_reading"))
	} else {
		b.WriteString(o.texts.Text(userID, "result_reading"))
		b.WriteString("\n")
		b.WriteString(text)
	}
	b.WriteString("\n\n")
	b.WriteString(o.texts.Text(userID, "result_blessing"))
	return b.String()
}

func (o *Orchestrator) formatDaily(userID int64, card deck.DrawnCard, guidance string) string {
	var b strings.Builder
	b.WriteString(o.texts.Text(userID, "daily_title"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "🎴 %s (%s)\n\n", card.Name, o.orientation(userID, card))
	b.WriteString(o.texts.Text(userID, "daily_guidance"))
	b.WriteString("\n")
	b.WriteString(guidance)
	return b.String()
}

func (o *Orchestrator) formatCardStudy(userID int64, card deck.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎴 %s\n\n", card.Name)
	fmt.Fprintf(&b, "• %s: %s\n", o.texts.Text(userID, "upright"), card.Upright)
	fmt.Fprintf(&b, "• %s: %s", o.texts.Text(userID, "reversed"), card.Reversed)
	return b.String()
}

func (o *Orchestrator) orientation(userID int64, c deck.DrawnCard) string {
	if c.Orientation == deck.Reversed {
		return o.texts.Text(userID, "reversed")
	}
	return o.texts.Text(userID, "upright")
}
