package llm

import (
	"fmt"
	"strings"

	"glas-taro/internal/deck"
)

var languageNames = map[string]string{
	"en": "English",
	"ru": "Russian",
	"zh": "Chinese",
}

func readerSystemPrompt(language string) string {
	var b strings.Builder
	b.WriteString("You are an experienced, warm tarot reader.\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Interpret the cards in their positions as one coherent story, not card by card in isolation.\n")
	b.WriteString("- Stay balanced: name both the encouraging and the cautionary side of the cards.\n")
	b.WriteString("- Never give medical, legal or financial advice and never predict specific disasters.\n")
	b.WriteString("- Keep the answer to a few short paragraphs of plain prose, no markdown headings.\n")
	if name, ok := languageNames[language]; ok && language != "en" {
		fmt.Fprintf(&b, "- Respond entirely in %s.\n", name)
	}
	return b.String()
}

func readingPrompt(req InterpretRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Spread: %s (%d cards)\n\nCards drawn:\n", req.Spread, len(req.Cards))
	for n, c := range req.Cards {
		fmt.Fprintf(&b, "%d. %s — %s (%s)\n", n+1, c.Position, c.Name, c.Orientation)
		fmt.Fprintf(&b, "   meaning: %s\n", c.Meaning())
	}
	if q := strings.TrimSpace(req.Question); q != "" {
		fmt.Fprintf(&b, "\nThe querent asks: %q\n", q)
	} else {
		b.WriteString("\nThe querent asked for general guidance without a specific question.\n")
	}
	b.WriteString("\nGive a cohesive reading of this spread.")
	return b.String()
}

func dailyPrompt(card deck.DrawnCard) string {
	return fmt.Sprintf(
		"Today's card is %s (%s), meaning: %s.\n"+
			"Give a short, encouraging guidance for the day, three or four sentences.",
		card.Name, card.Orientation, card.Meaning())
}

func explainPrompt(card deck.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the tarot card %s to a student.\n", card.Name)
	fmt.Fprintf(&b, "- arcana: %s\n", card.Arcana)
	if card.Suit != "" {
		fmt.Fprintf(&b, "- suit: %s\n", card.Suit)
	}
	fmt.Fprintf(&b, "- upright: %s\n- reversed: %s\n", card.Upright, card.Reversed)
	b.WriteString("Cover its symbolism, upright and reversed meanings, and one practical example. Keep it compact.")
	return b.String()
}
