package deck

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCatalogHas78DistinctCards(t *testing.T) {
	d := New()
	if d.Size() != 78 {
		t.Fatalf("expected 78 cards, got %d", d.Size())
	}
	seen := make(map[string]bool)
	for _, c := range d.Cards("") {
		if seen[c.ID] {
			t.Fatalf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Name == "" || c.Upright == "" || c.Reversed == "" {
			t.Fatalf("card %q has empty fields", c.ID)
		}
		if c.Arcana == ArcanaMinor && c.Suit == "" {
			t.Fatalf("minor card %q has no suit", c.ID)
		}
		if c.Arcana == ArcanaMajor && c.Suit != "" {
			t.Fatalf("major card %q has a suit", c.ID)
		}
	}
	if majors := len(d.Cards(ArcanaMajor)); majors != 22 {
		t.Fatalf("expected 22 major arcana, got %d", majors)
	}
}

func TestDrawDistinctAndOriented(t *testing.T) {
	d := New(WithRNG(rand.New(rand.NewSource(1))))
	for _, n := range []int{1, 3, 10, 78} {
		cards, err := d.Draw(n, false)
		if err != nil {
			t.Fatalf("draw %d: %v", n, err)
		}
		if len(cards) != n {
			t.Fatalf("draw %d: got %d cards", n, len(cards))
		}
		seen := make(map[string]bool)
		for _, c := range cards {
			if seen[c.ID] {
				t.Fatalf("draw %d: duplicate %q", n, c.ID)
			}
			seen[c.ID] = true
			if c.Orientation != Upright && c.Orientation != Reversed {
				t.Fatalf("draw %d: bad orientation %q", n, c.Orientation)
			}
		}
	}
}

func TestDrawBeyondDeckSize(t *testing.T) {
	d := New(WithRNG(rand.New(rand.NewSource(1))))
	if _, err := d.Draw(79, false); !errors.Is(err, ErrInsufficientDeck) {
		t.Fatalf("expected ErrInsufficientDeck, got %v", err)
	}
	if cards, err := d.Draw(79, true); err != nil || len(cards) != 79 {
		t.Fatalf("repeats allowed should not fail: cards=%d err=%v", len(cards), err)
	}
}

func TestDrawForSpreadLabels(t *testing.T) {
	d := New(WithRNG(rand.New(rand.NewSource(7))))
	for _, st := range AllSpreads() {
		cards, err := d.DrawForSpread(st)
		if err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		labels := st.Labels()
		if len(cards) != len(labels) {
			t.Fatalf("%s: got %d cards for %d labels", st, len(cards), len(labels))
		}
		for i, c := range cards {
			if c.Position != labels[i] {
				t.Fatalf("%s: position %d is %q, want %q", st, i, c.Position, labels[i])
			}
		}
	}
	if _, err := d.DrawForSpread(SpreadType("bogus")); !errors.Is(err, ErrUnknownSpread) {
		t.Fatalf("expected ErrUnknownSpread, got %v", err)
	}
}

func TestReversedProbabilityBounds(t *testing.T) {
	always := New(WithRNG(rand.New(rand.NewSource(3))), WithReversedProbability(1))
	cards, _ := always.Draw(10, false)
	for _, c := range cards {
		if c.Orientation != Reversed {
			t.Fatalf("p=1 drew upright card %q", c.ID)
		}
	}
	never := New(WithRNG(rand.New(rand.NewSource(3))), WithReversedProbability(0))
	cards, _ = never.Draw(10, false)
	for _, c := range cards {
		if c.Orientation != Upright {
			t.Fatalf("p=0 drew reversed card %q", c.ID)
		}
	}
}

func TestMeaningFor(t *testing.T) {
	d := New()
	up, err := d.MeaningFor("major_0", Upright)
	if err != nil {
		t.Fatalf("meaning: %v", err)
	}
	rev, err := d.MeaningFor("major_0", Reversed)
	if err != nil {
		t.Fatalf("meaning: %v", err)
	}
	if up == rev {
		t.Fatalf("orientation did not change meaning")
	}
	if _, err := d.MeaningFor("major_99", Upright); !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("expected ErrUnknownCard, got %v", err)
	}
}

func TestParseSpread(t *testing.T) {
	if st, err := ParseSpread("three_card"); err != nil || st != SpreadThreeCard {
		t.Fatalf("parse three_card: %v %v", st, err)
	}
	if _, err := ParseSpread("tetraktys"); !errors.Is(err, ErrUnknownSpread) {
		t.Fatalf("expected ErrUnknownSpread, got %v", err)
	}
	if n := SpreadCelticCross.CardCount(); n != 10 {
		t.Fatalf("celtic cross should need 10 cards, got %d", n)
	}
}
