package domain

// Reel is a single mindful content card shown in the carousel.
type Reel struct {
	ID     string
	Title  string
	Prompt string
	Anchor string
	// Gradient holds the background colour stops, first to last.
	// The state machine never looks at it.
	Gradient []string
}

// Deck is the fixed, ordered list of reels the rotator cycles through.
type Deck []Reel

// DefaultDeck returns the built-in set of five reels.
func DefaultDeck() Deck {
	return Deck{
		{
			ID:       "stretch",
			Title:    "60-Second Reset",
			Prompt:   "Stand tall, reach for the ceiling, then fold forward and breathe.",
			Anchor:   "Movement keeps the doom-scroll away",
			Gradient: []string{"#4937FF", "#8A5DFF", "#FCA2FF"},
		},
		{
			ID:       "hydrate",
			Title:    "Hydrate + Reflect",
			Prompt:   "Sip water while naming three wins from today.",
			Anchor:   "Micro wins beat micro scrolls",
			Gradient: []string{"#0099F7", "#00D4FF", "#6EF8FF"},
		},
		{
			ID:       "breathe",
			Title:    "Box Breathing",
			Prompt:   "Inhale 4, hold 4, exhale 4, hold 4. Repeat five rounds.",
			Anchor:   "Reels can wait – your nervous system can't",
			Gradient: []string{"#02AAB0", "#00CDAC"},
		},
		{
			ID:       "vision",
			Title:    "Vision Reset",
			Prompt:   "Look 20ft away, trace a square with your eyes, repeat twice.",
			Anchor:   "Focus forward, not just on the feed",
			Gradient: []string{"#FF5858", "#F857A6"},
		},
		{
			ID:       "journal",
			Title:    "Mini Journal",
			Prompt:   "Type or speak one thing you're grateful for right now.",
			Anchor:   "Gratitude > infinite scroll",
			Gradient: []string{"#FF9966", "#FF5E62"},
		},
	}
}

// At returns the reel at index i, wrapping around the deck in both directions.
func (d Deck) At(i int) Reel {
	if len(d) == 0 {
		return Reel{}
	}
	return d[wrapIndex(i, len(d))]
}

// Find returns the reel with the given ID.
func (d Deck) Find(id string) (Reel, bool) {
	for _, r := range d {
		if r.ID == id {
			return r, true
		}
	}
	return Reel{}, false
}

// Titles returns the reel titles in deck order.
func (d Deck) Titles() []string {
	titles := make([]string, len(d))
	for i, r := range d {
		titles[i] = r.Title
	}
	return titles
}

// GradientEnds returns the first and last colour stop of the reel gradient.
func (r Reel) GradientEnds() (from, to string) {
	if len(r.Gradient) == 0 {
		return "", ""
	}
	return r.Gradient[0], r.Gradient[len(r.Gradient)-1]
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
