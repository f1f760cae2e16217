// Package words provides the circular word deck that decorations are drawn
// from, together with helpers to build it from word lists or piped text.
package words

import (
	"math/rand/v2"

	"gitlab.com/tinyland/lab/bh3/display/metrics"
)

// Deck is a circular sequence of words. Take hands out words in order and
// starts over at the beginning once every word has been dealt.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	words  []string
	cursor int
}

// NewDeck creates a Deck holding the given words in order.
func NewDeck(words ...string) *Deck {
	d := &Deck{}
	d.Extend(words...)
	return d
}

// Take returns the word under the cursor and advances it, wrapping to the
// first word at the end. On an empty deck it returns "", false.
func (d *Deck) Take() (string, bool) {
	if len(d.words) == 0 {
		return "", false
	}
	if d.cursor >= len(d.words) {
		d.cursor = 0
	}
	w := d.words[d.cursor]
	d.cursor = (d.cursor + 1) % len(d.words)
	return w, true
}

// Clear empties the deck and resets the cursor.
func (d *Deck) Clear() {
	d.words = nil
	d.cursor = 0
}

// Extend appends words to the end of the deck.
func (d *Deck) Extend(words ...string) {
	d.words = append(d.words, words...)
}

// Replace swaps the deck contents for words, discarding everything dealt so far.
func (d *Deck) Replace(words []string) {
	d.Clear()
	d.Extend(words...)
}

// Shuffle permutes the deck using rng and resets the cursor.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.words), func(i, j int) {
		d.words[i], d.words[j] = d.words[j], d.words[i]
	})
	d.cursor = 0
}

// Len returns the number of words in the deck.
func (d *Deck) Len() int {
	return len(d.words)
}

// Words returns a copy of the deck contents in dealing order, starting from
// the first word regardless of the cursor.
func (d *Deck) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// FilterMinLength returns the words that are at least minLength code points
// long. The input slice is not modified.
func FilterMinLength(words []string, minLength int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if metrics.RawLength(w) >= minLength {
			out = append(out, w)
		}
	}
	return out
}
