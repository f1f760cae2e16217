package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"

	"gitlab.com/tinyland/lab/bh3/config"
	"gitlab.com/tinyland/lab/bh3/display/canvas"
	"gitlab.com/tinyland/lab/bh3/display/color"
	"gitlab.com/tinyland/lab/bh3/display/decorate"
	"gitlab.com/tinyland/lab/bh3/display/terminal"
	"gitlab.com/tinyland/lab/bh3/mascot"
	"gitlab.com/tinyland/lab/bh3/words"
)

// renderer runs one pass of the pipeline:
//  1. Load the default word deck
//  2. Load the mascot art (pretty output only)
//  3. Build the canvas
//  4. Swap in piped words, if any
//  5. Decorate and print
type renderer struct {
	assets   fs.FS
	selected mascot.Selection
	cfg      *config.Config
	term     terminal.Metrics
	prompt   string
	stdin    io.Reader
	rng      *rand.Rand
	logger   *slog.Logger
}

func (r *renderer) render(w io.Writer) error {
	deck, err := r.defaultDeck()
	if err != nil {
		return err
	}

	var art []string
	if r.term.Pretty {
		a, err := mascot.LoadArt(r.assets, r.selected, mascot.ArtOptions{ImageCols: r.cfg.ImageCols})
		if err != nil {
			return err
		}
		art = a.Lines
	}

	c, err := canvas.Builder{Terminal: r.term, Lines: art, Prompt: r.prompt}.Build()
	if err != nil {
		return err
	}

	if !r.term.InputInteractive {
		if err := r.replaceFromStdin(deck); err != nil {
			return err
		}
	}

	d := &decorate.Decorator{
		Width:  r.term.Width,
		Pretty: r.term.Pretty,
		Rand:   r.rng,
		Words:  deck,
		Colors: color.Shuffled(r.rng, r.cfg.Palette...),
		Logger: r.logger,
	}
	d.Apply(c)

	bw := bufio.NewWriter(w)
	for _, line := range c {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write canvas: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write canvas: %w", err)
	}
	return nil
}

// defaultDeck loads the selected mascot's word list, filtered and shuffled.
// A mascot without a word list gets an empty deck.
func (r *renderer) defaultDeck() (*words.Deck, error) {
	list, err := mascot.LoadWords(r.assets, r.selected.Name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		r.logger.Warn("avator has no word list", "avator", r.selected.Name)
	}

	deck := words.NewDeck(words.FilterMinLength(list, r.cfg.MinLength)...)
	deck.Shuffle(r.rng)
	r.logger.Debug("default deck", "avator", r.selected.Name, "words", deck.Len())
	return deck, nil
}

// replaceFromStdin replaces the deck with the words piped on stdin. When no
// piped word survives the length filter the default deck is kept.
func (r *renderer) replaceFromStdin(deck *words.Deck) error {
	tokens, err := words.Tokenize(r.stdin)
	if err != nil {
		return err
	}
	piped := words.FilterMinLength(tokens, r.cfg.MinLength)
	if len(piped) == 0 {
		r.logger.Info("no piped words long enough, keeping default words",
			"tokens", len(tokens), "min_length", r.cfg.MinLength)
		return nil
	}
	deck.Replace(piped)
	r.logger.Debug("deck replaced from stdin", "words", deck.Len())
	return nil
}
