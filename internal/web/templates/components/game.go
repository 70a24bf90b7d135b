// Package components renders the pieces of the game screen. Every letter
// and word element carries its ID in data-id so the client can match
// elements across re-renders.
package components

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/wordshop/internal/model"
)

// DraftPlaceholder is shown in the empty draft while letters remain
const DraftPlaceholder = "Type a word"

// writer collects the first write error so markup can be emitted in a run.
// raw takes literal markup only; every value goes through esc.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// GamePath builds a path under the game route for word
func GamePath(word string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, url.PathEscape(word))
	for _, p := range parts {
		segments = append(segments, url.PathEscape(p))
	}
	return "/" + strings.Join(segments, "/")
}

// Game renders the whole play area: board, draft, pool and controls
func Game(word string, state model.GameState) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<div id="game" class="game" data-word="`, esc(word), `" data-key-action="`, esc(GamePath(word, "key")), `">`)
		board(w, word, state.Board)
		draft(w, word, state)
		pool(w, word, state.Pool)
		if !state.PoolExhausted() {
			w.raw(`<form method="post" action="`, esc(GamePath(word, "shuffle")), `" class="scramble-form">`,
				`<button type="submit" class="scramble">Scramble</button></form>`)
		}
		w.raw(`</div>`)
		return w.err
	})
}

func board(w *writer, word string, words []model.Word) {
	w.raw(`<section id="board" class="words" data-order-action="`, esc(GamePath(word, "board", "order")), `">`)
	for i, wd := range words {
		id := string(wd.ID)
		w.raw(`<div class="word" draggable="true" data-id="`, esc(id), `">`)
		for _, l := range wd.Letters {
			w.raw(`<span class="tile" data-id="`, esc(string(l.ID)), `">`, esc(string(l.Letter)), `</span>`)
		}
		if i > 0 {
			moveButton(w, word, id, "left", "\u2190", "Move left")
		}
		if i < len(words)-1 {
			moveButton(w, word, id, "right", "\u2192", "Move right")
		}
		w.raw(`<form method="post" action="`, esc(GamePath(word, "board", id, "uncommit")), `" class="inline">`,
			`<button type="submit" class="dismiss" aria-label="Take apart">&times;</button></form>`)
		w.raw(`</div>`)
	}
	w.raw(`</section>`)
}

func moveButton(w *writer, word, id, dir, label, title string) {
	w.raw(`<form method="post" action="`, esc(GamePath(word, "board", id, "move")), `" class="inline">`,
		`<input type="hidden" name="dir" value="`, esc(dir), `">`,
		`<button type="submit" class="move move-`, esc(dir), `" aria-label="`, esc(title), `">`, esc(label), `</button></form>`)
}

func draft(w *writer, word string, state model.GameState) {
	w.raw(`<section id="draft" class="current-word" data-id="`, esc(string(state.Draft.ID)), `">`)
	switch {
	case !state.Draft.IsEmpty():
		for _, l := range state.Draft.Letters {
			letterButton(w, GamePath(word, "draft", string(l.ID)), l)
		}
		w.raw(`<form method="post" action="`, esc(GamePath(word, "commit")), `" class="inline">`,
			`<button type="submit" class="return" aria-label="Add word">&#9166;</button></form>`)
	case !state.PoolExhausted():
		w.raw(`<div class="current-word__placeholder">`, esc(DraftPlaceholder), `</div>`)
	}
	w.raw(`</section>`)
}

func pool(w *writer, word string, letters []model.Letter) {
	w.raw(`<section id="pool" class="letters">`)
	for _, l := range letters {
		letterButton(w, GamePath(word, "pool", string(l.ID)), l)
	}
	w.raw(`</section>`)
}

func letterButton(w *writer, action string, l model.Letter) {
	w.raw(`<form method="post" action="`, esc(action), `" class="inline">`,
		`<button type="submit" class="letter" data-id="`, esc(string(l.ID)), `">`, esc(string(l.Letter)), `</button></form>`)
}
