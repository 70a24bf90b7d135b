package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Share renders the share panel with the QR code for the word's game URL
func Share(word, gameURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<details class="share"><summary>Share</summary>`,
			`<img src="`, esc(GamePath(word, "qr.png")), `" alt="QR code for this word" width="160" height="160">`,
			`<p><a href="`, esc(gameURL), `">`, esc(gameURL), `</a></p></details>`)
		return w.err
	})
}
