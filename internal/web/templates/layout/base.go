// Package layout holds the page shell shared by every web page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string
	Message string
}

// PageData is the data every page needs for the shell
type PageData struct {
	Title string
	Flash *FlashMessage
}

// Base wraps body in the HTML document shell
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Wordshop"
		if data.Title != "" {
			title = data.Title + " | Wordshop"
		}

		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<link rel="stylesheet" href="/static/style.css">`+
			`<script src="/static/app.js" defer></script>`+
			`</head><body><main class="container">`); err != nil {
			return err
		}

		if data.Flash != nil {
			if err := Flash(*data.Flash).Render(ctx, w); err != nil {
				return err
			}
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Flash renders a flash notice
func Flash(flash FlashMessage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="flash flash-`+templ.EscapeString(flash.Type)+`" role="status">`+
			templ.EscapeString(flash.Message)+`</div>`)
		return err
	})
}
