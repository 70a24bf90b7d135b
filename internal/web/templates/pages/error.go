package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordshop/internal/web/templates/layout"
)

// ErrorData is the data for an error page
type ErrorData struct {
	layout.PageData
	Heading string
	Message string
}

// Error renders a full-page error with a way back to the home form
func Error(data ErrorData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="error">`+
			`<h1>`+templ.EscapeString(data.Heading)+`</h1>`+
			`<p>`+templ.EscapeString(data.Message)+`</p>`+
			`<p><a href="/">Pick a new word</a></p>`+
			`</section>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
