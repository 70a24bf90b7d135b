package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordshop/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	Word string
}

// Home renders the word entry form
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<form class="home" method="post" action="/">`+
			`<label for="word">Type a word to get started</label>`+
			`<input id="word" name="word" type="text" autocomplete="off" autofocus value="`+
			templ.EscapeString(data.Word)+`">`+
			`</form>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
