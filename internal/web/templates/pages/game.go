package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/web/templates/components"
	"github.com/mcoot/wordshop/internal/web/templates/layout"
)

// GameData is the data for the game page
type GameData struct {
	layout.PageData
	Word    string
	GameURL string
	State   model.GameState
}

// Game renders the game page
func Game(data GameData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="anagrams">`); err != nil {
			return err
		}
		if err := components.Game(data.Word, data.State).Render(ctx, w); err != nil {
			return err
		}
		if err := components.Share(data.Word, data.GameURL).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<nav class="back"><a href="/">New word</a></nav></div>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
