package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Letter is a letter tile as returned by the API
type Letter struct {
	ID     string `json:"id"`
	Letter string `json:"letter"`
}

// Word is the draft or a committed word
type Word struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Letters []Letter `json:"letters"`
}

// Session is a game session as returned by the API
type Session struct {
	ID            string   `json:"id"`
	Source        string   `json:"source"`
	Pool          []Letter `json:"pool"`
	Draft         Word     `json:"draft"`
	Board         []Word   `json:"board"`
	PoolExhausted bool     `json:"pool_exhausted"`
}

// HealthResult is the health endpoint response
type HealthResult struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter writing to out and errOut
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s Session) {
	w := o.out
	_, _ = fmt.Fprintf(w, "Session: %s\n", s.ID)
	_, _ = fmt.Fprintf(w, "Word:    %s\n", s.Source)

	_, _ = fmt.Fprintln(w, "Board:")
	if len(s.Board) == 0 {
		_, _ = fmt.Fprintln(w, "  (empty)")
	}
	for _, word := range s.Board {
		_, _ = fmt.Fprintf(w, "  %-4s %s\n", word.ID, word.Text)
	}

	draft := s.Draft.Text
	if draft == "" {
		draft = "_"
	}
	_, _ = fmt.Fprintf(w, "Draft:   %s (%s)\n", draft, s.Draft.ID)

	if s.PoolExhausted {
		_, _ = fmt.Fprintln(w, "Pool:    (all letters used)")
		return
	}
	tiles := make([]string, 0, len(s.Pool))
	for _, l := range s.Pool {
		tiles = append(tiles, fmt.Sprintf("%s[%s]", l.Letter, l.ID))
	}
	_, _ = fmt.Fprintf(w, "Pool:    %s\n", strings.Join(tiles, " "))
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.out, "Status:   %s\n", h.Status)
	_, _ = fmt.Fprintf(o.out, "Sessions: %d\n", h.Sessions)
}
