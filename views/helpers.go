package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// component wraps a buffer-writing function as a templ.Component. All views
// in this package are written by hand against this helper.
func component(fn func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		fn(&b)
		_, err := w.Write(b.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// uploadSrc returns the public URL of an uploaded file.
func uploadSrc(filename string) string {
	return "/uploads/" + esc(filename)
}

// Money formats a price for display.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Stars renders a rating as filled/empty star characters.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// csrfField writes the hidden CSRF input every POST form must carry.
func csrfField(b *bytes.Buffer, token string) {
	fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s"/>`, esc(token))
}

// textInput writes a labeled text-like input row.
func textInput(b *bytes.Buffer, inputType, name, label, value string) {
	fmt.Fprintf(b, `<label>%s<input type="%s" name="%s" value="%s"/></label>`,
		esc(label), inputType, esc(name), esc(value))
}

// textArea writes a labeled textarea row.
func textArea(b *bytes.Buffer, name, label, value string, rows int) {
	fmt.Fprintf(b, `<label>%s<textarea name="%s" rows="%d">%s</textarea></label>`,
		esc(label), esc(name), rows, esc(value))
}

// deleteForm writes the one-button POST form used by every delete action.
func deleteForm(b *bytes.Buffer, action, csrf string) {
	fmt.Fprintf(b, `<form method="post" action="%s" class="inline">`, esc(action))
	csrfField(b, csrf)
	b.WriteString(`<button type="submit" class="danger">Delete</button></form>`)
}
