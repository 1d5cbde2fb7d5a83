// Package markdown renders the Markdown subset used by blog post content as
// a templ component: headings, lists, blockquotes, code blocks, rules, and
// inline bold/italic/code/links/images.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic      = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode  = regexp.MustCompile("`([^`]+)`")
	reLink        = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reImg         = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	reOrderedItem = regexp.MustCompile(`^\d+\.\s`)
)

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, md)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render writes the HTML representation of md to buf.
func Render(buf *bytes.Buffer, md string) {
	inPara := false
	inList := false
	inOrdered := false
	inQuote := false
	inCode := false

	closeBlocks := func() {
		if inPara {
			buf.WriteString("</p>")
			inPara = false
		}
		if inList {
			buf.WriteString("</ul>")
			inList = false
		}
		if inOrdered {
			buf.WriteString("</ol>")
			inOrdered = false
		}
		if inQuote {
			buf.WriteString("</blockquote>")
			inQuote = false
		}
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimRight(raw, "\r")

		if strings.HasPrefix(line, "```") {
			if inCode {
				buf.WriteString("</code></pre>")
				inCode = false
			} else {
				closeBlocks()
				buf.WriteString(`<pre class="code-block"><code>`)
				inCode = true
			}
			continue
		}
		if inCode {
			buf.WriteString(html.EscapeString(line))
			buf.WriteString("\n")
			continue
		}

		if strings.TrimSpace(line) == "" {
			closeBlocks()
			continue
		}

		switch {
		case strings.HasPrefix(line, "---"):
			closeBlocks()
			buf.WriteString("<hr/>")
		case strings.HasPrefix(line, "### "):
			closeBlocks()
			buf.WriteString("<h3>" + Inline(line[4:]) + "</h3>")
		case strings.HasPrefix(line, "## "):
			closeBlocks()
			buf.WriteString("<h2>" + Inline(line[3:]) + "</h2>")
		case strings.HasPrefix(line, "# "):
			closeBlocks()
			buf.WriteString("<h1>" + Inline(line[2:]) + "</h1>")
		case strings.HasPrefix(line, "- "):
			if !inList {
				closeBlocks()
				buf.WriteString("<ul>")
				inList = true
			}
			buf.WriteString("<li>" + Inline(line[2:]) + "</li>")
		case reOrderedItem.MatchString(line):
			if !inOrdered {
				closeBlocks()
				buf.WriteString("<ol>")
				inOrdered = true
			}
			buf.WriteString("<li>" + Inline(reOrderedItem.ReplaceAllString(line, "")) + "</li>")
		case strings.HasPrefix(line, "> "):
			if !inQuote {
				closeBlocks()
				buf.WriteString("<blockquote>")
				inQuote = true
			}
			buf.WriteString(Inline(line[2:]))
		default:
			if !inPara {
				closeBlocks()
				buf.WriteString("<p>")
				inPara = true
			} else {
				buf.WriteString(" ")
			}
			buf.WriteString(Inline(strings.TrimSpace(line)))
		}
	}
	closeBlocks()
	if inCode {
		buf.WriteString("</code></pre>")
	}
}

// Inline applies inline formatting (images, links, code, bold, italic) to s.
// Images must run before links: the link regex would otherwise swallow the
// ![..](..) form minus the bang.
func Inline(s string) string {
	out := html.EscapeString(strings.TrimSpace(s))
	out = reImg.ReplaceAllStringFunc(out, func(m string) string {
		match := reImg.FindStringSubmatch(m)
		src := SafeURL(match[2])
		if src == "" {
			return match[1]
		}
		return `<img alt="` + match[1] + `" src="` + src + `" loading="lazy"/>`
	})
	out = reLink.ReplaceAllStringFunc(out, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		return `<a href="` + href + `">` + match[1] + `</a>`
	})
	out = reInlineCode.ReplaceAllString(out, "<code>$1</code>")
	// Bold/italic only outside tags so URLs in href stay intact.
	out = applyOutsideTags(out, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})
	return out
}

func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
