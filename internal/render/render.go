// Package render produces the self-contained HTML timeline document.
// Everything the page needs (styles, filter script) is inlined so the
// result works from a file:// URL with no network.
package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/starford/jera/internal/models"
	"github.com/starford/jera/internal/timeline"
)

// urlPattern finds bare URLs in already-escaped text.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// statOrder fixes how metrics appear on a card.
var statOrder = []struct {
	key   string
	label string
}{
	{models.StatReplies, "Replies"},
	{models.StatReshares, "Reposts"},
	{models.StatQuotes, "Quotes"},
	{models.StatLikes, "Likes"},
	{models.StatBookmarks, "Bookmarks"},
	{models.StatViews, "Views"},
}

type pageView struct {
	Label string
	Count int
	Tags  []string
	Items []cardView
}

type cardView struct {
	Avatar      string
	DisplayName string
	Handle      string
	Permalink   string
	DateDisplay string
	Lang        string
	Body        template.HTML
	Hashtags    []string
	TagAttr     string
	Search      string
	Mentions    []string
	Attachments []attachmentView
	Stats       []statView
}

type attachmentView struct {
	Path string
	Kind string
	Alt  string
}

type statView struct {
	Key   string
	Label string
	Value string
}

// Timeline renders a complete HTML document for the page. The output
// is a pure function of the input: rendering the same page twice
// yields byte-identical documents.
func Timeline(p timeline.Page) (string, error) {
	view := pageView{
		Label: p.Label,
		Count: len(p.Items),
		Tags:  p.Tags,
		Items: make([]cardView, 0, len(p.Items)),
	}
	for _, it := range p.Items {
		view.Items = append(view.Items, newCardView(it))
	}

	var buf bytes.Buffer
	if err := timelineTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}
	return buf.String(), nil
}

func newCardView(it timeline.Item) cardView {
	card := cardView{
		Avatar:      avatarInitial(it.AuthorName),
		DisplayName: it.AuthorName,
		Handle:      it.AuthorHandle,
		Permalink:   it.Permalink,
		DateDisplay: it.DateDisplay,
		Lang:        it.Lang,
		Body:        formatBody(it.Content),
		Hashtags:    it.Hashtags,
		TagAttr:     strings.Join(it.Hashtags, ","),
		Search:      it.Search,
		Mentions:    it.Mentions,
	}
	for _, att := range it.Attachments {
		card.Attachments = append(card.Attachments, attachmentView{
			Path: att.Path,
			Kind: string(att.Type),
			Alt:  att.AltText,
		})
	}
	for _, s := range statOrder {
		v := it.Stats[s.key]
		if v == 0 {
			continue
		}
		card.Stats = append(card.Stats, statView{
			Key:   s.key,
			Label: s.label,
			Value: groupThousands(v),
		})
	}
	return card
}

// formatBody turns raw post text into display HTML: escape, then wrap
// bare URLs in anchors, then newlines to <br>. Escaping runs first, so
// the matched URL text embeds directly into the anchor with no second
// escaping pass.
func formatBody(text string) template.HTML {
	if text == "" {
		return ""
	}
	escaped := html.EscapeString(text)
	linked := urlPattern.ReplaceAllString(escaped, `<a href="${0}" target="_blank">${0}</a>`)
	return template.HTML(strings.ReplaceAll(linked, "\n", "<br>"))
}

// avatarInitial returns the display name's first rune, upper-cased.
func avatarInitial(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// groupThousands renders 1234567 as 1,234,567.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
