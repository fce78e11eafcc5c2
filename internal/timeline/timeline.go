// Package timeline orders reconciled items and derives the
// presentation fields the page renderer consumes.
package timeline

import (
	"sort"
	"strings"
	"time"

	"github.com/starford/jera/internal/models"
)

// displayLayout is how parsed timestamps appear on cards.
const displayLayout = "02 Jan 2006 15:04"

// Item is a models.Item plus derived presentation fields.
type Item struct {
	models.Item

	// DateDisplay is the formatted timestamp, the raw date string when
	// parsing failed, or empty.
	DateDisplay string

	// Search is the lowercased haystack the page's text filter matches:
	// content, #tags, @mentions.
	Search string
}

// Page is everything the renderer needs for one timeline document.
type Page struct {
	Label string
	Items []Item
	Tags  []string
}

// Assemble sorts items newest first and derives the tag vocabulary and
// per-item display fields. Undated items sort last; ties break on id,
// descending, so identical inputs always yield identical pages.
func Assemble(label string, items []models.Item) Page {
	type keyed struct {
		item models.Item
		date time.Time
	}
	keys := make([]keyed, len(items))
	for i, it := range items {
		k := keyed{item: it}
		if d, ok := it.Date(); ok {
			k.date = d
		}
		keys[i] = k
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if !a.date.Equal(b.date) {
			return a.date.After(b.date)
		}
		return a.item.ID > b.item.ID
	})

	vocab := make(map[string]bool)
	page := Page{Label: label, Items: make([]Item, 0, len(keys))}
	for _, k := range keys {
		for _, tag := range k.item.Hashtags {
			vocab[strings.ToLower(tag)] = true
		}
		page.Items = append(page.Items, Item{
			Item:        k.item,
			DateDisplay: displayDate(k.item, k.date),
			Search:      searchText(k.item),
		})
	}
	page.Tags = make([]string, 0, len(vocab))
	for tag := range vocab {
		page.Tags = append(page.Tags, tag)
	}
	sort.Strings(page.Tags)
	return page
}

func displayDate(it models.Item, date time.Time) string {
	if !date.IsZero() {
		return date.Format(displayLayout)
	}
	return it.DateRaw
}

func searchText(it models.Item) string {
	tags := make([]string, len(it.Hashtags))
	for i, tag := range it.Hashtags {
		tags[i] = "#" + tag
	}
	mentions := make([]string, len(it.Mentions))
	for i, m := range it.Mentions {
		mentions[i] = "@" + m
	}
	parts := []string{
		it.Content,
		strings.Join(tags, " "),
		strings.Join(mentions, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
