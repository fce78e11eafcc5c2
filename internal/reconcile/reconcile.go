// Package reconcile folds raw sidecar records into timeline items.
// Several records can describe the same post (one per downloaded
// media file); they merge under the post's id.
package reconcile

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/starford/jera/internal/metadata"
	"github.com/starford/jera/internal/models"
)

// Entry pairs a record with the file it came from. Source drives the
// sidecar-stem attachment fallback.
type Entry struct {
	Source string
	Record metadata.Record
}

// idKeys are the accepted id fields, most specific first.
var idKeys = []string{"tweet_id", "tweetid", "id", "id_str"}

var statFields = []struct {
	key   string
	field string
}{
	{models.StatReplies, "reply_count"},
	{models.StatReshares, "retweet_count"},
	{models.StatQuotes, "quote_count"},
	{models.StatLikes, "favorite_count"},
	{models.StatBookmarks, "bookmark_count"},
	{models.StatViews, "view_count"},
}

// Fold merges entries that share an id into single items, returned in
// first-seen order. The first record naming an id fixes the item's
// author and derived fields; later records only fill an empty content
// or date, never overwrite. Every record may contribute one
// attachment, slotted by its num ordinal. Records without a usable id
// are skipped.
func Fold(dir string, entries []Entry, logger *slog.Logger) []models.Item {
	if logger == nil {
		logger = slog.Default()
	}

	items := make(map[string]*models.Item)
	var order []string
	slots := make(map[string]map[int]models.Attachment)

	for _, e := range entries {
		rec := e.Record
		id := rec.Str(idKeys...)
		if id == "" {
			logger.Debug("reconcile: record without id", slog.String("source", e.Source))
			continue
		}

		it, ok := items[id]
		if !ok {
			it = newItem(id, rec)
			items[id] = it
			order = append(order, id)
		} else {
			if it.Content == "" {
				it.Content = rec.Str("content", "text")
			}
			if it.DateRaw == "" {
				it.DateRaw = rec.Str("date")
			}
		}

		att, ok := resolveAttachment(dir, e.Source, rec)
		if !ok {
			continue
		}
		m := slots[id]
		if m == nil {
			m = make(map[int]models.Attachment)
			slots[id] = m
		}
		slot := 0
		if n, ok := rec.Int64("num"); ok {
			slot = int(n)
		}
		if slot == 0 {
			slot = len(m) + 1
		}
		m[slot] = att
	}

	out := make([]models.Item, 0, len(order))
	for _, id := range order {
		it := items[id]
		if m := slots[id]; len(m) > 0 {
			ordinals := make([]int, 0, len(m))
			for n := range m {
				ordinals = append(ordinals, n)
			}
			sort.Ints(ordinals)
			for _, n := range ordinals {
				it.Attachments = append(it.Attachments, m[n])
			}
		}
		out = append(out, *it)
	}
	return out
}

// newItem builds an item from the first record carrying its id.
func newItem(id string, rec metadata.Record) *models.Item {
	author := rec.Sub("author")
	handle := author.Str("name")
	if handle == "" {
		handle = rec.Sub("user").Str("name")
	}
	if handle == "" {
		handle = "unknown"
	}
	display := author.Str("nick", "name")
	if display == "" {
		display = handle
	}
	permalink := rec.Str("tweet_url")
	if permalink == "" {
		permalink = fmt.Sprintf("https://x.com/%s/status/%s", handle, id)
	}

	it := &models.Item{
		ID:           id,
		AuthorHandle: handle,
		AuthorName:   display,
		Content:      rec.Str("content", "text"),
		DateRaw:      rec.Str("date"),
		Lang:         rec.Str("lang"),
		Permalink:    permalink,
		Hashtags:     rec.Strings("hashtags"),
		Mentions:     mentionNames(rec["mentions"]),
	}

	stats := make(map[string]int64, len(statFields))
	for _, sf := range statFields {
		if v, ok := rec.Int64(sf.field); ok {
			stats[sf.key] = v
		}
	}
	if len(stats) > 0 {
		it.Stats = stats
	}
	return it
}

// mentionNames pulls the name field out of a mentions list. Only a
// list of objects counts; anything else yields nothing.
func mentionNames(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if name := metadata.Record(m).Str("name"); name != "" {
			out = append(out, name)
		}
	}
	return out
}
