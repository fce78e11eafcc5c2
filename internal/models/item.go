// Package models defines the domain types for Jera.
package models

import (
	"strings"
	"time"
)

// MediaType classifies an attachment for rendering.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaFile  MediaType = "file"
)

// Attachment is a media file on disk that belongs to an item.
type Attachment struct {
	Path    string    `json:"path"` // relative to the page directory, forward slashes
	Type    MediaType `json:"type"`
	AltText string    `json:"alt_text,omitempty"`
}

// Item is one post reconciled from every sidecar record that shares
// its id. String fields keep whatever the first contributing record
// said; later records only fill gaps.
type Item struct {
	ID           string           `json:"id"`
	AuthorHandle string           `json:"author_handle"`
	AuthorName   string           `json:"author_name"`
	Content      string           `json:"content,omitempty"`
	DateRaw      string           `json:"date,omitempty"`
	Lang         string           `json:"lang,omitempty"`
	Permalink    string           `json:"permalink,omitempty"`
	Hashtags     []string         `json:"hashtags,omitempty"`
	Mentions     []string         `json:"mentions,omitempty"`
	Stats        map[string]int64 `json:"stats,omitempty"`
	Attachments  []Attachment     `json:"attachments,omitempty"`
}

// Stat keys an Item may carry. An absent key means the source records
// never reported that metric.
const (
	StatReplies   = "replies"
	StatReshares  = "reshares"
	StatQuotes    = "quotes"
	StatLikes     = "likes"
	StatBookmarks = "bookmarks"
	StatViews     = "views"
)

// dateLayouts covers the timestamp shapes gallery-dl writes, most
// common first. Z0700 also accepts a literal Z.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	time.RFC3339,
}

// Date parses DateRaw. ok is false when the raw value is empty or
// matches none of the known layouts; callers treat that as "undated".
func (it Item) Date() (time.Time, bool) {
	raw := strings.TrimSpace(it.DateRaw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
