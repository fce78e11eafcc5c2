package reconcile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/jera/internal/metadata"
	"github.com/starford/jera/internal/models"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true, ".jfif": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true, ".mkv": true, ".m4v": true,
}

// resolveAttachment finds the media file a record describes, probing
// the naming conventions gallery-dl uses, in priority order:
//
//  1. an explicit _path or filepath hint,
//  2. filename, with the extension field appended when filename has none,
//  3. filename plus a .part suffix (interrupted download),
//  4. the sidecar's own name minus its .json suffix.
//
// The first candidate that exists on disk wins. Paths are stored
// relative to dir when possible, always with forward slashes.
func resolveAttachment(dir, source string, rec metadata.Record) (models.Attachment, bool) {
	var candidates []string

	if hint := rec.Str("_path", "filepath"); hint != "" {
		if filepath.IsAbs(hint) {
			candidates = append(candidates, filepath.Clean(hint))
		} else {
			candidates = append(candidates, filepath.Join(dir, hint))
		}
	}

	if filename := rec.Str("filename", "_filename"); filename != "" {
		base := filepath.Join(dir, filename)
		if filepath.Ext(base) == "" {
			if ext := rec.Str("extension"); ext != "" {
				base += "." + ext
			}
		}
		candidates = append(candidates, base, filepath.Join(dir, filename+".part"))
	}

	if stem := sidecarStem(source); stem != "" {
		candidates = append(candidates, filepath.Join(dir, stem))
	}

	for _, cand := range candidates {
		info, err := os.Stat(cand)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return models.Attachment{
			Path:    displayPath(dir, cand),
			Type:    classify(cand),
			AltText: rec.Str("description"),
		}, true
	}
	return models.Attachment{}, false
}

// sidecarStem strips the final extension: photo.jpg.json becomes photo.jpg.
func sidecarStem(source string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		return ""
	}
	return stem
}

// displayPath renders cand relative to dir for the page, keeping the
// full path when cand lives outside dir.
func displayPath(dir, cand string) string {
	rel, err := filepath.Rel(dir, cand)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(cand)
	}
	return filepath.ToSlash(rel)
}

// classify maps a file extension to the media kind the page renders.
func classify(path string) models.MediaType {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case imageExts[ext]:
		return models.MediaImage
	case videoExts[ext]:
		return models.MediaVideo
	default:
		return models.MediaFile
	}
}
