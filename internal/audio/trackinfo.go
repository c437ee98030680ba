package audio

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// TrackInfo is the display metadata of an audio file.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
}

// String returns "Title - Artist", or just the title when there is no artist.
func (t TrackInfo) String() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Title + " - " + t.Artist
}

// ReadTrackInfo reads title, artist and album from the file's ID3v2 tag.
//
// Files without a tag (plain WAV files, for example) or that cannot be read
// get their base name, without extension, as title.
func ReadTrackInfo(path string) TrackInfo {
	info := TrackInfo{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	tag, err := id3v2.Open(path, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Title", "Artist", "Album"},
	})
	if err != nil {
		return info
	}
	defer tag.Close()

	if title := strings.TrimSpace(tag.Title()); title != "" {
		info.Title = title
	}
	info.Artist = strings.TrimSpace(tag.Artist())
	info.Album = strings.TrimSpace(tag.Album())
	return info
}
