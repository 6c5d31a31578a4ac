package search

import (
	"fmt"
	"time"
)

// Sentinels for fields the feed cannot answer. The tracker publishes no
// live swarm statistics, so seeders, leechers and downloads are always
// UnknownCount, meaning "not available" rather than zero.
const (
	UnknownCount   = -1
	UnknownEpisode = -1
)

// TorrentRecord is the normalized form of one feed entry.
type TorrentRecord struct {
	Name          string
	PublishedAt   time.Time
	SizeBytes     uint64
	FormattedSize string

	Seeders   int
	Leechers  int
	Downloads int

	PageLink    string
	DownloadURL string
	MagnetLink  string
	InfoHash    string

	Resolution   string
	Episode      int
	ReleaseGroup string
	IsBatch      bool

	IsBestRelease bool
	Confirmed     bool
}

func (r *TorrentRecord) String() string {
	return fmt.Sprintf("[%s]%s", r.InfoHash, r.Name)
}

// AddedOnStr gets the publish date of this record as a string.
func (r *TorrentRecord) AddedOnStr() string {
	if r.PublishedAt.IsZero() {
		return ""
	}
	return r.PublishedAt.String()
}
