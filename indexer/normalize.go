package indexer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/dmhyfeed/feed"
	"github.com/sp0x/dmhyfeed/indexer/formatting"
	"github.com/sp0x/dmhyfeed/indexer/search"
)

// DefaultFormattedSize is used when no size token can be found in an entry.
const DefaultFormattedSize = "0 MB"

// parseFragment normalizes a single feed entry. A panic anywhere in the
// extraction chain is converted to an error so the caller can drop just
// this entry.
func (p *Provider) parseFragment(fragment string) (record *search.TorrentRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = fmt.Errorf("entry extraction failed: %v", r)
		}
	}()

	title := formatting.StripMarkup(feed.ExtractTag(fragment, "title"))
	magnet := feed.ExtractMagnet(fragment)
	description := formatting.StripMarkup(feed.ExtractTag(fragment, "description"))
	// The informal layout is <blurb> | <size> | <misc> | <hash>, but the
	// tracker doesn't guarantee it, so every field is recovered by pattern.
	parts := strings.Split(description, "|")

	formattedSize := DefaultFormattedSize
	if token, found := formatting.FindSizeToken(parts); found {
		formattedSize = token
	}

	infoHash := formatting.MagnetInfoHash(magnet)
	if infoHash == "" {
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if formatting.IsInfoHash(trimmed) {
				infoHash = strings.ToLower(trimmed)
				break
			}
		}
	}

	info := p.parser.Parse(title)
	episode := search.UnknownEpisode
	if len(info.EpisodeNumbers) > 0 {
		if n, convErr := strconv.Atoi(strings.TrimSpace(info.EpisodeNumbers[0])); convErr == nil {
			episode = n
		}
	}

	record = &search.TorrentRecord{
		Name:          title,
		PublishedAt:   parsePubDate(feed.ExtractTag(fragment, "pubDate")),
		SizeBytes:     formatting.SizeStrToBytes(formattedSize),
		FormattedSize: formattedSize,
		Seeders:       search.UnknownCount,
		Leechers:      search.UnknownCount,
		Downloads:     search.UnknownCount,
		PageLink:      strings.TrimSpace(feed.ExtractTag(fragment, "link")),
		DownloadURL:   "",
		MagnetLink:    magnet,
		InfoHash:      infoHash,
		Resolution:    info.VideoResolution,
		Episode:       episode,
		ReleaseGroup:  info.ReleaseGroup,
		IsBatch:       len(info.EpisodeNumbers) > 1,
		IsBestRelease: false,
		Confirmed:     false,
	}
	return record, nil
}

// parsePubDate parses the feed's publish date. Unparseable dates yield the
// zero time, callers can check IsZero.
func parsePubDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		log.WithFields(log.Fields{"date": raw}).Debug("Could not parse entry publish date")
		return time.Time{}
	}
	return parsed
}
