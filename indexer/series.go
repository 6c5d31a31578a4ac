package indexer

import (
	log "github.com/sirupsen/logrus"
	"github.com/sp0x/mediareleaseinfo"

	"github.com/sp0x/dmhyfeed/indexer/search"
)

// FilterBySeries keeps only the records whose release title parses to the
// wanted series. Records with titles that can't be parsed are dropped too.
// An empty series means no filtering.
func FilterBySeries(records []search.TorrentRecord, series string) []search.TorrentRecord {
	if series == "" {
		return records
	}
	matched := make([]search.TorrentRecord, 0, len(records))
	for _, record := range records {
		info, err := releaseinfo.Parse(record.Name)
		if err != nil {
			log.
				WithFields(log.Fields{"title": record.Name}).
				WithError(err).
				Warn("Failed to parse release title, skipping")
			continue
		}
		if info == nil || !info.SeriesTitleInfo.Equal(series) {
			log.
				WithFields(log.Fields{"title": record.Name, "expected": series}).
				Debugf("Series filter skipping non-matching release")
			continue
		}
		matched = append(matched, record)
	}
	return matched
}
