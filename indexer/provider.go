package indexer

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/dmhyfeed/feed"
	"github.com/sp0x/dmhyfeed/indexer/search"
	"github.com/sp0x/dmhyfeed/indexer/titles"
	"github.com/sp0x/dmhyfeed/requests"
)

// DefaultFeedURL is the tracker's RSS endpoint. Search appends a keyword
// parameter, latest uses it bare.
const DefaultFeedURL = "https://share.dmhy.org/topics/rss/rss.xml"

const defaultTimeout = 30 * time.Second

// Settings describes what this source is capable of.
type Settings struct {
	CanSmartSearch     bool
	SmartSearchFilters []string
	SupportsAdult      bool
	Type               string
}

// SmartSearchOptions describe a structured lookup. The tracker exposes no
// structured search surface, so smart search is unsupported.
type SmartSearchOptions struct {
	Titles     []string
	Episode    int
	Resolution string
}

// Provider is the adapter for the tracker's feed. It holds no state between
// calls, every operation is an independent fetch-and-parse.
type Provider struct {
	FeedURL string
	client  *http.Client
	parser  titles.Parser
}

// New creates a provider against the default endpoint.
func New() *Provider {
	return NewProvider(DefaultFeedURL, &http.Client{Timeout: defaultTimeout}, titles.NewParser())
}

// NewProvider creates a provider with explicit collaborators. A nil client
// or parser falls back to the defaults.
func NewProvider(feedURL string, client *http.Client, parser titles.Parser) *Provider {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if parser == nil {
		parser = titles.NewParser()
	}
	return &Provider{FeedURL: feedURL, client: client, parser: parser}
}

// Settings returns the fixed capability descriptor for this source.
func (p *Provider) Settings() Settings {
	return Settings{
		CanSmartSearch:     false,
		SmartSearchFilters: []string{},
		SupportsAdult:      true,
		Type:               "main",
	}
}

// Search fetches the keyword-filtered feed and returns the normalized
// records. Failures are logged and produce an empty slice, never an error.
func (p *Provider) Search(query string) []search.TorrentRecord {
	return p.fetchAndParse(fmt.Sprintf("%s?keyword=%s", p.FeedURL, url.QueryEscape(query)))
}

// SmartSearch is not supported by this source and always returns no records.
func (p *Provider) SmartSearch(_ SmartSearchOptions) []search.TorrentRecord {
	return []search.TorrentRecord{}
}

// Latest fetches the unfiltered feed.
func (p *Provider) Latest() []search.TorrentRecord {
	return p.fetchAndParse(p.FeedURL)
}

// InfoHash returns the record's already computed hash, no extra network I/O.
func (p *Provider) InfoHash(record *search.TorrentRecord) string {
	return record.InfoHash
}

// MagnetLink returns the record's already computed magnet URI.
func (p *Provider) MagnetLink(record *search.TorrentRecord) string {
	return record.MagnetLink
}

func (p *Provider) fetchAndParse(route string) []search.TorrentRecord {
	body, err := requests.Get(p.client, route, nil)
	if err != nil {
		log.WithFields(log.Fields{"url": route}).
			WithError(err).
			Warn("Feed fetch failed, returning no results")
		return []search.TorrentRecord{}
	}
	return p.ParseFeed(string(body))
}

// ParseFeed splits a raw feed body into entries and normalizes each one.
// An entry that fails extraction is dropped, the rest still go through.
func (p *Provider) ParseFeed(body string) []search.TorrentRecord {
	fragments := feed.SplitItems(body)
	records := make([]search.TorrentRecord, 0, len(fragments))
	for _, fragment := range fragments {
		record, err := p.parseFragment(fragment)
		if err != nil {
			log.WithError(err).Warn("Skipping malformed feed entry")
			continue
		}
		records = append(records, *record)
	}
	return records
}
