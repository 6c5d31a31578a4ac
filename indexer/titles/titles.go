package titles

import (
	"regexp"
	"strconv"

	"github.com/moistari/rls"
)

// Info carries the metadata recovered from a release title. Any of the
// fields may be empty, a release name owes us nothing.
type Info struct {
	EpisodeNumbers  []string
	VideoResolution string
	ReleaseGroup    string
}

// Parser extracts release metadata from a title. Implementations must
// tolerate arbitrary input and never fail.
type Parser interface {
	Parse(title string) Info
}

// ReleaseParser is the default Parser, backed by the rls release name
// parser. Multi-episode spans like "01-12" are detected separately since
// rls reports a single episode number.
type ReleaseParser struct{}

func NewParser() *ReleaseParser {
	return &ReleaseParser{}
}

var rxEpisodeSpan = regexp.MustCompile(`\b(\d{1,4})\s*[-~]\s*(\d{1,4})\b`)

func (p *ReleaseParser) Parse(title string) Info {
	release := rls.ParseString(title)
	info := Info{
		VideoResolution: release.Resolution,
		ReleaseGroup:    release.Group,
	}
	if release.Episode > 0 {
		info.EpisodeNumbers = []string{strconv.Itoa(release.Episode)}
	}
	if m := rxEpisodeSpan.FindStringSubmatch(title); m != nil {
		first, _ := strconv.Atoi(m[1])
		last, _ := strconv.Atoi(m[2])
		if last > first {
			info.EpisodeNumbers = []string{m[1], m[2]}
		}
	}
	return info
}
