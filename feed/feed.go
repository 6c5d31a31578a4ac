package feed

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"
)

// The feed served by the tracker is frequently not well formed XML (raw
// ampersands and stray markup inside titles), so entries are carved out of
// the raw body instead of being fed to an XML decoder. A broken entry then
// only loses itself, not the whole document.

const itemMarker = "<item>"

var rxEnclosureMagnet = regexp.MustCompile(`<enclosure[^>]*\burl="(magnet:[^"]+)"`)

// SplitItems partitions the raw feed body into one fragment per entry.
// The first segment holds the channel header and is discarded.
func SplitItems(body string) []string {
	parts := strings.Split(body, itemMarker)
	if len(parts) <= 1 {
		return []string{}
	}
	return parts[1:]
}

type tagPatterns struct {
	cdata *regexp.Regexp
	plain *regexp.Regexp
}

var (
	tagCacheMu sync.Mutex
	tagCache   = map[string]tagPatterns{}
)

func patternsFor(tag string) tagPatterns {
	tagCacheMu.Lock()
	defer tagCacheMu.Unlock()
	if p, ok := tagCache[tag]; ok {
		return p
	}
	quoted := regexp.QuoteMeta(tag)
	p := tagPatterns{
		cdata: regexp.MustCompile(fmt.Sprintf(`(?s)<%s><!\[CDATA\[(.*?)\]\]></%s>`, quoted, quoted)),
		plain: regexp.MustCompile(fmt.Sprintf(`<%s>(.*?)</%s>`, quoted, quoted)),
	}
	tagCache[tag] = p
	return p
}

// ExtractTag returns the textual content of the given tag inside a fragment.
// CDATA wrapped bodies win over plain ones, since the tracker CDATA-wraps
// anything that may contain markup. An absent tag yields an empty string.
func ExtractTag(fragment, tag string) string {
	patterns := patternsFor(tag)
	if m := patterns.cdata.FindStringSubmatch(fragment); m != nil {
		return m[1]
	}
	if m := patterns.plain.FindStringSubmatch(fragment); m != nil {
		return m[1]
	}
	return ""
}

// ExtractMagnet scans a fragment for an enclosure whose url attribute is a
// magnet URI. Entity references are unescaped so the returned URI is usable
// as-is.
func ExtractMagnet(fragment string) string {
	m := rxEnclosureMagnet.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}
	return html.UnescapeString(m[1])
}
