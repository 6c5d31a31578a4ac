package feed

import (
	"testing"
)

func TestSplitItems(t *testing.T) {
	type args struct {
		body string
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"Empty body should yield no fragments", args{""}, 0},
		{"Header only feeds should yield no fragments", args{"<rss><channel><title>feed</title></channel></rss>"}, 0},
		{"Single entry should yield one fragment", args{"<channel><title>x</title><item><title>a</title></item>"}, 1},
		{"Multiple entries should each yield a fragment", args{"<channel><item><title>a</title></item><item><title>b</title></item><item><title>c</title></item>"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitItems(tt.args.body); len(got) != tt.want {
				t.Errorf("SplitItems() returned %d fragments, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSplitItems_DropsChannelHeader(t *testing.T) {
	body := "<channel><title>HEADER</title><item><title>entry</title></item>"
	fragments := SplitItems(body)
	if len(fragments) != 1 {
		t.Fatalf("SplitItems() returned %d fragments, want 1", len(fragments))
	}
	if got := ExtractTag(fragments[0], "title"); got != "entry" {
		t.Errorf("first fragment title = %q, want %q", got, "entry")
	}
}

func TestExtractTag(t *testing.T) {
	type args struct {
		fragment string
		tag      string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"Plain tag bodies should be extracted", args{"<title>Some Show - 05</title>", "title"}, "Some Show - 05"},
		{"CDATA bodies should be extracted", args{"<description><![CDATA[magnet stuff | 1.5GB]]></description>", "description"}, "magnet stuff | 1.5GB"},
		{"CDATA should win over a plain body of the same tag", args{"<title><![CDATA[wrapped]]></title><title>plain</title>", "title"}, "wrapped"},
		{"CDATA bodies spanning lines should be extracted", args{"<description><![CDATA[line one\nline two]]></description>", "description"}, "line one\nline two"},
		{"Plain matches should be non-greedy", args{"<title>first</title><title>second</title>", "title"}, "first"},
		{"Missing tags should yield an empty string", args{"<title>abc</title>", "description"}, ""},
		{"Empty fragments should yield an empty string", args{"", "title"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTag(tt.args.fragment, tt.args.tag); got != tt.want {
				t.Errorf("ExtractTag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractMagnet(t *testing.T) {
	type args struct {
		fragment string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"Magnet enclosures should be extracted",
			args{`<enclosure url="magnet:?xt=urn:btih:abc" length="1" type="application/x-bittorrent"/>`},
			"magnet:?xt=urn:btih:abc",
		},
		{
			"Attributes before url should not break extraction",
			args{`<enclosure type="application/x-bittorrent" url="magnet:?xt=urn:btih:abc"/>`},
			"magnet:?xt=urn:btih:abc",
		},
		{
			"Entity references should be unescaped",
			args{`<enclosure url="magnet:?xt=urn:btih:abc&amp;tr=http://tracker"/>`},
			"magnet:?xt=urn:btih:abc&tr=http://tracker",
		},
		{
			"Non-magnet enclosures should be ignored",
			args{`<enclosure url="http://example.org/file.torrent"/>`},
			"",
		},
		{"Fragments without enclosures should yield an empty string", args{"<title>abc</title>"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMagnet(tt.args.fragment); got != tt.want {
				t.Errorf("ExtractMagnet() = %v, want %v", got, tt.want)
			}
		})
	}
}
