package titles

import (
	"reflect"
	"testing"
)

func TestReleaseParser_Parse(t *testing.T) {
	type args struct {
		title string
	}
	parser := NewParser()
	tests := []struct {
		name string
		args args
		want Info
	}{
		{
			"Scene style names should yield episode, resolution and group",
			args{"The.Expanse.S01E07.1080p.WEB.x264-NTb"},
			Info{EpisodeNumbers: []string{"7"}, VideoResolution: "1080p", ReleaseGroup: "NTb"},
		},
		{
			"Episode spans should yield both endpoints",
			args{"Some Show 01-12 Complete 720p"},
			Info{EpisodeNumbers: []string{"01", "12"}, VideoResolution: "720p"},
		},
		{
			"Titles without episodes should yield no episode numbers",
			args{"Some Movie 2019 1080p BluRay x264-SPARKS"},
			Info{VideoResolution: "1080p", ReleaseGroup: "SPARKS"},
		},
		{
			"Empty titles should yield an empty result",
			args{""},
			Info{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.Parse(tt.args.title); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReleaseParser_Parse_NeverPanics(t *testing.T) {
	parser := NewParser()
	inputs := []string{
		"",
		"|||",
		"<<<>>>",
		"\x00\xff garbage \n\t",
		"magnet:?xt=urn:btih:abcdef0123456789abcdef0123456789abcdef01",
	}
	for _, input := range inputs {
		_ = parser.Parse(input)
	}
}
