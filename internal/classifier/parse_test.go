package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirectives(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		want           []Directive
		wantDegenerate bool
	}{
		{
			name: "drops unknown fragments and keeps order",
			raw:  "open 크롬, blah, general 안녕",
			want: []Directive{{KindOpen, "크롬"}, {KindGeneral, "안녕"}},
		},
		{
			name: "strips newlines before splitting",
			raw:  "realtime 오늘 날씨,\n close 메모장\n",
			want: []Directive{{KindRealtime, "오늘 날씨"}, {KindClose, "메모장"}},
		},
		{
			name: "multi word keywords map to underscore kinds",
			raw:  "generate image 고양이, google search 세종대왕, youtube search 아이유",
			want: []Directive{{KindGenerateImage, "고양이"}, {KindGoogleSearch, "세종대왕"}, {KindYoutubeSearch, "아이유"}},
		},
		{
			name: "keyword without argument",
			raw:  "exit",
			want: []Directive{{KindExit, ""}},
		},
		{
			name: "nothing recognised",
			raw:  "hello, world",
			want: nil,
		},
		{
			name:           "bare placeholder",
			raw:            "(query)",
			want:           nil,
			wantDegenerate: true,
		},
		{
			name:           "placeholder argument",
			raw:            "general (query)",
			want:           []Directive{{KindGeneral, "(query)"}},
			wantDegenerate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, degenerate := ParseDirectives(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDegenerate, degenerate)
		})
	}
}

func TestParseDirectives_Idempotent(t *testing.T) {
	first, _ := ParseDirectives("open 크롬, blah, general 안녕")
	second, _ := ParseDirectives(FormatDirectives(first))
	assert.Equal(t, first, second)
}

func TestVocabularyOrder(t *testing.T) {
	keywords := make([]string, 0, len(vocabulary))
	for _, v := range vocabulary {
		keywords = append(keywords, v.keyword)
	}
	assert.Equal(t, []string{
		"exit", "general", "realtime", "open", "close", "play",
		"generate image", "system", "content", "google search", "youtube search", "reminder",
	}, keywords)
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "generate image 고양이", Directive{KindGenerateImage, "고양이"}.String())
	assert.Equal(t, "exit", Directive{Kind: KindExit}.String())
	assert.Equal(t, "open 크롬, general 안녕",
		FormatDirectives([]Directive{{KindOpen, "크롬"}, {KindGeneral, "안녕"}}))
}
