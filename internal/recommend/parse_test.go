package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecommendation(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		want         Recommendation
		wantComplete bool
	}{
		{
			name:         "all three labels",
			text:         "기분 요약: 우울\n추천 음식: 들깨수제비\n추천 이유: 따뜻한 국물이 마음을 달래줘요.",
			want:         Recommendation{Mood: "우울", Food: "들깨수제비", Reason: "따뜻한 국물이 마음을 달래줘요."},
			wantComplete: true,
		},
		{
			name: "mood only",
			text: "기분 요약: 우울",
			want: Recommendation{Mood: "우울"},
		},
		{
			name: "ignores chatter and indentation",
			text: "분석 결과입니다.\n  기분 요약:  스트레스 \n\n추천 음식: 황태해장국\n끝!",
			want: Recommendation{Mood: "스트레스", Food: "황태해장국"},
		},
		{
			name: "nothing recognised",
			text: "I cannot help with that.",
			want: Recommendation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRecommendation(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantComplete, got.Complete())
		})
	}
}
