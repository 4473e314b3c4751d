package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSalutation(t *testing.T) {
	tests := []struct {
		text string
		want Salutation
	}{
		{"안녕하세요", SalutationGreeting},
		{"하이 미미", SalutationGreeting},
		{"반가워!", SalutationGreeting},
		{"잘 가", SalutationFarewell},
		{"그럼 안녕", SalutationFarewell}, // farewell wins over the contained greeting
		{"안녕, 다음에 또 봐", SalutationFarewell},
		{"크롬 열어줘", SalutationNone},
		{"", SalutationNone},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSalutation(tt.text))
		})
	}
}

func TestSalutationString(t *testing.T) {
	assert.Equal(t, "greeting", SalutationGreeting.String())
	assert.Equal(t, "farewell", SalutationFarewell.String())
	assert.Equal(t, "none", SalutationNone.String())
}

func TestIsThanks(t *testing.T) {
	assert.True(t, IsThanks("정말 고맙습니다"))
	assert.True(t, IsThanks("  감사해요 "))
	assert.True(t, IsThanks("정말 고마워"))
	assert.True(t, IsThanks("고마워요"))
	assert.True(t, IsThanks("고마운 마음이야"))
	assert.False(t, IsThanks("배고파"))
}

func TestIsRecommendRequest(t *testing.T) {
	assert.True(t, IsRecommendRequest("다른거 추천해줘"))
	assert.True(t, IsRecommendRequest("재추천 부탁해"))
	assert.False(t, IsRecommendRequest("추천해줘"))
}

func TestIsEmotionRelated(t *testing.T) {
	for _, text := range []string{"기분이 나빠", "나빠", "오늘 너무 우울해", "스트레스 받아", "기분이좋아", "STRESS 말고 스트레스"} {
		assert.True(t, IsEmotionRelated(text), text)
	}
	for _, text := range []string{"크롬 열어줘", "오늘 날씨 어때", ""} {
		assert.False(t, IsEmotionRelated(text), text)
	}
}

func TestEmotionKeywordsAreNonEmpty(t *testing.T) {
	assert.Greater(t, len(emotionKeywords), 200)
	for _, kw := range emotionKeywords {
		assert.NotEmpty(t, kw)
	}
}
