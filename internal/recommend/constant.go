package recommend

const (
	LogPrefixRecommend = "internal.recommend.Recommend"
)

// Labels the model is asked to prefix its three answer lines with.
const (
	LabelMood   = "기분 요약:"
	LabelFood   = "추천 음식:"
	LabelReason = "추천 이유:"
)

// Model settings
const (
	RecommendTemperature = 0.7
	RecommendMaxTokens   = 300
	DefaultRecentWindow  = 3
)

// Moods is the closed set the model must choose from.
var Moods = []string{"행복", "우울", "스트레스", "화남", "긴장", "지루함"}

// PromptTemplate args: history, text, date, time slot, moods, excluded foods.
const PromptTemplate = `**<이전 대화 내용>**
%s
**</이전 대화 내용>**

사용자의 마지막 메시지: "%s"

- 현재 시간은 %s %s입니다.
- 위 **이전 대화 내용**을 참고하여 사용자의 기분을 하나의 감정(%s)으로 분석해주세요.
- 그 감정에 어울리는 한국 음식을 추천해주세요.
- 최근 추천된 음식(%s)은 제외하고 추천해주세요.
- 흔하지 않고 특별한 음식을 추천해주세요.
- 추천 이유는 감정과 연결하여 따뜻하게 설명해주세요.

형식:
기분 요약: (감정)
추천 음식: (음식 이름)
추천 이유: (이유)`
