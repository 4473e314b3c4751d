package classifier

import "emotion-assistant/internal/model"

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Placeholder is the degenerate output the model sometimes echoes back from
// the preamble instead of a real argument.
const Placeholder = "(query)"

// Model settings
const (
	ClassifierTemperature = 0.7
	DefaultMaxAttempts    = 3
)

// Preamble instructs the model to answer with comma separated "<keyword> <argument>" directives.
const Preamble = `당신은 매우 정확한 결정 모델입니다. 주어진 쿼리가 어떤 종류의 작업인지 판단해주세요.
예를 들어,
- 최신 정보가 필요한 경우 'realtime (쿼리)'로 응답하세요.
- 일반 대화나 정보 제공의 경우 'general (쿼리)'로 응답하세요.
- 특정 애플리케이션 실행, 닫기, 음악 재생 등 작업 요청인 경우 해당 키워드를 사용하세요.
만약 판단이 어려운 경우 'general (쿼리)'로 응답합니다.`

// fewShot is prepended to every call, before the session transcript.
var fewShot = []model.ChatMessage{
	{Role: model.RoleUser, Content: "안녕하세요?"},
	{Role: model.RoleAssistant, Content: "general 안녕하세요?"},
	{Role: model.RoleUser, Content: "피자 좋아하세요?"},
	{Role: model.RoleAssistant, Content: "general 피자 좋아하세요?"},
	{Role: model.RoleUser, Content: "크롬 열고 세종대왕에 대해 알려주세요."},
	{Role: model.RoleAssistant, Content: "open 크롬, general 세종대왕에 대해 알려주세요."},
	{Role: model.RoleUser, Content: "크롬과 파이어폭스 열어줘"},
	{Role: model.RoleAssistant, Content: "open 크롬, open 파이어폭스"},
	{Role: model.RoleUser, Content: "오늘 날짜가 뭐고, 8월 5일 오후 11시에 댄스 공연이 있다고 알려줘"},
	{Role: model.RoleAssistant, Content: "general 오늘 날짜, reminder 11:00 오후 8월 5일 댄스 공연"},
	{Role: model.RoleUser, Content: "대화 좀 해줘"},
	{Role: model.RoleAssistant, Content: "general 대화 좀 해줘"},
}

// Error messages
const (
	ErrMsgBackendFailed   = "classifier backend failed"
	ErrMsgDegenerate      = "degenerate classification, retrying"
	ErrMsgAttemptsExhaust = "attempts exhausted, falling back to general"
)
