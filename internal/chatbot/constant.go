package chatbot

const (
	LogPrefixChat   = "internal.chatbot.Chat"
	LogPrefixSearch = "internal.chatbot.Search"

	ChatTemperature   = 0.7
	ChatMaxTokens     = 1024
	SearchTemperature = 0.7
	SearchMaxTokens   = 2048

	// endOfSequence is occasionally leaked by open-weight models.
	endOfSequence = "</s>"
)

const chatSystemTemplate = "안녕하세요, 저는 %s입니다. 당신은 %s이라는 이름의 AI 챗봇입니다. " +
	"*** 당신은 친절한 한국어 대화형 AI 어시스턴트입니다. *** " +
	"*** 모든 답변은 한국어로 작성해주세요. *** " +
	"*** 사용자의 질문에 대해 자연스럽고 상세한 답변을 제공합니다. ***"

const searchSystemTemplate = "안녕하세요, 저는 %s입니다. 당신은 %s이라는 이름의 고급 AI 챗봇이며, 최신 정보를 실시간으로 제공합니다. " +
	"*** 답변은 항상 전문적인 문장으로, 올바른 구두점과 문법을 사용하여 작성해주세요. *** " +
	"*** 제공된 데이터를 바탕으로 질문에 정확하게 답변해주세요. ***"

const (
	realtimeInfoTemplate = "필요시 사용할 실시간 정보:\n요일: %s\n일자: %d년 %d월 %d일\n시간: %d시 %d분 %d초\n"

	searchResultsHeader = "'%s'에 대한 구글 검색 결과:\n[start]\n"
	searchResultEntry   = "제목: %s\n설명: %s\n\n"
	searchResultsFooter = "[end]"

	searchGreetingUser      = "안녕"
	searchGreetingAssistant = "안녕하세요, 무엇을 도와드릴까요?"
)
