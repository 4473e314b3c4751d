package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Short-circuit phrases, matched by exact equality after trimming.
var (
	greetingPhrases = []string{"안녕하세요", "안녕", "하이", "안녕!"}
	farewellPhrases = []string{"안녕히 가세요", "잘가", "바이"}
)

// Fast-path keywords, matched by containment.
var (
	newsKeywords  = []string{"뉴스", "주요 소식"}
	musicKeywords = []string{"노래", "음악", "곡", "뮤직", "추천해줘"}
)

// Fixed replies and queries
const (
	ReplyGreeting = "안녕하세요! 무엇을 도와드릴까요?"
	ReplyFarewell = "안녕히 가세요! 좋은 하루 보내세요."

	NewsQuery        = "오늘 뉴스"
	MusicQuerySuffix = " site:youtube.com"
)
