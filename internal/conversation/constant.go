package conversation

// Log prefixes
const (
	LogPrefixRespond = "internal.conversation.Respond"
)

const DefaultLocation = "서울"

// Fixed replies
const (
	ReplyThanks        = "별말씀을요! 또 궁금하신 게 있으면 언제든 말씀해 주세요"
	ReplyClarify       = "죄송해요, 제가 잘 이해하지 못했어요. 혹시 지금 느끼는 기분을 '행복', '우울', '스트레스', '화남'과 같이 좀 더 명확한 감정 단어로 말씀해주실 수 있나요?"
	ReplyNotUnderstood = "해당 명령을 이해하지 못했습니다."
	ReplyApology       = "죄송해요, 지금은 답변을 드리기 어려워요. 잠시 후 다시 시도해 주세요."

	FallbackSuggestionFormat = "그렇다면 %s는 어떠세요?"
	RestaurantFoundFormat    = "%s<br><br>추천 식당: <strong>%s</strong><br>주소: %s<br>평점: %s점"
	RestaurantNotFoundFormat = "%s<br><br>아쉽지만 근처 '%s' 식당을 찾지 못했어요."
	RatingUnknown            = "정보 없음"
)

// FallbackFoods is offered when the resolver names no food for an explicit
// recommendation request.
var FallbackFoods = []string{"김밥", "떡볶이", "비빔밥", "갈비탕", "파스타", "치킨"}
