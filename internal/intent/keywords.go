package intent

// emotionKeywords is matched by containment, so overlapping entries such as
// "기분이 나빠" and "나빠" are both kept.
var emotionKeywords = []string{
	"갈등", "갈등 있어", "감사하", "감사하다", "감사한", "감사함", "고맙", "고마워",
	"고맙다", "고마운", "고마움", "고민되", "고민돼", "고민되다", "고민된", "고민됨",
	"공허하", "공허하다", "공허한", "공허함", "귀찮", "귀찮다", "귀찮아", "귀찮은",
	"귀찮음", "기대되", "기대돼", "기대되다", "기대한", "기대됨", "기뻐", "기쁘",
	"기쁘다", "기쁜", "기쁨", "기분 좋아", "기분이 좋아", "나른하", "나른하다",
	"나른한", "나른함", "당당하", "당당하다", "당당해", "당당한", "당당함", "당황하",
	"당황하다", "당황했어", "당황한", "당황함", "다정하", "다정하다", "다정해",
	"다정한", "다정함", "든든하", "든든하다", "든든해", "든든한", "든든함",
	"무덤덤하", "무덤덤하다", "무덤덤해", "무덤덤한", "무덤덤함", "무기력하",
	"무기력하다", "무기력해", "무기력한", "무기력함", "무섭", "무섭다", "무서워",
	"무서운", "무서움", "미안하", "미안하다", "미안해", "미안한", "미안함", "분하",
	"분하다", "분해", "분한", "분함", "부끄럽", "부끄럽다", "부끄러워", "부끄러운",
	"부끄러움", "불안하", "불안하다", "불안해", "불안한", "불안함", "뿌듯하",
	"뿌듯하다", "뿌듯해", "뿌듯한", "뿌듯함", "비참하", "비참하다", "비참한",
	"비참함", "사랑하", "사랑하다", "사랑해", "사랑한", "사랑함", "상실되",
	"상실되다", "상실감", "상실된", "상실됨", "설레", "설레다", "설레여", "설렌다",
	"슬프", "슬프다", "슬퍼", "슬펐어", "슬픈", "슬픔", "스트레스", "스트레스 받아",
	"스트레스 받다", "스트레스를 받은", "스트레스 받음", "싫", "싫다", "싫어", "싫은",
	"싫음", "심란하", "심란하다", "심란해", "심란한", "심란함", "신나", "신난다",
	"신났어", "신나는", "신남", "아무 느낌 없어", "애틋하", "애틋하다", "애틋해",
	"애틋한", "애틋함", "얼떨떨하", "얼떨떨하다", "얼떨떨해", "얼떨떨한", "얼떨떨함",
	"억울하", "억울하다", "억울해", "억울한", "억울함", "여유롭", "여유롭다",
	"여유로워", "여유로운", "여유로움", "연민", "우울하", "우울하다", "우울해",
	"우울한", "우울함", "웃기", "웃긴", "웃김", "위로 받고 싶다", "위로 받고 싶어",
	"위로가 필요해", "유쾌하", "유쾌하다", "유쾌해", "유쾌한", "유쾌함",
	"의기소침하", "의기소침하다", "의기소침한", "의기소침함", "이해받고 싶어",
	"자랑스럽", "자랑스럽다", "자랑스러워", "자랑스러운", "자랑스러움", "자신 있",
	"자신 있다", "자신있어", "자신감", "재미없", "재미없다", "재미없어", "재미없는",
	"재미없음", "적적하", "적적하다", "적적한", "적적함", "조마조마하",
	"조마조마하다", "조마조마해", "조마조마한", "조마조마함", "죄책감",
	"죄책감 들어", "즐겁", "즐겁다", "즐거워", "즐거운", "즐거웠", "즐거움", "지루하",
	"지루하다", "지루해", "지루한", "지루함", "지치", "지쳤", "지치다", "지쳤어",
	"지친", "지침", "진절머리", "차분하", "차분하다", "차분해", "차분한", "차분함",
	"창피하", "창피하다", "창피해", "창피한", "창피함", "초조하", "초조하다",
	"초조해", "초조한", "초조함", "칭찬받고 싶어", "편안하", "편안하다", "편안해",
	"편안한", "편안함", "평온하", "평온하다", "평온해", "평온한", "평온함", "피곤하",
	"피곤하다", "피곤해", "피곤한", "피곤함", "혼란스럽", "혼란스럽다", "혼란스러워",
	"혼란스러운", "혼란스러움", "화나", "화나다", "화났어", "화난", "화남", "흥미롭",
	"흥미롭다", "흥미로워", "흥미로운", "흥미로움", "기분이 나빠", "나빠", "나쁘다",
	"나쁜", "나쁨", "기분이 이상해", "이상해", "이상하다", "이상한", "이상함",
	"기분이 구려", "구려", "구리다", "구린", "구림", "기분이 안 좋아", "기분 별로야",
	"찝찝해", "속상해", "짜증나 죽겠어", "현타 와", "멘붕이야", "기운이 없어",
	"불편해", "허탈해", "피곤해서 아무것도 하기 싫어", "우울한 하루", "답답해",
	"억울해 죽겠어", "열받아", "터질 거 같아", "현실도피하고 싶어", "도망가고 싶어",
	"기분 좋다", "날아갈 것 같아", "행복해 죽겠어", "상쾌해", "기대돼서 잠이 안 와",
	"기분 최고", "뭔가 설레", "괜히 웃음 나와", "힐링되는 기분",
	"뭔가 잘 풀리는 느낌이야", "마음이 복잡해", "감정이 뒤죽박죽이야",
	"묘한 감정이야", "기분이 뭔가 이상해", "불안한데 기대돼", "슬픈데 편안해",
	"좋은데 무서워", "기분좋아", "기분이좋아", "기분좋다", "기분최고", "기분이최고",
	"기분나빠", "기분이나빠", "기분별로야", "기분이별로야", "기분이이상해",
	"기분이구려", "기분이뭔가이상해", "행복해죽겠어", "짜증나죽겠어",
	"억울해죽겠어", "현실도피하고싶어", "도망가고싶어",
	"피곤해서아무것도하기싫어",
}

var (
	greetingKeywords  = []string{"안녕", "하이", "안녕하세요", "반가워"}
	farewellKeywords  = []string{"잘 가", "다음에", "또 봐", "그럼 안녕", "나 갈게", "끝"}
	thanksKeywords    = []string{"고맙", "고마워", "고마운", "감사"}
	recommendKeywords = []string{"다른거 추천", "다른 추천", "다시 추천", "재추천"}
)
