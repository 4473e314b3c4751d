package dispatcher

const (
	LogPrefixDispatch = "internal.dispatcher.Dispatch"
)

// Reply fragments
const (
	FormatOpened       = "%s을(를) 열었습니다."
	FormatClosed       = "%s을(를) 닫았습니다."
	ReplyNotUnderstood = "해당 명령을 이해하지 못했습니다."
)
