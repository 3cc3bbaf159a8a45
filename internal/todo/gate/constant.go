package gate

// Machine-readable rejection codes surfaced to API clients.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodePastDateNotAllowed = "PAST_DATE_NOT_ALLOWED"
)

// Structural limits.
const (
	MinSegmentRunes = 2
	MaxInputRunes   = 500
	MaxSegments     = 10
)

// User-facing rejection messages.
const (
	MsgTooShort            = "할 일은 최소 2자 이상 입력해주세요."
	MsgSegmentTooShort     = "각 할 일은 최소 2자 이상 입력해주세요."
	MsgTooManySegments     = "한 번에 최대 10개까지만 추가할 수 있습니다."
	MsgTooLong             = "할 일은 최대 500자까지 입력 가능합니다. (현재: %d자)"
	MsgEmojiNotAllowed     = "허용되지 않은 입력입니다. 이모지를 제거하고 다시 시도해주세요."
	MsgMeaninglessInput    = "잘못된 입력입니다. 의미 있는 할 일을 입력해주세요."
	MsgIncompleteSyllables = "잘못된 입력입니다. 완성된 문장을 입력해주세요."
	MsgPastDateNotAllowed  = "과거 날짜는 사용할 수 없습니다. 오늘 이후의 날짜를 입력해주세요."
)
