package gate

import (
	"strings"
	"unicode/utf8"
)

// contentRule is one rejection heuristic over the normalized input text.
// Rules run in slice order after the structural (length/segment) checks, so
// the vocabulary can grow without touching the Validate control flow.
type contentRule struct {
	name    string
	code    string
	message string
	matches func(text string) bool
}

var contentRules = []contentRule{
	{
		name:    "emoji",
		code:    CodeInvalidInput,
		message: MsgEmojiNotAllowed,
		matches: containsEmoji,
	},
	{
		name:    "digits-only",
		code:    CodeInvalidInput,
		message: MsgMeaninglessInput,
		matches: isDigitsOnly,
	},
	{
		name:    "repeated-characters",
		code:    CodeInvalidInput,
		message: MsgMeaninglessInput,
		matches: hasTripleRepeat,
	},
	{
		name:    "keyboard-mash",
		code:    CodeInvalidInput,
		message: MsgMeaninglessInput,
		matches: containsMashPattern,
	},
	{
		name:    "jamo-only",
		code:    CodeInvalidInput,
		message: MsgIncompleteSyllables,
		matches: isJamoOnly,
	},
	{
		name:    "past-date-keyword",
		code:    CodePastDateNotAllowed,
		message: MsgPastDateNotAllowed,
		matches: containsPastKeyword,
	},
}

// emojiRanges are the Unicode blocks rejected outright: emoticons, misc
// symbols and pictographs, transport, flags, dingbats, supplemental symbols.
var emojiRanges = [][2]rune{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E0, 0x1F1FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
	{0x1F900, 0x1F9FF},
	{0x1FA00, 0x1FA6F},
	{0x1FA70, 0x1FAFF},
}

// mashPatterns are adjacent-key runs on QWERTY and the 2-set Korean layout,
// plus digit runs. Matched case-insensitively as substrings.
var mashPatterns = []string{
	"qwer", "asdf", "zxcv", "qaz", "wsx", "edc",
	"ㅂㅈㄷㄱ", "ㅁㄴㅇㄹ", "ㅋㅌㅊㅍ",
	"1234", "5678", "9012",
}

// pastKeywords frame a task as already past; scheduling them is refused as
// a policy decision, not a parse failure.
var pastKeywords = []string{
	"어제", "그제", "그저께", "엊그제",
	"지난주", "지난달", "지난해", "작년",
	"yesterday", "last week", "last month", "last year",
}

func containsEmoji(text string) bool {
	for _, r := range text {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				return true
			}
		}
	}
	return false
}

func isDigitsOnly(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasTripleRepeat(text string) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func containsMashPattern(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range mashPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// isJamoOnly reports whether the text consists solely of Hangul
// compatibility jamo (ㄱ-ㅎ, ㅏ-ㅣ) with no composed syllables.
func isJamoOnly(text string) bool {
	if utf8.RuneCountInString(text) == 0 {
		return false
	}
	for _, r := range text {
		if r < 'ㄱ' || r > 'ㅣ' {
			return false
		}
	}
	return true
}

func containsPastKeyword(text string) bool {
	for _, kw := range pastKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
