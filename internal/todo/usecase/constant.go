package usecase

// Generation settings. Extraction runs colder than analysis: structured
// JSON output degrades fast with temperature.
const (
	parseTemperature     = 0.2
	parseMaxOutputTokens = 1024

	analyzeTemperature     = 0.3
	analyzeMaxOutputTokens = 4096
)

// TaskDraft field limits, in runes.
const (
	titleMaxRunes       = 100
	titleMinRunes       = 2
	titleFallbackRunes  = 50
	descriptionMaxRunes = 1000
)

// Canned analysis copy for an empty todo list (no generation call is made).
const (
	emptySummaryToday      = "오늘 등록된 할 일이 없습니다."
	emptySummaryWeek       = "이번 주 등록된 할 일이 없습니다."
	emptyInsight           = "새로운 할 일을 추가하여 계획을 세워보세요!"
	emptyRecommendation    = "AI 기능을 활용하여 할 일을 빠르게 추가할 수 있습니다."
	defaultInsight         = "할 일 목록을 꾸준히 관리하고 계시네요!"
	defaultRecommendation  = "오늘 하루도 화이팅하세요!"
	defaultSummaryTemplate = "총 %d개의 할 일이 있습니다."
)
