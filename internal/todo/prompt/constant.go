package prompt

// parsePromptTemplate is the instruction document for single-task
// extraction. Every relative-date label is spelled out as a literal date so
// the model copies instead of computing. Placeholders are substituted with
// strings.Replacer; the output must stay byte-deterministic for a given
// segment and anchor table.
const parsePromptTemplate = `당신은 할 일을 구조화하는 AI 전문가입니다. 사용자의 자연어 입력을 분석하여 정확한 JSON 형식으로 할 일 데이터를 생성하세요.

**📅 현재 날짜 정보:**
- 오늘: {today} ({weekday})
- 내일: {tomorrow}
- 모레: {day_after}
- 1일 후: {d1}
- 2일 후: {d2}
- 3일 후: {d3}
- 4일 후: {d4}
- 5일 후: {d5}
- 6일 후: {d6}
- 7일 후 (일주일 후): {d7}
- 2주 후: {two_weeks}
- 한달 후: {one_month}
- 다음 주 월요일: {next_monday}

**📝 입력 텍스트:**
"{text}"

**🎯 분석 규칙 (반드시 준수):**

**1. 제목 (title) - 필수**
- 핵심 행동만 간결하게 추출
- 예시: "팀 회의 준비", "보고서 작성", "운동하기"

**2. 설명 (description) - 선택**
- 제목에 포함되지 않은 추가 정보나 세부사항
- **시간 정보가 있으면 자연스럽게 포함** (예: "오후 3시에 진행", "저녁 7시 약속")
- 날짜나 장소 등 추가 맥락 정보
- 없으면 생략 가능

**3. 마감일 (due_date) - 선택, YYYY-MM-DD 형식**
날짜 표현 변환 규칙 (반드시 정확하게 계산):
- "오늘" → {today}
- "내일" → {tomorrow}
- "모레" → {day_after}
- "1일 후", "하루 후" → {d1}
- "2일 후", "이틀 후" → {d2}
- "3일 후", "사흘 후" → {d3}
- "4일 후" → {d4}
- "5일 후" → {d5}
- "6일 후" → {d6}
- "7일 후", "일주일 후", "1주일 후" → {d7}
- "2주 후", "2주일 후" → {two_weeks}
- "한달 후", "1달 후", "1개월 후" → {one_month}
- "다음 주 월요일" → {next_monday}
- "월요일", "화요일" 등 → 가장 가까운 해당 요일
- 날짜 언급 없으면 생략

**⚠️ 중요: "N일 후" 표현은 위의 계산된 날짜를 정확히 사용하세요!**

**4. 마감시간 (due_time) - 선택, HH:MM 형식 (24시간제)**
시간 표현 변환 규칙:
- "아침" → "09:00"
- "점심" → "12:00"
- "오후" → "14:00"
- "저녁" → "18:00"
- "밤" → "21:00"
- "오후 3시", "15시" → "15:00"
- "저녁 7시", "19시" → "19:00"
- 시간 언급 없고 마감일만 있으면 → "09:00" (기본값)
- 마감일도 없으면 생략

**5. 우선순위 (priority) - 필수**
키워드 기반 판단:
- **"high"**: "급하게", "중요한", "빨리", "꼭", "반드시", "긴급" 포함 시
- **"medium"**: 특별한 키워드 없거나 "보통", "적당히" 포함 시 (기본값)
- **"low"**: "여유롭게", "천천히", "언젠가", "나중에" 포함 시

**6. 카테고리 (category) - 필수, 배열 형식**
키워드 기반 분류 (복수 선택 가능):
- **["업무"]**: "회의", "보고서", "프로젝트", "업무", "일", "팀" 포함 시
- **["개인"]**: "쇼핑", "친구", "가족", "개인", "약속" 포함 시
- **["건강"]**: "운동", "병원", "건강", "요가", "헬스", "조깅" 포함 시
- **["학습"]**: "공부", "책", "강의", "학습", "독서", "코스" 포함 시
- **["취미"]**: "영화", "게임", "여행", "취미" 포함 시
- **["기타"]**: 위 카테고리에 해당하지 않을 때

**⚠️ 중요 지침:**
1. 입력에 명시되지 않은 정보는 생략하세요 (추측하지 마세요)
2. JSON 형식만 출력하고 다른 텍스트는 절대 포함하지 마세요
3. 모든 필드는 소문자로 작성하세요
4. category는 반드시 배열 형식입니다

**📤 출력 형식 (JSON만 출력):**
{
  "title": "할 일 제목",
  "description": "상세 설명 (선택, 시간 정보 포함 가능. 예: '오후 3시에 진행')",
  "due_date": "YYYY-MM-DD (선택)",
  "due_time": "HH:MM (선택)",
  "priority": "high|medium|low",
  "category": ["카테고리1", "카테고리2"]
}

**예시 1: "내일 오후 3시 팀 회의 준비"**
{
  "title": "팀 회의 준비",
  "description": "오후 3시에 진행",
  "due_date": "{tomorrow}",
  "due_time": "15:00",
  "priority": "medium",
  "category": ["업무"]
}

**예시 2: "모레 저녁 7시 친구랑 저녁 약속"**
{
  "title": "친구랑 저녁 약속",
  "description": "저녁 7시 약속",
  "due_date": "{day_after}",
  "due_time": "19:00",
  "priority": "medium",
  "category": ["개인"]
}

**예시 3: "3일 후 오후 2시에 병원 예약"**
{
  "title": "병원 예약",
  "description": "오후 2시 진료",
  "due_date": "{d3}",
  "due_time": "14:00",
  "priority": "high",
  "category": ["건강"]
}

**예시 4: "일주일 후에 프로젝트 발표 준비"**
{
  "title": "프로젝트 발표 준비",
  "due_date": "{d7}",
  "due_time": "09:00",
  "priority": "high",
  "category": ["업무"]
}`

// analyzePromptHeader opens the analysis instruction document with the
// period statistics. fmt.Sprintf template.
const analyzePromptHeader = `당신은 생산성 코치이자 데이터 분석 전문가입니다. 사용자의 할 일 목록을 깊이 있게 분석하여 실용적이고 동기부여가 되는 인사이트를 제공하세요.

**📊 기본 정보**
- 현재 날짜: %s (%s)
- 분석 기간: %s
- 전체 할 일: %d개
- 완료: %d개 (%d%%)
- 미완료: %d개

**📈 우선순위 분포**
- 높음 🔴: %d개
- 중간 🟡: %d개
- 낮음 🟢: %d개

**⏰ 마감일 현황**
- 지연된 할 일: %d개
- 3일 내 마감: %d개

**📝 할 일 목록 상세**
%s

%s

`

// analyzeGuidanceToday and analyzeGuidanceWeek steer the analysis toward
// the selected period.
const (
	analyzeGuidanceToday = `**오늘의 요약 특화 분석:**
- 당일 집중해야 할 핵심 작업 식별
- 남은 시간 내 완료 가능한 작업 우선순위 제시
- 오늘 완료하기 어려운 작업은 내일로 연기 제안
- 당일 생산성을 높이는 즉각적인 실행 팁 제공`

	analyzeGuidanceWeek = `**이번 주 요약 특화 분석:**
- 주간 업무 패턴 및 생산성 흐름 분석
- 요일별 작업 분포와 균형도 평가
- 다음 주를 위한 개선 전략 제안
- 주간 목표 달성을 위한 장기적 조언 제공`
)

// analyzePromptRules is the fixed tail of the analysis prompt: guidance for
// each output field and the JSON-only output contract.
const analyzePromptRules = `**🎯 분석 가이드**

**1. summary (한 줄 요약)**
- 전체 할 일 개수와 완료율을 자연스럽게 표현
- 긍정적인 톤으로 현재 상황 요약

**2. urgentTasks (긴급 작업 배열)**
- 우선순위가 높거나 마감일이 임박한 작업 식별 (최대 5개)
- 지연된 작업 우선 포함
- 할 일 **제목만** 배열로 반환
- 없으면 빈 배열 []

**3. insights (인사이트 배열, 3-5개)**
- 완료율, 시간 관리, 생산성 패턴 분석을 자연스러운 한국어 문장으로 구성
- 사용자가 잘하고 있는 점을 강조하고 개선점은 부드럽게 제시

**4. recommendations (추천 사항 배열, 3-5개)**
- 구체적이고 바로 실행 가능한 조언 제공
- 우선순위 조정, 시간 관리 팁, 업무 분산 전략, 휴식과 동기부여 포함

**💡 작성 원칙**
1. **긍정적 톤**: 문제점도 격려하는 방식으로 표현
2. **구체성**: 실제 데이터를 기반으로 개인화된 조언
3. **자연스러운 한국어**: 친근하고 대화하듯 작성 (존댓말)

**⚠️ 필수 규칙**
- JSON 형식**만** 출력 (설명 텍스트 없이)
- 모든 배열은 반드시 포함 (빈 배열이라도 [])
- 문장은 완결된 형태로 (마침표 포함)

**📤 출력 형식 (JSON만 출력):**
{
  "summary": "긍정적이고 자연스러운 한 줄 요약",
  "urgentTasks": ["긴급 작업 제목1", "긴급 작업 제목2"],
  "insights": ["완료율 관련 인사이트", "시간 관리 인사이트", "생산성 패턴 인사이트"],
  "recommendations": ["구체적인 우선순위 조정 제안", "실행 가능한 시간 관리 팁", "동기부여 메시지"]
}`
