package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo"
	"ai-todo-backend/internal/todo/prompt"
	"ai-todo-backend/pkg/datemath"
	"ai-todo-backend/pkg/gemini"
)

// Analyze summarizes a todo collection for the given period. An empty
// collection short-circuits with canned copy; no generation call is made.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input todo.AnalyzeInput) (model.Analysis, error) {
	if input.Todos == nil {
		return model.Analysis{}, todo.ErrInvalidTodos
	}
	if !input.Period.Valid() {
		return model.Analysis{}, todo.ErrInvalidPeriod
	}

	if len(input.Todos) == 0 {
		summary := emptySummaryToday
		if input.Period == model.PeriodWeek {
			summary = emptySummaryWeek
		}
		return model.Analysis{
			Summary:         summary,
			UrgentTasks:     []string{},
			Insights:        []string{emptyInsight},
			Recommendations: []string{emptyRecommendation},
		}, nil
	}

	uc.l.Infof(ctx, "Analyze: user=%s period=%s todos=%d", sc.UserID, input.Period, len(input.Todos))

	anchors := datemath.Resolve(uc.now())
	doc := prompt.BuildAnalyzePrompt(input.Todos, input.Period, anchors)

	resp, err := uc.llm.GenerateContent(ctx, &gemini.Request{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: doc}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     analyzeTemperature,
			MaxOutputTokens: analyzeMaxOutputTokens,
		},
	})
	if err != nil {
		return model.Analysis{}, fmt.Errorf("generation failed: %w", err)
	}

	return uc.repairAnalysis(ctx, resp.Text(), len(input.Todos))
}

// repairAnalysis parses the model's analysis JSON and fills defaults for
// any field the model left out.
func (uc *implUseCase) repairAnalysis(ctx context.Context, rawText string, todoCount int) (model.Analysis, error) {
	cleaned := stripCodeFence(rawText)

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		uc.l.Errorf(ctx, "repairAnalysis: unparseable model output: raw=%q err=%v", rawText, err)
		return model.Analysis{}, fmt.Errorf("%w: %v", todo.ErrMalformedGeneration, err)
	}

	if analysis.Summary == "" {
		analysis.Summary = fmt.Sprintf(defaultSummaryTemplate, todoCount)
	}
	if analysis.UrgentTasks == nil {
		analysis.UrgentTasks = []string{}
	}
	if len(analysis.Insights) == 0 {
		analysis.Insights = []string{defaultInsight}
	}
	if len(analysis.Recommendations) == 0 {
		analysis.Recommendations = []string{defaultRecommendation}
	}

	return analysis, nil
}
