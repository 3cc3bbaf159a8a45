package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo"
	"ai-todo-backend/internal/todo/gate"
	"ai-todo-backend/internal/todo/prompt"
	"ai-todo-backend/pkg/datemath"
	"ai-todo-backend/pkg/gemini"
)

// Parse validates raw text, splits it into task segments, and runs the
// extraction pipeline per segment. Multi-segment input fans out
// concurrently; results keep input order and the first failure cancels the
// outstanding sibling calls and fails the whole batch.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input todo.ParseInput) (todo.ParseOutput, error) {
	res, err := gate.Validate(input.Text)
	if err != nil {
		uc.l.Infof(ctx, "Parse: input rejected by gate: user=%s err=%v", sc.UserID, err)
		return todo.ParseOutput{}, err
	}

	// One reference instant per request; every segment sees the same table.
	anchors := datemath.Resolve(uc.now())

	if !res.Multiple {
		uc.l.Infof(ctx, "Parse: single task: user=%s len=%d", sc.UserID, len(res.Segments[0]))

		draft, err := uc.parseSegment(ctx, res.Segments[0], anchors)
		if err != nil {
			return todo.ParseOutput{}, err
		}
		return todo.ParseOutput{Items: []model.TaskDraft{draft}}, nil
	}

	uc.l.Infof(ctx, "Parse: %d tasks: user=%s", len(res.Segments), sc.UserID)

	drafts := make([]model.TaskDraft, len(res.Segments))
	g, gctx := errgroup.WithContext(ctx)
	for i, seg := range res.Segments {
		i, seg := i, seg
		g.Go(func() error {
			draft, err := uc.parseSegment(gctx, seg, anchors)
			if err != nil {
				return fmt.Errorf("segment %d: %w", i+1, err)
			}
			drafts[i] = draft
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return todo.ParseOutput{}, err
	}

	return todo.ParseOutput{Multiple: true, Items: drafts}, nil
}

// parseSegment runs compose → generate → repair for one segment.
func (uc *implUseCase) parseSegment(ctx context.Context, segment string, anchors datemath.Anchors) (model.TaskDraft, error) {
	doc := prompt.BuildParsePrompt(segment, anchors)

	resp, err := uc.llm.GenerateContent(ctx, &gemini.Request{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: doc}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     parseTemperature,
			MaxOutputTokens: parseMaxOutputTokens,
		},
	})
	if err != nil {
		return model.TaskDraft{}, fmt.Errorf("generation failed: %w", err)
	}

	return uc.repairDraft(ctx, resp.Text(), segment, anchors.Today)
}
