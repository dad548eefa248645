package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/internal/service"
	"anoa.com/makanlist/internal/store"
)

// SuggestionAgent periodically asks the LLM for a dining suggestion per
// user, based on the restaurants they track, and drops the result into
// the activity log as an ai_suggestion entry.
type SuggestionAgent struct {
	cron     *cron.Cron
	store    *store.Store
	llm      service.LLMProvider
	schedule string
}

func NewSuggestionAgent(st *store.Store, llm service.LLMProvider, schedule string) *SuggestionAgent {
	return &SuggestionAgent{
		cron:     cron.New(),
		store:    st,
		llm:      llm,
		schedule: schedule,
	}
}

func (a *SuggestionAgent) Start() {
	if a.llm == nil {
		zap.L().Info("suggestion agent disabled, no LLM provider configured")
		return
	}

	_, err := a.cron.AddFunc(a.schedule, func() {
		if err := a.RunJob(); err != nil {
			zap.L().Error("suggestion agent job failed", zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Error("failed to schedule suggestion agent", zap.Error(err))
		return
	}
	a.cron.Start()
	zap.L().Info("suggestion agent started", zap.String("schedule", a.schedule))
}

func (a *SuggestionAgent) Stop() {
	a.cron.Stop()
}

func (a *SuggestionAgent) RunJob() error {
	ctx := context.Background()

	var failed int
	for _, user := range a.store.Users() {
		if err := a.suggestForUser(ctx, user); err != nil {
			zap.L().Warn("suggestion failed for user", zap.Int("user_id", user.ID), zap.Error(err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d suggestion jobs failed", failed)
	}
	return nil
}

func (a *SuggestionAgent) suggestForUser(ctx context.Context, user *model.User) error {
	restaurants := a.store.GetRestaurantsByUser(user.ID)
	if len(restaurants) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("You suggest restaurants to revisit. Based on the places this user tracks, ")
	sb.WriteString("pick one and write a single friendly sentence suggesting it for their next meal.\n")
	sb.WriteString("Tracked restaurants:\n")
	for _, r := range restaurants {
		fmt.Fprintf(&sb, "- %s", r.Name)
		if r.Cuisine != nil {
			fmt.Fprintf(&sb, " (%s)", *r.Cuisine)
		}
		sb.WriteString("\n")
	}

	suggestion, err := a.llm.GenerateText(ctx, sb.String())
	if err != nil {
		return err
	}
	suggestion = strings.TrimSpace(suggestion)
	if suggestion == "" {
		return nil
	}

	a.store.CreateActivity(user.ID, model.AISuggestionPayload{Suggestion: suggestion})
	return nil
}
