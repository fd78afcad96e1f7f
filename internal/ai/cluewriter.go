// Package ai renders planned clues into prose through a chat-completion API.
// The planner output is the contract: a rendered clue must mention everything
// its elimination rules out and must never leak the solution.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/sashabaranov/go-openai"
)

const MaxTokens = 1024

var (
	ErrEmptyCompletion = errors.NewSentinel("completion is empty")
	ErrBannedLanguage  = errors.NewSentinel("completion contains banned language")
	ErrSolutionLeaked  = errors.NewSentinel("completion names a solution element")
	ErrUngroundedClue  = errors.NewSentinel("completion does not mention an eliminated element")
)

// Meta-language that breaks the fiction or spoils the deduction outright.
var bannedPhrases = []string{
	"as an ai",
	"language model",
	"the solution is",
	"the culprit is",
	"the answer is",
}

type ClueWriter struct {
	client  *openai.Client
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewClueWriter(apiKey string, c *catalog.Catalog, logger *slog.Logger) *ClueWriter {
	return &ClueWriter{
		client:  openai.NewClient(apiKey),
		catalog: c,
		logger:  logger.With("source", "ClueWriter"),
	}
}

// Trace captures the prompt and raw response of one completion for
// debugging. It is returned to the caller instead of being parked in a
// process-wide slot, so concurrent requests cannot clobber each other.
type Trace struct {
	SystemPrompt string
	UserPrompt   string
	RawResponse  string
}

// WriteClue renders one planned clue as in-world prose and validates the
// result against the grounding and banned-language rules.
func (w *ClueWriter) WriteClue(
	ctx context.Context,
	plan *models.CampaignPlan,
	clue models.PlannedClue,
) (string, Trace, error) {
	systemPrompt, userPrompt := w.buildPrompt(plan, clue)
	trace := Trace{SystemPrompt: systemPrompt, UserPrompt: userPrompt}

	completion, err := w.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
			Model:     openai.GPT3Dot5Turbo1106,
			MaxTokens: MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		},
	)
	if err != nil {
		return "", trace, errors.Wrap(err, "create chat completion")
	}
	if len(completion.Choices) == 0 {
		return "", trace, errors.Wrap(ErrEmptyCompletion, "no choices in completion")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	trace.RawResponse = text

	if err = w.ValidateClueText(text, plan, clue); err != nil {
		return "", trace, err
	}
	return text, trace, nil
}

// buildPrompt grounds the generation in exactly what the clue eliminates and
// the auxiliary context facts the planner attached.
func (w *ClueWriter) buildPrompt(plan *models.CampaignPlan, clue models.PlannedClue) (string, string) {
	theme, _ := w.catalog.Theme(plan.ThemeID)

	var system strings.Builder
	system.WriteString("You write short in-world clues for a theft mystery deduction game. ")
	system.WriteString("Setting: " + theme.Name + ". " + strings.TrimSpace(theme.Description) + "\n")
	system.WriteString("Rules: mention every listed element by name so the player can rule it out. ")
	system.WriteString("Never state who the thief is, what was taken, where, or when. ")
	system.WriteString("Stay in character; no meta commentary.")

	names := make([]string, len(clue.Elimination.ElementIDs))
	for i, id := range clue.Elimination.ElementIDs {
		names[i] = w.catalog.ElementName(clue.Elimination.Category, id)
	}

	var user strings.Builder
	fmt.Fprintf(&user, "Clue %d of %d, act %d, tone %s.\n",
		clue.Position, len(plan.Clues), clue.Act, clue.Narrative.Tone)
	fmt.Fprintf(&user, "Delivered as a %s by a %s.\n", clue.Delivery.Type, clue.Delivery.Speaker)
	fmt.Fprintf(&user, "It must rule out these %ss: %s.\n",
		clue.Elimination.Category, strings.Join(names, ", "))
	fmt.Fprintf(&user, "Elimination mechanism: %s.\n", clue.Elimination.Type)
	contextKeys := make([]string, 0, len(clue.Elimination.Context))
	for key := range clue.Elimination.Context {
		contextKeys = append(contextKeys, key)
	}
	slices.Sort(contextKeys)
	for _, key := range contextKeys {
		fmt.Fprintf(&user, "Supporting fact (%s): %s.\n", key, clue.Elimination.Context[key])
	}
	for _, reference := range clue.Narrative.References {
		fmt.Fprintf(&user, "Nod back to what was learned in clue %d.\n", reference)
	}
	user.WriteString("Write 2-4 sentences.")

	return system.String(), user.String()
}

// ValidateClueText enforces the grounding and content rules on a rendered
// clue: non-empty, no banned meta-language, every eliminated element named,
// no solution element named.
func (w *ClueWriter) ValidateClueText(text string, plan *models.CampaignPlan, clue models.PlannedClue) error {
	if strings.TrimSpace(text) == "" {
		return errors.Wrap(ErrEmptyCompletion, "validate clue text")
	}

	lowered := strings.ToLower(text)
	for _, phrase := range bannedPhrases {
		if strings.Contains(lowered, phrase) {
			return errors.Wrap(ErrBannedLanguage, "validate clue text", slog.String("phrase", phrase))
		}
	}

	for _, id := range clue.Elimination.ElementIDs {
		name := w.catalog.ElementName(clue.Elimination.Category, id)
		if !strings.Contains(lowered, strings.ToLower(name)) {
			return errors.Wrap(ErrUngroundedClue, "validate clue text",
				slog.String("element", name), slog.Int("position", clue.Position))
		}
	}

	for _, category := range models.Categories {
		name := w.catalog.ElementName(category, plan.Solution.IDFor(category))
		if strings.Contains(lowered, strings.ToLower(name)) {
			return errors.Wrap(ErrSolutionLeaked, "validate clue text",
				slog.String("category", string(category)), slog.Int("position", clue.Position))
		}
	}
	return nil
}
