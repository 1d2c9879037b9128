package intelligence

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/llm"
)

// LLMAssistant drafts through a model client. Any model failure falls back
// to the deterministic output, so callers only see context errors.
type LLMAssistant struct {
	client llm.Client
}

func NewLLMAssistant(client llm.Client) *LLMAssistant {
	return &LLMAssistant{client: client}
}

// SelectAssistant returns a model-backed assistant when client answers,
// otherwise fallback. The bool reports whether the model is used.
func SelectAssistant(ctx context.Context, client llm.Client, fallback Assistant) (Assistant, bool) {
	if client == nil || !client.Available(ctx) {
		return fallback, false
	}
	return NewLLMAssistant(client), true
}

type suggestReply struct {
	Suggestions []string `json:"suggestions"`
}

func (a *LLMAssistant) DraftDocumentation(ctx context.Context, description string) (*Draft, error) {
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDraft,
		SystemPrompt: draftSystemPrompt,
		UserPrompt:   "Project idea:\n\n" + strings.TrimSpace(description),
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return DeterministicDraft(description), nil
	}

	draft, err := llm.ExtractJSON[Draft](resp.Text, validateDraft)
	if err != nil {
		return DeterministicDraft(description), nil
	}
	return normalizeDraft(&draft, description), nil
}

func (a *LLMAssistant) Suggest(ctx context.Context, section *domain.DocumentSection) ([]string, error) {
	if section == nil {
		return DeterministicSuggestions(), nil
	}
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   fmt.Sprintf("Section %q:\n\n%s", section.Title, section.Body),
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return DeterministicSuggestions(), nil
	}

	reply, err := llm.ExtractJSON[suggestReply](resp.Text, func(r suggestReply) error {
		if len(r.Suggestions) == 0 {
			return errors.New("no suggestions")
		}
		return nil
	})
	if err != nil {
		return DeterministicSuggestions(), nil
	}
	return reply.Suggestions, nil
}

func validateDraft(d Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if len(d.Sections) == 0 {
		return errors.New("at least one section is required")
	}
	for i, s := range d.Sections {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("section %d has no title", i)
		}
	}
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeDraft makes a model draft safe to store: slug ids unique per
// idea, known document labels only, and the submitted text as summary body
// when the model left it empty.
func normalizeDraft(d *Draft, description string) *Draft {
	var docs []string
	for _, doc := range d.Documents {
		if domain.DocumentTypes[doc] {
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		docs = []string{"Proposal"}
	}
	d.Documents = docs

	seen := map[string]bool{}
	for i := range d.Sections {
		s := &d.Sections[i]
		id := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s.ID), "-"), "-")
		if id == "" {
			id = strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s.Title), "-"), "-")
		}
		if id == "" {
			id = fmt.Sprintf("section-%d", i+1)
		}
		for base, n := id, 2; seen[id]; n++ {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		seen[id] = true
		s.ID = id
		s.Status = domain.SectionNeedsReview
	}
	if strings.TrimSpace(d.Sections[0].Body) == "" {
		d.Sections[0].Body = strings.TrimSpace(description)
	}
	return d
}
