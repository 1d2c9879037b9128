package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedAssistant_DraftKeepsDescription(t *testing.T) {
	a := NewSimulatedAssistant(0)
	draft, err := a.DraftDocumentation(context.Background(), "  An online marketplace for local bakeries\nwith delivery  ")
	require.NoError(t, err)

	assert.Equal(t, "An Online Marketplace For", draft.Name)
	assert.Equal(t, []string{"Proposal", "SRS", "Architecture"}, draft.Documents)
	require.Len(t, draft.Sections, 4)
	assert.Equal(t, "executive-summary", draft.Sections[0].ID)
	assert.Equal(t, "An online marketplace for local bakeries\nwith delivery", draft.Sections[0].Body)
	for _, s := range draft.Sections {
		assert.Equal(t, domain.SectionNeedsReview, s.Status)
	}
}

func TestSimulatedAssistant_WaitsForDelay(t *testing.T) {
	a := NewSimulatedAssistant(30 * time.Millisecond)
	start := time.Now()
	_, err := a.DraftDocumentation(context.Background(), "idea")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSimulatedAssistant_HonoursCancellation(t *testing.T) {
	a := NewSimulatedAssistant(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.DraftDocumentation(ctx, "idea")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedAssistant_StaticSuggestions(t *testing.T) {
	got, err := NewSimulatedAssistant(0).Suggest(context.Background(), &domain.DocumentSection{Title: "Objectives"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Add technical specifications for scalability requirements",
		"Include performance benchmarks and metrics",
		"Add risk assessment and mitigation strategies",
	}, got)

	got[0] = "mutated"
	assert.Equal(t, "Add technical specifications for scalability requirements", DeterministicSuggestions()[0])
}

func TestNameFromDescription(t *testing.T) {
	assert.Equal(t, "Untitled Idea", NameFromDescription("   "))
	assert.Equal(t, "Chat", NameFromDescription("chat."))
	assert.Equal(t, "Mobile App For Teams", NameFromDescription("mobile app, for teams and families"))
}
