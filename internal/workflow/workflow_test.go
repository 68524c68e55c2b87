package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtiworkbench/rti-cli/internal/models"
)

func analyzedCase() *models.Case {
	c := models.NewCase(models.Intake{
		FilePath:   "budget.pdf",
		Department: "Ministry of Education",
		FiscalYear: "2024-25",
	})
	c.Analysis = &models.Analysis{
		RawGaps: "raw gaps",
		StructuredGaps: []models.Gap{
			{Gap: "missing vendor data", Category: "Financial", Priority: "high"},
		},
		Drafts: map[models.Language]string{
			models.LanguageEnglish: "english draft",
			models.LanguageHindi:   "hindi draft",
		},
	}
	c.Stage = models.StageAnalyzed
	return c
}

func TestGuard(t *testing.T) {
	err := Guard(nil, models.StageAnalyzed)
	assert.True(t, errors.Is(err, ErrStageNotReady))
	assert.Contains(t, err.Error(), "rti start")

	c := analyzedCase()
	assert.NoError(t, Guard(c, models.StageAnalyzed))

	err = Guard(c, models.StageDrafting)
	assert.True(t, errors.Is(err, ErrStageNotReady))
	assert.Contains(t, err.Error(), "rti review --accept")

	require.NoError(t, AcceptDrafts(c))
	assert.NoError(t, Guard(c, models.StageDrafting))
}

func TestAcceptDraftsCopies(t *testing.T) {
	c := analyzedCase()
	require.NoError(t, AcceptDrafts(c))

	assert.Equal(t, models.StageDrafting, c.Stage)
	assert.Equal(t, models.EditUnchanged, c.EditMode)
	assert.Equal(t, "english draft", c.Drafts[models.LanguageEnglish])

	// mutating the working copy must not bleed into the analysis result
	c.Drafts[models.LanguageEnglish] = "edited"
	assert.Equal(t, "english draft", c.Analysis.Drafts[models.LanguageEnglish])
}

func TestAcceptDraftsRequiresAnalysis(t *testing.T) {
	c := models.NewCase(models.Intake{
		FilePath:   "budget.pdf",
		Department: "Ministry of Education",
		FiscalYear: "2024-25",
	})
	err := AcceptDrafts(c)
	assert.True(t, errors.Is(err, ErrStageNotReady))
}

func TestSetDraftOverwrites(t *testing.T) {
	c := analyzedCase()
	require.NoError(t, AcceptDrafts(c))

	require.NoError(t, SetDraft(c, models.LanguageEnglish, "first revision", models.EditManual))
	require.NoError(t, SetDraft(c, models.LanguageEnglish, "second revision", models.EditManual))

	assert.Equal(t, "second revision", c.Drafts[models.LanguageEnglish])
	assert.Equal(t, models.EditManual, c.EditMode)
	assert.Equal(t, models.StageEdited, c.Stage)
}

func TestSetDraftRejectsEmpty(t *testing.T) {
	c := analyzedCase()
	require.NoError(t, AcceptDrafts(c))
	assert.Error(t, SetDraft(c, models.LanguageEnglish, "", models.EditManual))
}

func TestSetSubmission(t *testing.T) {
	c := analyzedCase()
	require.NoError(t, AcceptDrafts(c))

	sub := &models.Submission{
		Language:   models.LanguageEnglish,
		FinalDraft: c.Draft(models.LanguageEnglish),
		Location:   "Pune",
	}
	require.NoError(t, SetSubmission(c, sub))
	assert.Equal(t, models.StageSubmitted, c.Stage)

	// submission is attached exactly once
	err := SetSubmission(c, sub)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already submitted")
}

func TestSetSubmissionRequiresDraft(t *testing.T) {
	c := analyzedCase()
	require.NoError(t, AcceptDrafts(c))

	err := SetSubmission(c, &models.Submission{Language: models.LanguageHindi})
	assert.Error(t, err)
}

type fakeEditor struct {
	response string
	err      error
	calls    int
}

func (f *fakeEditor) EditDraft(_ context.Context, instruction string, language models.Language, currentDraft string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestResolveDraftTextManual(t *testing.T) {
	got, err := ResolveDraftText(context.Background(), DraftChange{
		Mode:        models.EditManual,
		Replacement: "rewritten by hand",
	}, models.LanguageEnglish, "original", nil)
	require.NoError(t, err)
	assert.Equal(t, "rewritten by hand", got)

	_, err = ResolveDraftText(context.Background(), DraftChange{Mode: models.EditManual}, models.LanguageEnglish, "original", nil)
	assert.Error(t, err)
}

func TestResolveDraftTextAI(t *testing.T) {
	editor := &fakeEditor{response: "formal revision from backend"}
	got, err := ResolveDraftText(context.Background(), DraftChange{
		Mode:        models.EditAIAssist,
		Instruction: "make it more formal",
	}, models.LanguageEnglish, "original", editor)
	require.NoError(t, err)

	// the visible text is the backend's revision, not a local concatenation
	assert.Equal(t, "formal revision from backend", got)
	assert.NotContains(t, got, "original")
	assert.Equal(t, 1, editor.calls)
}

func TestResolveDraftTextAIFailure(t *testing.T) {
	editor := &fakeEditor{err: fmt.Errorf("edit failed: server returned status 500")}
	_, err := ResolveDraftText(context.Background(), DraftChange{
		Mode:        models.EditAIAssist,
		Instruction: "make it more formal",
	}, models.LanguageEnglish, "original", editor)
	assert.Error(t, err)
}

func TestResolveDraftTextUnchangedIsIdempotent(t *testing.T) {
	current := "keep me exactly as I am"
	for i := 0; i < 3; i++ {
		got, err := ResolveDraftText(context.Background(), DraftChange{Mode: models.EditUnchanged}, models.LanguageHindi, current, nil)
		require.NoError(t, err)
		assert.Equal(t, current, got)
	}
}
