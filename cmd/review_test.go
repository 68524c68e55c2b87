package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rtiworkbench/rti-cli/internal/models"
	"github.com/rtiworkbench/rti-cli/internal/testutil"
	"github.com/rtiworkbench/rti-cli/internal/workflow"
)

func seedAnalyzedCase(t *testing.T) *models.Case {
	t.Helper()

	c := models.NewCase(models.Intake{
		FilePath:   "budget.pdf",
		Department: "Ministry of Education",
		FiscalYear: "2024-25",
	})
	c.Stage = models.StageAnalyzed
	c.Analysis = &models.Analysis{
		RawGaps: "Vendor-level spending is not disclosed.",
		StructuredGaps: []models.Gap{
			{Gap: "Vendor-level spending missing", Category: "Financial", Priority: "High"},
			{Gap: "No utilization certificates", Category: "Compliance", Priority: "low"},
			{Gap: "Unclear timelines", Category: "Process", Priority: "urgent"},
		},
		Drafts: map[models.Language]string{
			models.LanguageEnglish: "To the PIO, ...",
			models.LanguageHindi:   "सूचना अधिकारी को, ...",
		},
	}

	if err := caseStore().Save(c); err != nil {
		t.Fatalf("failed to seed case: %v", err)
	}
	return c
}

func resetReviewFlags() {
	reviewAccept = false
	reviewJSON = false
	reviewToon = false
}

func TestReviewWithoutCase(t *testing.T) {
	testutil.NewWorkspace(t)
	resetReviewFlags()

	err := runReview(testCommand(), nil)
	if !errors.Is(err, workflow.ErrStageNotReady) {
		t.Fatalf("expected ErrStageNotReady, got %v", err)
	}
	if !strings.Contains(err.Error(), "rti start") {
		t.Errorf("guard error should point at rti start: %v", err)
	}
}

func TestReviewAcceptAdvances(t *testing.T) {
	testutil.NewWorkspace(t)
	seedAnalyzedCase(t)

	resetReviewFlags()
	reviewAccept = true

	if err := runReview(testCommand(), nil); err != nil {
		t.Fatalf("review failed: %v", err)
	}

	c, err := caseStore().Load()
	if err != nil {
		t.Fatalf("failed to reload case: %v", err)
	}
	if c.Stage != models.StageDrafting {
		t.Errorf("expected stage drafting, got %s", c.Stage)
	}
	if c.Drafts[models.LanguageEnglish] != "To the PIO, ..." {
		t.Errorf("drafts not copied: %+v", c.Drafts)
	}
	if c.EditMode != models.EditUnchanged {
		t.Errorf("expected edit mode unchanged, got %s", c.EditMode)
	}
}

func TestRenderReview(t *testing.T) {
	testutil.NewWorkspace(t)
	c := seedAnalyzedCase(t)

	var buf bytes.Buffer
	renderReview(&buf, c)
	out := buf.String()

	if !strings.Contains(out, "Vendor-level spending is not disclosed.") {
		t.Error("raw gaps missing from output")
	}
	for _, want := range []string{"[High]", "[low]", "[urgent]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected priority tag %s in output", want)
		}
	}
	if !strings.Contains(out, "Draft (english):") || !strings.Contains(out, "Draft (hindi):") {
		t.Error("expected both language drafts in output")
	}
}
