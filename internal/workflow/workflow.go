// Package workflow enforces the linear filing sequence and owns every mutation
// of a case as it moves through intake, review, editing and submission.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rtiworkbench/rti-cli/internal/models"
)

// ErrStageNotReady indicates a command was invoked before its prerequisite
// stage was reached
var ErrStageNotReady = errors.New("workflow stage not ready")

// prerequisite maps each guarded stage to the command that produces it
var prerequisite = map[models.Stage]string{
	models.StageAnalyzed: "rti start",
	models.StageDrafting: "rti review --accept",
	models.StageEdited:   "rti edit",
}

// Guard verifies the case has reached the required stage. The returned error
// names the command that gets the user there.
func Guard(c *models.Case, need models.Stage) error {
	if c == nil {
		return fmt.Errorf("%w: no case in progress (run 'rti start' first)", ErrStageNotReady)
	}
	if !c.Stage.AtLeast(need) {
		hint := prerequisite[need]
		if hint == "" {
			hint = "rti start"
		}
		return fmt.Errorf("%w: case is at stage %q (run '%s' first)", ErrStageNotReady, c.Stage, hint)
	}
	return nil
}

// SetAnalysis attaches a backend analysis result and advances the case to the
// analyzed stage. The analysis is attached once per case; a re-run of intake
// creates a fresh case instead.
func SetAnalysis(c *models.Case, a *models.Analysis) error {
	if a == nil {
		return fmt.Errorf("analysis result is empty")
	}
	c.Analysis = a
	c.Stage = models.StageAnalyzed
	c.UpdatedAt = time.Now()
	return nil
}

// AcceptDrafts copies the analysis-provided drafts into the case's working
// draft set and advances to the drafting stage
func AcceptDrafts(c *models.Case) error {
	if err := Guard(c, models.StageAnalyzed); err != nil {
		return err
	}
	if c.Analysis == nil || len(c.Analysis.Drafts) == 0 {
		return fmt.Errorf("analysis carries no drafts to accept")
	}

	drafts := make(map[models.Language]string, len(c.Analysis.Drafts))
	for lang, text := range c.Analysis.Drafts {
		drafts[lang] = text
	}
	c.Drafts = drafts
	c.EditMode = models.EditUnchanged
	if !c.Stage.AtLeast(models.StageDrafting) {
		c.Stage = models.StageDrafting
	}
	c.UpdatedAt = time.Now()
	return nil
}

// SetDraft overwrites the working draft for a language and records how it was
// produced. Prior text for that language is discarded; no history is kept.
func SetDraft(c *models.Case, lang models.Language, text string, mode models.EditMode) error {
	if err := Guard(c, models.StageDrafting); err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("draft text cannot be empty")
	}
	if c.Drafts == nil {
		c.Drafts = make(map[models.Language]string)
	}
	c.Drafts[lang] = text
	c.EditMode = mode
	if !c.Stage.AtLeast(models.StageEdited) {
		c.Stage = models.StageEdited
	}
	c.UpdatedAt = time.Now()
	return nil
}

// SetSubmission attaches the submission record exactly once and marks the case
// terminal. Requires a non-empty draft for the submission language.
func SetSubmission(c *models.Case, sub *models.Submission) error {
	if err := Guard(c, models.StageDrafting); err != nil {
		return err
	}
	if c.Submission != nil {
		return fmt.Errorf("case %s was already submitted", c.ID)
	}
	if sub.FinalDraft == "" {
		return fmt.Errorf("no %s draft to submit", sub.Language)
	}
	c.Submission = sub
	c.Stage = models.StageSubmitted
	c.UpdatedAt = time.Now()
	return nil
}

// DraftEditor revises a draft through the backend. Satisfied by *rti.Client.
type DraftEditor interface {
	EditDraft(ctx context.Context, instruction string, language models.Language, currentDraft string) (string, error)
}

// DraftChange is the tagged edit-mode variant: manual replacement text,
// an AI instruction, or keep-as-is.
type DraftChange struct {
	Mode        models.EditMode
	Replacement string
	Instruction string
}

// ResolveDraftText produces the new draft text for a change against the current
// text. Unchanged mode always returns the current text untouched.
func ResolveDraftText(ctx context.Context, ch DraftChange, lang models.Language, current string, editor DraftEditor) (string, error) {
	switch ch.Mode {
	case models.EditManual:
		if ch.Replacement == "" {
			return "", fmt.Errorf("manual edit requires replacement text (--text or --draft-file)")
		}
		return ch.Replacement, nil
	case models.EditAIAssist:
		if ch.Instruction == "" {
			return "", fmt.Errorf("ai edit requires an instruction (--instruction)")
		}
		if current == "" {
			return "", fmt.Errorf("no %s draft to revise", lang)
		}
		return editor.EditDraft(ctx, ch.Instruction, lang, current)
	case models.EditUnchanged:
		return current, nil
	default:
		return "", fmt.Errorf("unknown edit mode: %s", ch.Mode)
	}
}
