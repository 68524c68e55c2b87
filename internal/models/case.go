package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stage identifies how far a case has progressed through the filing workflow
type Stage string

const (
	StageIntake    Stage = "intake"
	StageAnalyzed  Stage = "analyzed"
	StageDrafting  Stage = "drafting"
	StageEdited    Stage = "edited"
	StageSubmitted Stage = "submitted"
)

// stageOrder defines the linear progression of the workflow
var stageOrder = map[Stage]int{
	StageIntake:    0,
	StageAnalyzed:  1,
	StageDrafting:  2,
	StageEdited:    3,
	StageSubmitted: 4,
}

// AtLeast reports whether the stage has reached or passed the given stage
func (s Stage) AtLeast(other Stage) bool {
	return stageOrder[s] >= stageOrder[other]
}

// Valid reports whether the stage is a known workflow stage
func (s Stage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}

// Language is a draft language code
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// Languages returns the supported draft languages in display order
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageHindi}
}

// ParseLanguage parses a case-insensitive language name
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return LanguageEnglish, nil
	case "hindi", "hi":
		return LanguageHindi, nil
	default:
		return "", fmt.Errorf("unsupported language: %s (must be: english, hindi)", s)
	}
}

// EditMode records how the current draft text was produced
type EditMode string

const (
	EditManual    EditMode = "manual"
	EditAIAssist  EditMode = "ai-assisted"
	EditUnchanged EditMode = "unchanged"
)

// ParseEditMode parses an edit mode flag value
func ParseEditMode(s string) (EditMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return EditManual, nil
	case "ai", "ai-assisted":
		return EditAIAssist, nil
	case "keep", "as-is", "unchanged":
		return EditUnchanged, nil
	default:
		return "", fmt.Errorf("unknown edit mode: %s (must be: manual, ai, keep)", s)
	}
}

// Departments lists the ministries an RTI request can target
var Departments = []string{
	"Ministry of Education",
	"Ministry of Health",
	"Ministry of Finance",
	"Ministry of Defence",
	"Ministry of Railways",
	"Ministry of Agriculture",
}

// FiscalYears lists the selectable fiscal years, newest first
var FiscalYears = []string{"2024-25", "2023-24", "2022-23", "2021-22", "2020-21"}

// ValidDepartment reports whether dept is one of the known ministries
func ValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// ValidFiscalYear reports whether year is one of the selectable fiscal years
func ValidFiscalYear(year string) bool {
	for _, y := range FiscalYears {
		if y == year {
			return true
		}
	}
	return false
}

// Source is the document under analysis: an uploaded file or a URL reference.
// Exactly one of the two fields is set.
type Source struct {
	FilePath string `json:"file_path,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Intake carries the inputs required before an analysis call is permitted
type Intake struct {
	FilePath   string
	URL        string
	Department string
	FiscalYear string
}

// Validate enforces the analysis precondition: department and fiscal year set,
// and exactly one of file/url provided. Called before any network activity.
func (in Intake) Validate() error {
	if in.Department == "" {
		return fmt.Errorf("department is required")
	}
	if !ValidDepartment(in.Department) {
		return fmt.Errorf("unknown department: %s (run 'rti start --help' for the list)", in.Department)
	}
	if in.FiscalYear == "" {
		return fmt.Errorf("fiscal year is required")
	}
	if !ValidFiscalYear(in.FiscalYear) {
		return fmt.Errorf("unknown fiscal year: %s (must be one of %s)", in.FiscalYear, strings.Join(FiscalYears, ", "))
	}
	if in.FilePath == "" && in.URL == "" {
		return fmt.Errorf("a document is required: provide --file or --url")
	}
	if in.FilePath != "" && in.URL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive")
	}
	return nil
}

// Submission records a finalized, sent RTI request
type Submission struct {
	PIOEmail    string    `json:"pio_email,omitempty"`
	Location    string    `json:"location,omitempty"`
	Language    Language  `json:"language"`
	FinalDraft  string    `json:"final_draft"`
	Filename    string    `json:"filename,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Case is one RTI request's full lifecycle state
type Case struct {
	ID         string              `json:"id"`
	Source     Source              `json:"source"`
	Department string              `json:"department"`
	FiscalYear string              `json:"fiscal_year"`
	Stage      Stage               `json:"stage"`
	Analysis   *Analysis           `json:"analysis,omitempty"`
	Drafts     map[Language]string `json:"drafts,omitempty"`
	EditMode   EditMode            `json:"edit_mode,omitempty"`
	Submission *Submission         `json:"submission,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// NewCase creates a fresh case at the intake stage from validated intake inputs
func NewCase(in Intake) *Case {
	now := time.Now()
	return &Case{
		ID:         uuid.NewString(),
		Source:     Source{FilePath: in.FilePath, URL: in.URL},
		Department: in.Department,
		FiscalYear: in.FiscalYear,
		Stage:      StageIntake,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Draft returns the working draft text for a language, falling back to the
// analysis-provided draft when the working copy has not been populated yet
func (c *Case) Draft(lang Language) string {
	if text, ok := c.Drafts[lang]; ok {
		return text
	}
	if c.Analysis != nil {
		return c.Analysis.Drafts[lang]
	}
	return ""
}
