package rti

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"

	"github.com/rtiworkbench/rti-cli/internal/models"
)

// AnalyzeFromUpload uploads a document for gap analysis.
// Multipart fields match the backend contract: file, department, year.
func (c *Client) AnalyzeFromUpload(ctx context.Context, filePath, department, year string) (*models.Analysis, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	if err := form.WriteField("department", department); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	if err := form.WriteField("year", year); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	var analysis models.Analysis
	if err := c.postMultipart(ctx, "/analyze-from-upload", form.FormDataContentType(), &buf, &analysis); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return &analysis, nil
}

// AnalyzeFromURL asks the backend to scrape and analyze a government URL
func (c *Client) AnalyzeFromURL(ctx context.Context, docURL, department, year string) (*models.Analysis, error) {
	payload := map[string]string{
		"url":        docURL,
		"department": department,
		"year":       year,
	}

	var analysis models.Analysis
	if err := c.postJSON(ctx, "/analyze-from-url", payload, &analysis); err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return &analysis, nil
}

type editDraftResponse struct {
	EditedDraft string `json:"edited_draft"`
}

// EditDraft sends an instruction and the current draft to the backend and
// returns the revised text
func (c *Client) EditDraft(ctx context.Context, instruction string, language models.Language, currentDraft string) (string, error) {
	payload := map[string]string{
		"instruction":   instruction,
		"language":      string(language),
		"current_draft": currentDraft,
	}

	var resp editDraftResponse
	if err := c.postJSON(ctx, "/edit-draft", payload, &resp); err != nil {
		return "", fmt.Errorf("edit failed: %w", err)
	}
	if resp.EditedDraft == "" {
		return "", fmt.Errorf("edit failed: backend returned no draft")
	}
	return resp.EditedDraft, nil
}

// FinalizeRequest carries everything the submission endpoint needs.
// PIOEmail and Location are optional and omitted from the payload when empty.
type FinalizeRequest struct {
	FinalDraft string          `json:"final_draft"`
	Department string          `json:"department"`
	Year       string          `json:"year"`
	PIOEmail   string          `json:"pio_email,omitempty"`
	Location   string          `json:"location,omitempty"`
	Language   models.Language `json:"language"`
}

// FinalizeAck is the backend's acknowledgment of a recorded submission.
// Both fields are best-effort; the backend may omit either.
type FinalizeAck struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// FinalizeAndSend submits the final draft. The backend records the submission,
// dispatches the email and schedules the 30-day follow-up reminder.
func (c *Client) FinalizeAndSend(ctx context.Context, req FinalizeRequest) (*FinalizeAck, error) {
	var ack FinalizeAck
	if err := c.postJSON(ctx, "/finalize-and-send", req, &ack); err != nil {
		return nil, fmt.Errorf("submission failed: %w", err)
	}
	return &ack, nil
}

// ListRTIs fetches the submitted-case summaries for the dashboard
func (c *Client) ListRTIs(ctx context.Context) ([]models.RTISummary, error) {
	var summaries []models.RTISummary
	if err := c.getJSON(ctx, "/rtis", &summaries); err != nil {
		return nil, fmt.Errorf("listing submissions failed: %w", err)
	}
	return summaries, nil
}

// DownloadRTI fetches the stored document for a submission as raw bytes
func (c *Client) DownloadRTI(ctx context.Context, filename string) ([]byte, error) {
	data, err := c.getBytes(ctx, "/rtis/"+url.PathEscape(filename))
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	return data, nil
}

// FindOffices looks up RTI offices for a location and department. The backend
// has returned both a bare array and an object with an "offices" key across
// versions, so both shapes are accepted.
func (c *Client) FindOffices(ctx context.Context, location, department string) ([]string, error) {
	payload := map[string]string{
		"location":   location,
		"department": department,
	}

	var raw json.RawMessage
	if err := c.postJSON(ctx, "/find-offices", payload, &raw); err != nil {
		return nil, fmt.Errorf("office search failed: %w", err)
	}

	var offices []string
	if err := json.Unmarshal(raw, &offices); err == nil {
		return offices, nil
	}

	var wrapped struct {
		Offices []string `json:"offices"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("office search failed: unexpected response shape: %w", err)
	}
	return wrapped.Offices, nil
}
