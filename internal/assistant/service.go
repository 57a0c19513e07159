// Package assistant relays editor requests to an LLM with per-action system
// prompts and returns the model's JSON verbatim.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ats-backend/internal/llm"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/resume/model"
)

// ErrUnknownAction is returned for actions outside the supported set.
var ErrUnknownAction = errors.New("unknown action")

// Request is one assistant invocation.
type Request struct {
	Action         string            `json:"action"`
	ResumeData     *model.Resume     `json:"resumeData,omitempty"`
	JobDescription string            `json:"jobDescription,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
}

// Service builds prompts per action and parses LLM output.
type Service struct {
	LLM llm.Client
}

// fenceRe strips markdown code fences that models wrap JSON in.
var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// Run executes one assistant action and returns the parsed JSON payload.
// Unparseable model output is wrapped as {"rawContent": ...} rather than
// failing the request.
func (s *Service) Run(ctx context.Context, req Request) (map[string]any, error) {
	systemPrompt, ok := systemPrompts[req.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, req.Action)
	}

	userMessage, err := buildUserMessage(req)
	if err != nil {
		return nil, err
	}

	content, err := s.LLM.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: userMessage},
	})
	if err != nil {
		return nil, err
	}

	payload := parseModelJSON(content)
	telemetry.Info("assistant.completed", map[string]any{
		"action": req.Action,
	})
	return payload, nil
}

func buildUserMessage(req Request) (string, error) {
	ctxVal := func(key, fallback string) string {
		if v, ok := req.Context[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
		return fallback
	}

	switch req.Action {
	case ActionSuggestions:
		resumeJSON, err := marshalResume(req.ResumeData)
		if err != nil {
			return "", err
		}
		return "Analyze this resume and provide improvement suggestions:\n\n" + resumeJSON, nil

	case ActionBulletPoints:
		return fmt.Sprintf(
			"Generate professional bullet points for this role:\nPosition: %s\nCompany: %s\nIndustry: %s\nExisting description: %s",
			ctxVal("position", "Not specified"),
			ctxVal("company", "Not specified"),
			ctxVal("industry", "General"),
			ctxVal("description", "None"),
		), nil

	case ActionSummary:
		name := "Professional"
		var experience []model.Experience
		var skillNames []string
		if req.ResumeData != nil {
			if n := strings.TrimSpace(req.ResumeData.PersonalInfo.FullName); n != "" {
				name = n
			}
			experience = req.ResumeData.Experience
			if len(experience) > 3 {
				experience = experience[:3]
			}
			for _, skill := range req.ResumeData.Skills {
				skillNames = append(skillNames, skill.Name)
			}
		}
		expJSON, err := json.Marshal(experience)
		if err != nil {
			return "", fmt.Errorf("marshal experience: %w", err)
		}
		skills := strings.Join(skillNames, ", ")
		if skills == "" {
			skills = "Not specified"
		}
		return fmt.Sprintf(
			"Generate a professional summary for:\nName: %s\nTarget Role: %s\nExperience: %s\nSkills: %s",
			name,
			ctxVal("targetRole", "Not specified"),
			expJSON,
			skills,
		), nil

	case ActionJobMatch:
		resumeJSON, err := marshalResume(req.ResumeData)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"Compare this resume against the job description:\n\nRESUME:\n%s\n\nJOB DESCRIPTION:\n%s",
			resumeJSON,
			req.JobDescription,
		), nil

	case ActionSmartQuestions:
		resumeJSON, err := marshalResume(req.ResumeData)
		if err != nil {
			return "", err
		}
		return "Based on this resume state, what questions should I ask to improve it?\n\n" + resumeJSON, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownAction, req.Action)
}

func marshalResume(resume *model.Resume) (string, error) {
	if resume == nil {
		return "{}", nil
	}
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}
	return string(data), nil
}

func parseModelJSON(content string) map[string]any {
	jsonStr := strings.TrimSpace(content)
	if m := fenceRe.FindStringSubmatch(jsonStr); m != nil {
		jsonStr = strings.TrimSpace(m[1])
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return map[string]any{"rawContent": content}
	}
	return parsed
}
