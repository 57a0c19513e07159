package rubric

import (
	"fmt"
	"strings"

	"ats-backend/resume/model"
)

// FormExtractor derives Evidence from the editor's structured resume. Unlike
// the text path it sees individual fields, so it reports per-entry
// missing-field issues for experience and education.
type FormExtractor struct {
	Resume model.Resume
}

// Extract implements Extractor.
func (e FormExtractor) Extract(vocab Vocabulary) Evidence {
	r := e.Resume
	info := r.PersonalInfo

	summary := strings.TrimSpace(info.Summary)

	var expIssues []string
	expAction, expQuant, expDetail := false, false, false
	for i, exp := range r.Experience {
		if strings.TrimSpace(exp.Company) == "" {
			expIssues = append(expIssues, fmt.Sprintf("Experience %d: Company name missing", i+1))
		}
		if strings.TrimSpace(exp.Position) == "" {
			expIssues = append(expIssues, fmt.Sprintf("Experience %d: Job title missing", i+1))
		}
		entryText := exp.Description + " " + strings.Join(exp.Highlights, " ")
		if containsAny(entryText, vocab.ActionWords) {
			expAction = true
		}
		if numberRe.MatchString(entryText) {
			expQuant = true
		}
		if len(exp.Description) > 50 || len(exp.Highlights) >= 2 {
			expDetail = true
		}
	}

	var eduIssues []string
	gpaEntries := 0
	hasDegree := false
	for i, edu := range r.Education {
		if strings.TrimSpace(edu.Institution) == "" {
			eduIssues = append(eduIssues, fmt.Sprintf("Education %d: Institution name missing", i+1))
		}
		if strings.TrimSpace(edu.Degree) == "" {
			eduIssues = append(eduIssues, fmt.Sprintf("Education %d: Degree missing", i+1))
		} else {
			hasDegree = true
		}
		if strings.TrimSpace(edu.GPA) != "" {
			gpaEntries++
		}
	}

	skillMatches := 0
	hasAdvanced := false
	var skillNames []string
	for _, skill := range r.Skills {
		skillNames = append(skillNames, skill.Name)
		if skill.Level == model.SkillAdvanced || skill.Level == model.SkillExpert {
			hasAdvanced = true
		}
	}
	joinedSkills := strings.ToLower(strings.Join(skillNames, " "))
	for _, term := range vocab.SkillTerms {
		if strings.Contains(joinedSkills, strings.ToLower(term)) {
			skillMatches++
		}
	}

	allText := collectText(r)

	return Evidence{
		Contact: ContactEvidence{
			HasName:     strings.TrimSpace(info.FullName) != "",
			HasEmail:    strings.TrimSpace(info.Email) != "",
			EmailHasAt:  strings.Contains(info.Email, "@"),
			HasPhone:    strings.TrimSpace(info.Phone) != "",
			HasLocation: strings.TrimSpace(info.Location) != "",
			HasLinkedIn: strings.TrimSpace(info.LinkedIn) != "",
			HasWebsite:  strings.TrimSpace(info.Website) != "",
		},
		Summary: SummaryEvidence{
			Present:       summary != "",
			WordCount:     len(strings.Fields(summary)),
			HasActionWord: containsAny(summary, vocab.ActionWords),
			HasNumber:     digitRe.MatchString(summary),
		},
		Experience: ExperienceEvidence{
			Present:       len(r.Experience) > 0,
			Entries:       len(r.Experience),
			HasActionWord: expAction,
			HasQuantified: expQuant,
			HasDetail:     expDetail,
			EntryIssues:   expIssues,
		},
		Skills: SkillsEvidence{
			Present:        len(r.Skills) > 0,
			Count:          len(r.Skills),
			KeywordMatches: skillMatches,
			HasAdvanced:    hasAdvanced,
		},
		Education: EducationEvidence{
			Present:     len(r.Education) > 0,
			Entries:     len(r.Education),
			GPAEntries:  gpaEntries,
			HasDegree:   hasDegree,
			EntryIssues: eduIssues,
		},
		Keywords: KeywordEvidence{
			ActionWordCount: countMatches(allText, vocab.ActionWords),
			SkillTermCount:  countMatches(allText, vocab.SkillTerms),
		},
		Document: DocumentEvidence{
			Empty:          strings.TrimSpace(allText) == "" && strings.TrimSpace(info.FullName) == "",
			PageCount:      1,
			WordCount:      len(strings.Fields(allText)),
			FilledSections: countFilledSections(r),
			HasNonASCII:    hasNonASCII(allText),
		},
	}
}

// collectText concatenates the free-text portions of a structured resume,
// mirroring what the whole-document keyword scan sees on the text path.
func collectText(r model.Resume) string {
	var parts []string
	parts = append(parts, r.PersonalInfo.Summary)
	for _, exp := range r.Experience {
		parts = append(parts, exp.Description, strings.Join(exp.Highlights, " "))
	}
	for _, skill := range r.Skills {
		parts = append(parts, skill.Name)
	}
	for _, proj := range r.Projects {
		parts = append(parts, proj.Description, strings.Join(proj.Technologies, " "))
	}
	return strings.Join(parts, " ")
}

func countFilledSections(r model.Resume) int {
	filled := 0
	if strings.TrimSpace(r.PersonalInfo.FullName) != "" || strings.TrimSpace(r.PersonalInfo.Email) != "" {
		filled++
	}
	if strings.TrimSpace(r.PersonalInfo.Summary) != "" {
		filled++
	}
	if len(r.Experience) > 0 {
		filled++
	}
	if len(r.Education) > 0 {
		filled++
	}
	if len(r.Skills) > 0 {
		filled++
	}
	if len(r.Projects) > 0 {
		filled++
	}
	if len(r.Certifications) > 0 {
		filled++
	}
	return filled
}
