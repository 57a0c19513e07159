package parse

import (
	"strings"
	"testing"
)

func TestSegmentNoHeaders(t *testing.T) {
	text := "John Smith\njohn@example.com\n(555) 123-4567\n\nJust some free text\nwith no headers at all"
	sections := Segment(text)

	wantContact := "John Smith\njohn@example.com\n(555) 123-4567\nJust some free text\nwith no headers at all"
	if sections[SectionContact] != wantContact {
		t.Fatalf("contact = %q, want %q", sections[SectionContact], wantContact)
	}
	for _, key := range SectionOrder {
		if key == SectionContact {
			continue
		}
		if sections[key] != "" {
			t.Fatalf("section %s = %q, want empty", key, sections[key])
		}
	}
}

func TestSegmentContactBlockLimitedToTenLines(t *testing.T) {
	lines := make([]string, 0, 14)
	for i := 0; i < 14; i++ {
		lines = append(lines, "line")
	}
	sections := Segment(strings.Join(lines, "\n"))

	if got := strings.Count(sections[SectionContact], "line"); got != 10 {
		t.Fatalf("contact holds %d lines, want 10", got)
	}
}

func TestSegmentWorkExperienceAndEducation(t *testing.T) {
	text := strings.Join([]string{
		"John Smith",
		"john@example.com",
		"Work Experience",
		"• Built internal tooling for deploys",
		"• Shipped the billing revamp",
		"Education",
		"BS Computer Science, State University",
	}, "\n")

	sections := Segment(text)

	wantExp := "• Built internal tooling for deploys\n• Shipped the billing revamp"
	if sections[SectionExperience] != wantExp {
		t.Fatalf("experience = %q, want %q", sections[SectionExperience], wantExp)
	}
	if sections[SectionEducation] != "BS Computer Science, State University" {
		t.Fatalf("education = %q", sections[SectionEducation])
	}
	if sections[SectionContact] != "John Smith\njohn@example.com" {
		t.Fatalf("contact = %q", sections[SectionContact])
	}
}

func TestSegmentHeaderCaseInsensitive(t *testing.T) {
	for _, header := range []string{"WORK EXPERIENCE", "work experience", "Employment"} {
		sections := Segment("Name\n" + header + "\ndid things")
		if sections[SectionExperience] != "did things" {
			t.Fatalf("header %q: experience = %q", header, sections[SectionExperience])
		}
	}
}

func TestSegmentHeaderPrecedence(t *testing.T) {
	// "Professional Summary" must land in summary, not experience, even
	// though both vocabularies contain "professional".
	sections := Segment("Name\nProfessional Summary\nseasoned engineer")
	if sections[SectionSummary] != "seasoned engineer" {
		t.Fatalf("summary = %q", sections[SectionSummary])
	}
	if sections[SectionExperience] != "" {
		t.Fatalf("experience = %q, want empty", sections[SectionExperience])
	}
}

func TestNewDocumentMetadata(t *testing.T) {
	doc := NewDocument("one two three", "resume.pdf", 0)
	if doc.Metadata.PageCount != 1 {
		t.Fatalf("page count = %d, want clamp to 1", doc.Metadata.PageCount)
	}
	if doc.Metadata.WordCount != 3 {
		t.Fatalf("word count = %d, want 3", doc.Metadata.WordCount)
	}
	if doc.Metadata.FileName != "resume.pdf" {
		t.Fatalf("file name = %q", doc.Metadata.FileName)
	}
	if len(doc.Sections) != len(SectionOrder) {
		t.Fatalf("sections len = %d, want %d", len(doc.Sections), len(SectionOrder))
	}
}

func TestExtractContact(t *testing.T) {
	contact := ExtractContact("John Smith\njohn.smith@example.com\n(555) 123-4567\nNew York, NY")

	if contact.Name != "John Smith" {
		t.Errorf("name = %q", contact.Name)
	}
	if contact.Email != "john.smith@example.com" {
		t.Errorf("email = %q", contact.Email)
	}
	if contact.Phone != "(555) 123-4567" {
		t.Errorf("phone = %q", contact.Phone)
	}
	if contact.Location != "New York, NY" {
		t.Errorf("location = %q", contact.Location)
	}
	if contact.LinkedIn != "" {
		t.Errorf("linkedin = %q, want empty", contact.LinkedIn)
	}
}

func TestExtractContactLinkedIn(t *testing.T) {
	contact := ExtractContact("Jane Doe\njane@corp.io\nlinkedin.com/in/jane-doe")
	if contact.LinkedIn != "linkedin.com/in/jane-doe" {
		t.Fatalf("linkedin = %q", contact.LinkedIn)
	}
}

func TestExtractContactEmpty(t *testing.T) {
	contact := ExtractContact("")
	if contact != (Contact{}) {
		t.Fatalf("expected zero contact, got %+v", contact)
	}
}

func TestHasWebsite(t *testing.T) {
	if HasWebsite("see linkedin.com/in/jane") {
		t.Fatalf("linkedin URL must not count as a website")
	}
	if !HasWebsite("portfolio at https://jane.dev") {
		t.Fatalf("expected website to be detected")
	}
}
