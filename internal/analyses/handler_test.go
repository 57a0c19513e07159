package analyses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/ats/match"
	"ats-backend/internal/ats/rubric"
	"ats-backend/resume/model"
)

func testRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "guest:u1")
	})
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func resumeModelFixture() model.Resume {
	return model.Resume{
		PersonalInfo: model.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@corp.io",
			Phone:    "555-111-2222",
			Location: "Austin, TX",
			LinkedIn: "linkedin.com/in/janedoe",
			Summary:  "Engineer with 10 years of experience. Led platform teams that delivered cloud infrastructure, improved reliability and reduced costs by 30% while mentoring engineers across three offices.",
		},
		Experience: []model.Experience{
			{
				Company:     "Acme",
				Position:    "Staff Engineer",
				StartDate:   "2019-01",
				Current:     true,
				Description: "Led the replatforming of the core billing system onto Kubernetes clusters.",
				Highlights:  []string{"Reduced infra cost by 30%", "Mentored 6 engineers"},
			},
		},
		Education: []model.Education{
			{Institution: "State University", Degree: "BS Computer Science", GPA: "3.9"},
		},
		Skills: []model.Skill{
			{Name: "Python", Level: model.SkillExpert},
			{Name: "Go", Level: model.SkillAdvanced},
			{Name: "Docker", Level: model.SkillIntermediate},
			{Name: "SQL", Level: model.SkillIntermediate},
			{Name: "Leadership", Level: model.SkillAdvanced},
		},
	}
}

func TestScoreEndpoint(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")
	router := testRouter(svc)

	payload, err := json.Marshal(scoreRequest{Resume: resumeModelFixture()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/score", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var result rubric.Result
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Categories) != 7 {
		t.Fatalf("categories = %d, want 7", len(result.Categories))
	}
}

func TestScoreEndpointRejectsBadJSON(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/score", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestKeywordMatchEndpoint(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")
	router := testRouter(svc)

	payload := `{"resumeText":"Experienced Python engineer skilled in Docker","jobDescription":"Looking for a Python developer with Docker experience"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/keyword-match", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var result match.Result
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.MatchPercentage == 0 || len(result.MatchedKeywords) == 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestKeywordMatchEndpointRequiresJobDescription(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/keyword-match",
		strings.NewReader(`{"resumeText":"some text"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAnalyzeEndpointUnknownDocument(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses",
		strings.NewReader(`{"documentId":"no-such-doc"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestAnalyzeEndpointWithoutBodyUsesCurrent(t *testing.T) {
	svc, doc := newTestService(t, "guest:u1")
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var out AnalysisResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.DocumentID != doc.ID || out.Status != StatusCompleted {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.ParsedDocument == nil || len(out.ParsedDocument.Sections) != 8 {
		t.Fatalf("parsed document echo missing: %+v", out.ParsedDocument)
	}
}

func TestGetEndpointUnknownAnalysis(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}
