package assistant

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/llm"
)

func assistantRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(&Service{LLM: client}).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postAssistant(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAssistantRequiresAction(t *testing.T) {
	router := assistantRouter(&fakeLLM{response: "{}"})

	resp := postAssistant(router, `{"resumeData":{}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "action is required") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAssistantJobMatchRequiresJobDescription(t *testing.T) {
	router := assistantRouter(&fakeLLM{response: "{}"})

	resp := postAssistant(router, `{"action":"job_match"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "jobDescription") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAssistantUnknownActionRejected(t *testing.T) {
	router := assistantRouter(&fakeLLM{response: "{}"})

	resp := postAssistant(router, `{"action":"translate"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestAssistantMapsRateLimit(t *testing.T) {
	router := assistantRouter(&fakeLLM{err: llm.ErrRateLimited})

	resp := postAssistant(router, `{"action":"suggestions"}`)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "rate_limited") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAssistantMapsNotConfigured(t *testing.T) {
	router := assistantRouter(llm.PlaceholderClient{})

	resp := postAssistant(router, `{"action":"suggestions"}`)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "llm_unavailable") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAssistantMapsUpstreamFailure(t *testing.T) {
	router := assistantRouter(&fakeLLM{err: llm.ErrUnavailable})

	resp := postAssistant(router, `{"action":"suggestions"}`)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.Code)
	}
}

func TestAssistantReturnsParsedPayload(t *testing.T) {
	router := assistantRouter(&fakeLLM{response: `{"summary":"Strong resume"}`})

	resp := postAssistant(router, `{"action":"suggestions","resumeData":{"personalInfo":{"fullName":"Jane"}}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Strong resume") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}
