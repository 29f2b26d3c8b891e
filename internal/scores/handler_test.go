package scores_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/bootstrap"
	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/config"
)

type errorEnvelope struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newRouter(t *testing.T, mutate ...func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:                 "0",
		Env:                  "dev",
		CORSAllowOrigin:      []string{"http://localhost:3000"},
		ObjectStoreType:      "local",
		LocalStoreDir:        t.TempDir(),
		ScoringDeterministic: true,
		BatchConcurrency:     4,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	app, err := bootstrap.Build(cfg)
	require.NoError(t, err)
	return app.Router
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// fieldErrors decodes validation details; other error codes carry objects there.
func fieldErrors(t *testing.T, env errorEnvelope) []resume.FieldError {
	t.Helper()
	var out []resume.FieldError
	require.NoError(t, json.Unmarshal(env.Error.Details, &out))
	return out
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	return env
}

func TestScoreResume(t *testing.T) {
	router := newRouter(t)

	resp := postJSON(t, router, "/api/v1/scores", resume.Sample())
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var res scoring.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
	assert.Equal(t, scoring.Evaluate(resume.Sample()).Overall, res.Overall)
	assert.Len(t, res.Sections, 5)
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))
}

func TestScoreEmptyObject(t *testing.T) {
	router := newRouter(t)

	resp := postJSON(t, router, "/api/v1/scores", "{}")
	require.Equal(t, http.StatusOK, resp.Code)

	var res scoring.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
	assert.Equal(t, []string{"communication", "problem solving", "teamwork"}, res.KeywordsFound)
	assert.Equal(t, 0, res.Sections["personal"].Score)
}

func TestScoreRejectsWrongShape(t *testing.T) {
	router := newRouter(t)

	resp := postJSON(t, router, "/api/v1/scores", `{"skills":"go"}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	env := decodeError(t, resp)
	assert.Equal(t, "validation_error", env.Error.Code)
	details := fieldErrors(t, env)
	require.NotEmpty(t, details)
	assert.Equal(t, "skills", details[0].Field)

	resp = postJSON(t, router, "/api/v1/scores", `{"personal":`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBatchScores(t *testing.T) {
	router := newRouter(t)

	resp := postJSON(t, router, "/api/v1/scores/batch", map[string]any{
		"resumes": []any{resume.Sample(), map[string]any{}},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var out struct {
		Results []scoring.Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out.Results, 2)
	assert.Greater(t, out.Results[0].Overall, out.Results[1].Overall)
}

func TestBatchScoresValidation(t *testing.T) {
	router := newRouter(t)

	resp := postJSON(t, router, "/api/v1/scores/batch", `{"resumes":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	many := make([]map[string]any, 26)
	for i := range many {
		many[i] = map[string]any{}
	}
	resp = postJSON(t, router, "/api/v1/scores/batch", map[string]any{"resumes": many})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = postJSON(t, router, "/api/v1/scores/batch", `{"resumes":[{}, {"skills":"go"}]}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	env := decodeError(t, resp)
	details := fieldErrors(t, env)
	require.NotEmpty(t, details)
	assert.Equal(t, "resumes.1.skills", details[0].Field)
}

func uploadFile(t *testing.T, router http.Handler, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fileWriter.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func docxBytes(t *testing.T, lines ...string) []byte {
	t.Helper()
	var paras strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&paras, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", l)
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			paras.String() + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUploadDocx(t *testing.T) {
	router := newRouter(t)

	resp := uploadFile(t, router, "jane.docx", docxBytes(t,
		"Jane Smith", "Data Engineer", "jane@company.io", "SKILLS", "Python, SQL, Leadership"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var out struct {
		Document struct {
			DocumentID string `json:"documentId"`
			FileName   string `json:"fileName"`
			MimeType   string `json:"mimeType"`
		} `json:"document"`
		Resume resume.Resume  `json:"resume"`
		Score  scoring.Result `json:"score"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Document.DocumentID)
	assert.Equal(t, "jane.docx", out.Document.FileName)
	assert.Equal(t, "Jane Smith", out.Resume.Personal.Name)
	assert.Len(t, out.Resume.Skills, 3)
	assert.Contains(t, out.Score.KeywordsFound, "Python")
	assert.Contains(t, out.Score.KeywordsFound, "Leadership")
}

func TestUploadRejectsOtherTypes(t *testing.T) {
	router := newRouter(t)

	resp := uploadFile(t, router, "resume.txt", []byte("Jane Smith\nEngineer"))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	env := decodeError(t, resp)
	assert.Equal(t, "validation_error", env.Error.Code)
	assert.Equal(t, "Please upload a PDF or DOCX file", env.Error.Message)
}

func TestUploadRequiresFile(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores/upload", strings.NewReader(""))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUploadCorruptPDF(t *testing.T) {
	router := newRouter(t)

	resp := uploadFile(t, router, "cv.pdf", []byte("%PDF-1.4\nthis is not a real pdf"))
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "unreadable_document", decodeError(t, resp).Error.Code)
}

func TestScoreRateLimited(t *testing.T) {
	router := newRouter(t, func(c *config.Config) {
		c.RateLimitRPS = 0.01
		c.RateLimitBurst = 1
	})

	first := postJSON(t, router, "/api/v1/scores", "{}")
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(t, router, "/api/v1/scores", "{}")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	env := decodeError(t, second)
	assert.Equal(t, "rate_limited", env.Error.Code)
	var retry struct {
		RetryAfterMs int64 `json:"retryAfterMs"`
	}
	require.NoError(t, json.Unmarshal(env.Error.Details, &retry))
	assert.Positive(t, retry.RetryAfterMs)

	// Draft routes are not in a limited group.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/sample", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	router := newRouter(t)
	require.Equal(t, http.StatusOK, postJSON(t, router, "/api/v1/scores", "{}").Code)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"database":"memory"`)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "score_evaluations_total")
	assert.Contains(t, resp.Body.String(), "score_overall_bucket")
}
