package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avfs/avfs/vfs/memfs"
	"github.com/gin-gonic/gin"

	"github.com/hostkit-io/hostkit/api"
	"github.com/hostkit-io/hostkit/auth"
	"github.com/hostkit-io/hostkit/fileops"
	"github.com/hostkit-io/hostkit/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) (*gin.Engine, *fileops.Manager) {
	t.Helper()
	files := fileops.New(memfs.New(), fileops.WithLogger(logger.Nop()))
	h := &api.Handlers{Files: files, Region: "US", Log: logger.Nop()}

	engine := gin.New()
	h.Register(engine, auth.Config{})
	return engine, files
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, req)
	return rr
}

func dataField(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an object envelope: %v\nbody: %s", err, rr.Body.String())
	}
	return envelope.Data
}

// ---------------------------------------------------------------------------
// /v1/run and /v1/resolve
// ---------------------------------------------------------------------------

func TestRun_Success(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/run", `{"path":"echo","args":["hello"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	data := dataField(t, rr)
	if data["stdout"] != "hello" {
		t.Fatalf("expected stdout 'hello', got %v", data["stdout"])
	}
	if data["exit_code"] != float64(0) {
		t.Fatalf("expected exit code 0, got %v", data["exit_code"])
	}
}

func TestRun_NonZeroExitIsData(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/run", `{"path":"sh","args":["-c","exit 3"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("non-zero exit must still be 200, got %d", rr.Code)
	}
	if data := dataField(t, rr); data["exit_code"] != float64(3) {
		t.Fatalf("expected exit code 3, got %v", data["exit_code"])
	}
}

func TestRun_Input(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/run", `{"path":"cat","input":"piped text"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if data := dataField(t, rr); data["stdout"] != "piped text" {
		t.Fatalf("expected stdin round trip, got %v", data["stdout"])
	}
}

func TestRun_LaunchFailure(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/run", `{"path":"/no/such/binary"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for launch failure, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRun_MissingPath(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/run", `{"args":["x"]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing path, got %d", rr.Code)
	}
}

func TestResolve_Found(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "GET", "/v1/resolve/ls", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	data := dataField(t, rr)
	path, _ := data["path"].(string)
	if !strings.HasSuffix(path, "/ls") {
		t.Fatalf("expected absolute ls path, got %q", path)
	}
}

func TestResolve_NotFound(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "GET", "/v1/resolve/definitely-not-a-real-tool-xyz", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestResolve_QuietMissIsData(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "GET", "/v1/resolve/definitely-not-a-real-tool-xyz?quiet=1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for quiet miss, got %d: %s", rr.Code, rr.Body.String())
	}
	data := dataField(t, rr)
	if found, _ := data["found"].(bool); found {
		t.Fatal("expected found=false for a missing tool")
	}

	rr = doJSON(t, engine, "GET", "/v1/resolve/ls?quiet=true", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	data = dataField(t, rr)
	if found, _ := data["found"].(bool); !found {
		t.Fatal("expected found=true for ls")
	}
}

// ---------------------------------------------------------------------------
// /v1/fs
// ---------------------------------------------------------------------------

func writeFile(t *testing.T, files *fileops.Manager, path, content string) {
	t.Helper()
	if err := files.MkDir("/work"); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := files.WriteFile(path, []byte(content)); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFS_CopyAndList(t *testing.T) {
	engine, files := newEngine(t)
	writeFile(t, files, "/work/a.txt", "contents")

	rr := doJSON(t, engine, "POST", "/v1/fs/copy", `{"source":"/work/a.txt","destination":"/work/b.txt"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("copy: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, engine, "GET", "/v1/fs/list?path=/work", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("list response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 entries after copy, got %d", len(envelope.Data))
	}
}

func TestFS_RenameRejectsPath(t *testing.T) {
	engine, files := newEngine(t)
	writeFile(t, files, "/work/a.txt", "x")

	rr := doJSON(t, engine, "POST", "/v1/fs/rename", `{"path":"/work/a.txt","new_name":"sub/b.txt"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for separator in name, got %d", rr.Code)
	}
}

func TestFS_Remove(t *testing.T) {
	engine, files := newEngine(t)
	writeFile(t, files, "/work/a.txt", "x")

	rr := doJSON(t, engine, "DELETE", "/v1/fs/remove", `{"path":"/work/a.txt"}`)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if files.Exists("/work/a.txt") {
		t.Fatal("file should be gone")
	}
}

func TestFS_ExistsQuery(t *testing.T) {
	engine, files := newEngine(t)
	writeFile(t, files, "/work/a.txt", "x")

	rr := doJSON(t, engine, "GET", "/v1/fs/exists?path=/work/a.txt", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if data := dataField(t, rr); data["exists"] != true {
		t.Fatalf("expected exists=true, got %v", data)
	}

	rr = doJSON(t, engine, "GET", "/v1/fs/exists", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing path param, got %d", rr.Code)
	}
}

// ---------------------------------------------------------------------------
// /v1/text
// ---------------------------------------------------------------------------

func TestText_Links(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/text/links", `{"text":"see https://example.com/docs for details"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("links response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0]["text"] != "https://example.com/docs" {
		t.Fatalf("expected one link match, got %v", envelope.Data)
	}
}

func TestText_Words(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/text/words", `{"text":"two words"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var envelope struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("words response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 words, got %v", envelope.Data)
	}
}

func TestText_MissingText(t *testing.T) {
	engine, _ := newEngine(t)

	rr := doJSON(t, engine, "POST", "/v1/text/words", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

// ---------------------------------------------------------------------------
// auth
// ---------------------------------------------------------------------------

func TestAuthFlow(t *testing.T) {
	hash, err := auth.HashAPIKey("super-secret-key")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	authCfg := auth.Config{
		Enabled: true,
		Secret:  "signing-secret",
		APIKeys: []auth.APIKey{{Name: "ci-bot", Hash: hash}},
	}
	svc, err := auth.NewService(authCfg)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	files := fileops.New(memfs.New(), fileops.WithLogger(logger.Nop()))
	h := &api.Handlers{Files: files, Auth: svc, Region: "US", Log: logger.Nop()}
	engine := gin.New()
	h.Register(engine, authCfg)

	// No token: rejected.
	rr := doJSON(t, engine, "POST", "/v1/text/words", `{"text":"hi"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}

	// Exchange the API key.
	rr = doJSON(t, engine, "POST", "/v1/auth/token", `{"api_key":"super-secret-key"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("token exchange: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	token, _ := dataField(t, rr)["token"].(string)
	if token == "" {
		t.Fatal("expected a token")
	}

	// With token: accepted.
	req := httptest.NewRequest("POST", "/v1/text/words", strings.NewReader(`{"text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}
