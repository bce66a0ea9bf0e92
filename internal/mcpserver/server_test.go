package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/jyotish/internal/index"
	"github.com/starford/jyotish/internal/storage"
)

const validDoc = "name: Asha\ndob: \"1990-05-15\"\ntob: \"12:30\"\nlat: 28.6139\nlng: 77.209\n"

func testServer(t *testing.T) (*Server, storage.Provider) {
	t.Helper()

	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}

	dbFile, err := os.CreateTemp("", "jyotish-mcp-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	srv := New(store, db)
	return srv, store
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call the
	// tool handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "calculate_chart":
		result, err = srv.calculateChart(ctx, req)
	case "get_dasha_periods":
		result, err = srv.getDashaPeriods(ctx, req)
	case "detect_yogas":
		result, err = srv.detectYogas(ctx, req)
	case "check_compatibility":
		result, err = srv.checkCompatibility(ctx, req)
	case "list_profiles":
		result, err = srv.listProfiles(ctx, req)
	case "read_profile":
		result, err = srv.readProfile(ctx, req)
	case "create_profile":
		result, err = srv.createProfile(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateAndReadProfile(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "create_profile", map[string]interface{}{
		"path":    "asha.yaml",
		"content": validDoc,
	})
	if text := resultText(r); text != "created: asha.yaml" {
		t.Errorf("create result = %q", text)
	}

	r = callTool(t, srv, "read_profile", map[string]interface{}{
		"path": "asha.yaml",
	})
	if text := resultText(r); text != validDoc {
		t.Errorf("read result = %q", text)
	}
}

func TestCreateProfile_InvalidDocument(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "create_profile", map[string]interface{}{
		"path":    "bad.yaml",
		"content": "dob: nope\n",
	})
	if !r.IsError {
		t.Error("expected error for invalid document")
	}
}

func TestListProfiles(t *testing.T) {
	srv, store := testServer(t)
	_ = store.Write("a.yaml", []byte(validDoc))
	_ = store.Write("b.yaml", []byte(validDoc))

	r := callTool(t, srv, "list_profiles", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "a.yaml") || !strings.Contains(text, "b.yaml") {
		t.Errorf("list = %q", text)
	}
}

func TestReadProfileMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_profile", map[string]interface{}{"path": "nope.yaml"})
	if !r.IsError {
		t.Error("expected error for missing profile")
	}
}

func TestCalculateChart_Inline(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "calculate_chart", map[string]interface{}{
		"dob": "1990-05-15",
		"tob": "12:30",
		"lat": 28.6139,
		"lng": 77.2090,
	})
	if r.IsError {
		t.Fatalf("chart errored: %s", resultText(r))
	}
	var chart struct {
		Varga  string `json:"varga"`
		Points []any  `json:"points"`
	}
	if err := json.Unmarshal([]byte(resultText(r)), &chart); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if chart.Varga != "D1" {
		t.Errorf("varga = %q, want D1", chart.Varga)
	}
	if len(chart.Points) != 10 {
		t.Errorf("points = %d, want 10", len(chart.Points))
	}
}

func TestCalculateChart_FromProfileWithVarga(t *testing.T) {
	srv, store := testServer(t)
	_ = store.Write("asha.yaml", []byte(validDoc))

	r := callTool(t, srv, "calculate_chart", map[string]interface{}{
		"profile": "asha.yaml",
		"varga":   float64(9),
	})
	if r.IsError {
		t.Fatalf("chart errored: %s", resultText(r))
	}
	var chart struct {
		Varga string `json:"varga"`
	}
	_ = json.Unmarshal([]byte(resultText(r)), &chart)
	if chart.Varga != "D9" {
		t.Errorf("varga = %q, want D9", chart.Varga)
	}
}

func TestCalculateChart_MissingBirth(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "calculate_chart", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error when no birth data given")
	}
}

func TestGetDashaPeriods(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "get_dasha_periods", map[string]interface{}{
		"dob":    "1990-05-15",
		"tob":    "12:30",
		"lat":    28.6139,
		"lng":    77.2090,
		"levels": float64(1),
	})
	if r.IsError {
		t.Fatalf("dashas errored: %s", resultText(r))
	}
	var periods []struct {
		Planet string `json:"planet"`
	}
	if err := json.Unmarshal([]byte(resultText(r)), &periods); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(periods) != 9 {
		t.Errorf("periods = %d, want 9", len(periods))
	}
}

func TestDetectYogas(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "detect_yogas", map[string]interface{}{
		"dob": "1990-05-15",
		"tob": "12:30",
		"lat": 28.6139,
		"lng": 77.2090,
	})
	if r.IsError {
		t.Fatalf("yogas errored: %s", resultText(r))
	}
}

func TestCheckCompatibility(t *testing.T) {
	srv, store := testServer(t)
	_ = store.Write("a.yaml", []byte(validDoc))
	_ = store.Write("b.yaml", []byte("name: Dev\ndob: \"1988-11-02\"\ntob: \"06:45\"\nlat: 19.076\nlng: 72.8777\n"))

	r := callTool(t, srv, "check_compatibility", map[string]interface{}{
		"partner1": "a.yaml",
		"partner2": "b.yaml",
	})
	if r.IsError {
		t.Fatalf("compatibility errored: %s", resultText(r))
	}
	var data struct {
		TotalScore int `json:"totalScore"`
		Kootas     []any
	}
	if err := json.Unmarshal([]byte(resultText(r)), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.TotalScore < 0 || data.TotalScore > 36 {
		t.Errorf("totalScore = %d out of range", data.TotalScore)
	}
}

func TestCheckCompatibility_MissingProfile(t *testing.T) {
	srv, store := testServer(t)
	_ = store.Write("a.yaml", []byte(validDoc))

	r := callTool(t, srv, "check_compatibility", map[string]interface{}{
		"partner1": "a.yaml",
		"partner2": "ghost.yaml",
	})
	if !r.IsError {
		t.Error("expected error for missing partner profile")
	}
}
