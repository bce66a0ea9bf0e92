// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Jyotish computations for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/jyotish/internal/astro"
	"github.com/starford/jyotish/internal/index"
	"github.com/starford/jyotish/internal/profile"
	"github.com/starford/jyotish/internal/storage"
)

// Server wraps the MCP server with Jyotish tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
	db    *index.DB
}

// New creates a new MCP server with all Jyotish tools registered.
func New(store storage.Provider, db *index.DB) *Server {
	s := &Server{store: store, db: db}

	s.mcp = server.NewMCPServer(
		"Jyotish",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	birthArgs := []mcp.ToolOption{
		mcp.WithString("profile", mcp.Description("Vault path of a stored profile (e.g. family/asha.yaml); overrides inline birth fields")),
		mcp.WithString("dob", mcp.Description("Date of birth, YYYY-MM-DD")),
		mcp.WithString("tob", mcp.Description("Time of birth, HH:MM (24h)")),
		mcp.WithNumber("lat", mcp.Description("Birth latitude in decimal degrees")),
		mcp.WithNumber("lng", mcp.Description("Birth longitude in decimal degrees")),
	}

	s.mcp.AddTool(mcp.NewTool("calculate_chart",
		append([]mcp.ToolOption{
			mcp.WithDescription("Compute a sidereal birth chart: planetary signs, degrees, houses, " +
				"nakshatras, and dignities. Pass 'varga' for a divisional chart (e.g. 9 for Navamsa)."),
			mcp.WithNumber("varga", mcp.Description("Divisional chart divisor (1, 2, 3, 4, 7, 9, 10, 12, 16, 20, 24, 27, 30, 60); default 1")),
		}, birthArgs...)...,
	), s.calculateChart)

	s.mcp.AddTool(mcp.NewTool("get_dasha_periods",
		append([]mcp.ToolOption{
			mcp.WithDescription("Compute the Vimshottari dasha tree: planetary periods with start/end dates."),
			mcp.WithNumber("levels", mcp.Description("Nesting depth 1-3 (mahadasha, antardasha, pratyantardasha); default 2")),
		}, birthArgs...)...,
	), s.getDashaPeriods)

	s.mcp.AddTool(mcp.NewTool("detect_yogas",
		append([]mcp.ToolOption{
			mcp.WithDescription("Detect classical yogas (Gaja Kesari, Pancha Mahapurusha, Kemadruma, ...) in a birth chart."),
		}, birthArgs...)...,
	), s.detectYogas)

	s.mcp.AddTool(mcp.NewTool("check_compatibility",
		mcp.WithDescription("Run the 36-point ashtakoota compatibility match between two stored profiles."),
		mcp.WithString("partner1", mcp.Required(), mcp.Description("Vault path of the first partner's profile")),
		mcp.WithString("partner2", mcp.Required(), mcp.Description("Vault path of the second partner's profile")),
	), s.checkCompatibility)

	s.mcp.AddTool(mcp.NewTool("list_profiles",
		mcp.WithDescription("List all birth profiles or profiles in a specific folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listProfiles)

	s.mcp.AddTool(mcp.NewTool("read_profile",
		mcp.WithDescription("Read the raw YAML of a stored birth profile."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative vault path (e.g. family/asha.yaml)")),
	), s.readProfile)

	s.mcp.AddTool(mcp.NewTool("create_profile",
		mcp.WithDescription("Create a new birth profile in the vault. Content MUST follow the "+
			"canonical profile format (YAML with name, dob, tob, lat, lng). Read the contract "+
			"first via the jyotish://profile-format resource."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative vault path for the new profile (must end with .yaml)")),
		mcp.WithString("content", mcp.Required(), mcp.Description("YAML content following the profile format contract")),
	), s.createProfile)

	// Resource: profile format contract.
	s.mcp.AddResource(
		mcp.NewResource("jyotish://profile-format", "Profile Format Contract",
			mcp.WithResourceDescription("Canonical YAML profile format that all vault documents must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readProfileFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// birthFromRequest resolves a tool call into birth data: a stored profile
// when the "profile" argument is set, inline fields otherwise.
func (s *Server) birthFromRequest(req mcp.CallToolRequest) (astro.BirthData, error) {
	if path := req.GetString("profile", ""); path != "" {
		data, err := s.store.Read(path)
		if err != nil {
			return astro.BirthData{}, fmt.Errorf("profile not found: %s", path)
		}
		p, err := profile.Parse(data)
		if err != nil {
			return astro.BirthData{}, err
		}
		return p.Birth, nil
	}

	dob, err := req.RequireString("dob")
	if err != nil {
		return astro.BirthData{}, err
	}
	tob, err := req.RequireString("tob")
	if err != nil {
		return astro.BirthData{}, err
	}
	b := astro.BirthData{
		DOB: dob,
		TOB: tob,
		Lat: req.GetFloat("lat", 0),
		Lng: req.GetFloat("lng", 0),
	}
	if err := b.Validate(); err != nil {
		return astro.BirthData{}, err
	}
	return b, nil
}

func jsonResult(v any) *mcp.CallToolResult {
	out, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(out))
}

func (s *Server) calculateChart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	b, err := s.birthFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	chart, err := astro.NatalChart(b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if n := int(req.GetFloat("varga", 1)); n > 1 {
		if chart, err = astro.Varga(chart, n); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	return jsonResult(chart), nil
}

func (s *Server) getDashaPeriods(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	b, err := s.birthFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	levels := int(req.GetFloat("levels", 2))
	periods, err := astro.VimshottariDashas(b, levels)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(periods), nil
}

func (s *Server) detectYogas(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	b, err := s.birthFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	chart, err := astro.NatalChart(b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	yogas, err := astro.DetectYogas(chart)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(yogas) == 0 {
		return mcp.NewToolResultText("no yogas detected"), nil
	}
	return jsonResult(yogas), nil
}

func (s *Server) checkCompatibility(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	readBirth := func(arg string) (astro.BirthData, error) {
		path, err := req.RequireString(arg)
		if err != nil {
			return astro.BirthData{}, err
		}
		data, err := s.store.Read(path)
		if err != nil {
			return astro.BirthData{}, fmt.Errorf("profile not found: %s", path)
		}
		p, err := profile.Parse(data)
		if err != nil {
			return astro.BirthData{}, err
		}
		return p.Birth, nil
	}

	b1, err := readBirth("partner1")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b2, err := readBirth("partner2")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := astro.Compatibility(b1, b2)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(data), nil
}

func (s *Server) listProfiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := req.GetString("folder", "")

	metas, err := s.store.List(folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, m := range metas {
		paths = append(paths, m.Path)
	}
	if len(paths) == 0 {
		return mcp.NewToolResultText("no profiles found"), nil
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) readProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) createProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, readErr := s.store.Read(path); readErr == nil {
		return mcp.NewToolResultError(fmt.Sprintf("profile already exists: %s", path)), nil
	}

	data := []byte(content)
	if _, err := profile.Parse(data); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.store.Write(path, data); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := index.IndexDocument(s.db, path, data, time.Now()); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) readProfileFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "jyotish://profile-format",
			MIMEType: "text/markdown",
			Text:     ProfileFormatContract,
		},
	}, nil
}
