package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/xsm-dev/xsm/internal/manager"
	"github.com/xsm-dev/xsm/internal/model"
	"github.com/xsm-dev/xsm/internal/version"
)

// mcpServer wraps the MCP server with the session manager.
type mcpServer struct {
	mgr *manager.Manager
	mcp *mcpserver.MCPServer
}

// mcpConfig holds MCP server configuration.
type mcpConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates an MCP server with all session tools registered.
func newMCPServer() (*mcpServer, error) {
	mgr, err := newManager()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{mgr: mgr}
	s.mcp = mcpserver.NewMCPServer("xsm", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg mcpConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("save_session",
			mcp.WithDescription("Snapshot the open windows into a named session"),
			mcp.WithString("name", mcp.Description("Session name (default: \"default\")")),
			mcp.WithArray("exclude", mcp.Description("Tokens excluding windows by id, pid, app name, or title substring")),
		),
		s.handleSave,
	)

	s.mcp.AddTool(
		mcp.NewTool("restore_session",
			mcp.WithDescription("Relaunch and reposition the windows of a saved session"),
			mcp.WithString("name", mcp.Description("Session name (default: \"default\")")),
			mcp.WithNumber("interval", mcp.Description("Seconds between application launches (default: 2)")),
			mcp.WithArray("exclude", mcp.Description("Tokens excluding records from the restore")),
		),
		s.handleRestore,
	)

	s.mcp.AddTool(
		mcp.NewTool("close_windows",
			mcp.WithDescription("Gracefully close windows: all of them, or only those matching tokens"),
			mcp.WithArray("tokens", mcp.Description("Selector tokens (window id, pid, app name, title substring); empty closes everything")),
			mcp.WithArray("exclude", mcp.Description("Tokens removing windows from the target set")),
		),
		s.handleClose,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_windows",
			mcp.WithDescription("Reapply a saved session's workspace layout to the live windows without relaunching"),
			mcp.WithString("name", mcp.Description("Session name (default: \"default\")")),
		),
		s.handleMove,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_sessions",
			mcp.WithDescription("List saved session names"),
		),
		s.handleList,
	)

	s.mcp.AddTool(
		mcp.NewTool("session_detail",
			mcp.WithDescription("Show every window record of a saved session"),
			mcp.WithString("name", mcp.Description("Session name"), mcp.Required()),
		),
		s.handleDetail,
	)
}

func (s *mcpServer) handleSave(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", model.DefaultSessionName)
	exclude := request.GetStringSlice("exclude", nil)

	records, err := s.mgr.Save(name, exclude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(SaveResult{OK: true, Action: "save", Session: name, Windows: len(records)})
}

func (s *mcpServer) handleRestore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", model.DefaultSessionName)
	interval := request.GetInt("interval", cfg.RestoringInterval)
	exclude := request.GetStringSlice("exclude", nil)

	report, err := s.mgr.Restore(ctx, name, time.Duration(interval)*time.Second, exclude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(report)
}

func (s *mcpServer) handleClose(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tokens := request.GetStringSlice("tokens", nil)
	exclude := request.GetStringSlice("exclude", nil)

	report, err := s.mgr.Close(ctx, tokens, exclude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(report)
}

func (s *mcpServer) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", model.DefaultSessionName)

	report, err := s.mgr.Move(ctx, name, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(report)
}

func (s *mcpServer) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.mgr.Store().List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if names == nil {
		names = []string{}
	}
	return textResult(ListResult{Sessions: names})
}

func (s *mcpServer) handleDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	session, err := s.mgr.Store().Load(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(session)
}

// textResult marshals v to JSON for the MCP text content.
func textResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
