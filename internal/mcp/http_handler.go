package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	codeParseError    = -32700
	codeInternalError = -32603
)

// NewHTTPHandler wraps a server in a plain JSON-RPC POST endpoint for the
// local test harness. Production HTTP serving goes through the SDK's
// streamable handler instead.
func NewHTTPHandler(server *sdkmcp.Server, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &httpHandler{server: server, logger: logger}
}

type httpHandler struct {
	server *sdkmcp.Server
	logger *slog.Logger
}

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
	ID      any           `json:"id,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.reply(w, jsonrpcResponse{JSONRPC: "2.0", Error: &jsonrpcError{Code: codeParseError, Message: "Parse error"}})
		return
	}

	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.reply(w, jsonrpcResponse{JSONRPC: "2.0", Error: &jsonrpcError{Code: codeParseError, Message: "Parse error"}})
		return
	}

	h.bridge(w, r, req)
}

// bridge routes a single JSON-RPC request through an in-memory transport
// pair connected to the server.
func (h *httpHandler) bridge(w http.ResponseWriter, r *http.Request, req jsonrpcRequest) {
	serverSide, clientSide := sdkmcp.NewInMemoryTransports()

	session, err := h.server.Connect(r.Context(), serverSide, nil)
	if err != nil {
		h.internalError(w, req, fmt.Errorf("connect: %w", err))
		return
	}
	defer session.Close()

	conn, err := clientSide.Connect(r.Context())
	if err != nil {
		h.internalError(w, req, fmt.Errorf("connect client transport: %w", err))
		return
	}
	defer conn.Close()

	// Each request gets a fresh session, so the SDK's handshake has to be
	// completed here before any method other than the handshake's own.
	switch req.Method {
	case "initialize", "ping", "notifications/initialized":
	default:
		if err := initializeConn(r.Context(), conn); err != nil {
			h.internalError(w, req, fmt.Errorf("handshake: %w", err))
			return
		}
	}

	id, err := jsonrpc.MakeID(req.ID)
	if err != nil {
		h.internalError(w, req, fmt.Errorf("request id: %w", err))
		return
	}

	if err := conn.Write(r.Context(), &jsonrpc.Request{
		ID:     id,
		Method: req.Method,
		Params: req.Params,
	}); err != nil {
		h.internalError(w, req, fmt.Errorf("send: %w", err))
		return
	}

	msg, err := conn.Read(r.Context())
	if err != nil {
		h.internalError(w, req, fmt.Errorf("receive: %w", err))
		return
	}

	resp, ok := msg.(*jsonrpc.Response)
	if !ok {
		h.internalError(w, req, fmt.Errorf("receive: unexpected message type %T", msg))
		return
	}

	h.reply(w, jsonrpcResponse{
		JSONRPC: "2.0",
		Result:  resp.Result,
		Error:   convertSDKError(resp.Error),
		ID:      resp.ID.Raw(),
	})
}

// initializeConn runs the MCP initialize exchange followed by the
// notifications/initialized notification so the session accepts regular
// method calls.
func initializeConn(ctx context.Context, conn sdkmcp.Connection) error {
	params, err := json.Marshal(map[string]any{
		"protocolVersion": "2025-06-18",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "parley-http-bridge", "version": "0"},
	})
	if err != nil {
		return err
	}

	id, err := jsonrpc.MakeID("_parley_bridge_init")
	if err != nil {
		return err
	}
	if err := conn.Write(ctx, &jsonrpc.Request{ID: id, Method: "initialize", Params: params}); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	msg, err := conn.Read(ctx)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	resp, ok := msg.(*jsonrpc.Response)
	if !ok {
		return fmt.Errorf("initialize: unexpected message type %T", msg)
	}
	if resp.Error != nil {
		return fmt.Errorf("initialize: %w", resp.Error)
	}

	if err := conn.Write(ctx, &jsonrpc.Request{Method: "notifications/initialized", Params: json.RawMessage(`{}`)}); err != nil {
		return fmt.Errorf("initialized notification: %w", err)
	}
	return nil
}

func (h *httpHandler) internalError(w http.ResponseWriter, req jsonrpcRequest, err error) {
	h.logger.Debug("jsonrpc bridge failed", "method", req.Method, "error", err)
	h.reply(w, jsonrpcResponse{
		JSONRPC: "2.0",
		Error:   &jsonrpcError{Code: codeInternalError, Message: fmt.Sprintf("Internal error: %v", err)},
		ID:      req.ID,
	})
}

// reply always answers 200 OK; JSON-RPC carries errors in the body.
func (h *httpHandler) reply(w http.ResponseWriter, resp jsonrpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Debug("jsonrpc encode failed", "error", err)
	}
}

func convertSDKError(err error) *jsonrpcError {
	if err == nil {
		return nil
	}
	var wire *jsonrpc.Error
	if errors.As(err, &wire) {
		out := &jsonrpcError{
			Code:    int(wire.Code),
			Message: wire.Message,
		}
		if len(wire.Data) > 0 {
			out.Data = wire.Data
		}
		return out
	}
	return &jsonrpcError{Code: codeInternalError, Message: err.Error()}
}
