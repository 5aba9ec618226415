package repl

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/odvcencio/citrine"
	"github.com/odvcencio/citrine/value"
)

// Server exposes Citrine evaluation over a websocket JSON-RPC protocol:
// upgrade, then a read loop of rpcRequest/rpcResponse envelopes. Each
// connection gets its own Environment, so sessions never observe one
// another's bindings.
type Server struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	sessions map[*websocket.Conn]*value.Environment
}

// NewServer builds a Server ready to be mounted with http.Handle.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[*websocket.Conn]*value.Environment),
	}
}

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("citrine repl: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	env := citrine.StandardEnv()
	s.mu.Lock()
	s.sessions[conn] = env
	s.mu.Unlock()
	log.Printf("citrine repl: session %s connected", env.ID())

	defer func() {
		s.mu.Lock()
		delete(s.sessions, conn)
		s.mu.Unlock()
		log.Printf("citrine repl: session %s disconnected", env.ID())
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		resp := s.handle(req, env)
		data, _ := json.Marshal(resp)
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (s *Server) handle(req rpcRequest, env *value.Environment) rpcResponse {
	switch req.Method {
	case "eval":
		return s.rpcEval(req, env)
	case "tokenize":
		return s.rpcTokenize(req)
	case "parse":
		return s.rpcParse(req)
	default:
		return rpcResponse{
			ID:    req.ID,
			Error: &rpcError{Code: -32601, Message: fmt.Sprintf("unknown method: %s", req.Method)},
		}
	}
}

func (s *Server) rpcEval(req rpcRequest, env *value.Environment) rpcResponse {
	var p struct {
		Source string `json:"source"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	v, err := citrine.EvalStr(p.Source, env)
	if err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	return rpcResponse{ID: req.ID, Result: map[string]string{"value": v.String()}}
}

func (s *Server) rpcTokenize(req rpcRequest) rpcResponse {
	var p struct {
		Source string `json:"source"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	return rpcResponse{ID: req.ID, Result: map[string]string{"tokens": DumpTokens(citrine.Tokenize(p.Source))}}
}

func (s *Server) rpcParse(req rpcRequest) rpcResponse {
	var p struct {
		Source string `json:"source"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	tree := citrine.Parse(p.Source)
	return rpcResponse{ID: req.ID, Result: map[string]string{
		"tree": tree.Dump(),
		"id":   tree.ID().String(),
	}}
}
