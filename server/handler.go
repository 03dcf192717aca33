package server

import (
	"encoding/json"
	"net/http"
)

type commandInfo struct {
	Name    string   `json:"name"`
	Usage   string   `json:"usage,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

// Handler serves the websocket console and the read-only endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/console", s.ServeConsole)
	mux.HandleFunc("/commands", s.commandsHandler)
	mux.HandleFunc("/players", s.playersHandler)
	return mux
}

func (s *Server) commandsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cmds := s.Commands()
	infos := make([]commandInfo, len(cmds))
	for i, c := range cmds {
		infos[i] = commandInfo{Name: c.Name, Usage: c.Usage, Aliases: c.Aliases}
	}
	writeJSON(w, infos)
}

func (s *Server) playersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	players := s.Players()
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
	}
	writeJSON(w, names)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
