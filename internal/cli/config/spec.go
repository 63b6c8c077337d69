package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultServer is used when neither --server nor the state file names one.
	DefaultServer = "localhost:5080"

	// DefaultCookieName matches the server default.
	DefaultCookieName = "token"
)

// State is the CLI state stored at ~/.memohalo/cli.yaml.
type State struct {
	Server     string `yaml:"server,omitempty"`
	CookieName string `yaml:"cookie_name,omitempty"`
	Cookie     string `yaml:"cookie,omitempty"`
	Username   string `yaml:"username,omitempty"`
}

// Default returns an empty state pointing at the default server.
func Default() *State {
	return &State{
		Server:     DefaultServer,
		CookieName: DefaultCookieName,
	}
}

// SignedIn reports whether a session cookie is stored.
func (s *State) SignedIn() bool {
	return s.Cookie != ""
}

// ClearSession forgets the stored session.
func (s *State) ClearSession() {
	s.Cookie = ""
	s.Username = ""
}

// DefaultPath returns the default state file path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".memohalo", "cli.yaml")
	}
	return filepath.Join(home, ".memohalo", "cli.yaml")
}
