package command

import (
	"net/http"

	"github.com/urfave/cli/v2"
)

type healthResponse struct {
	Status    string `json:"status" yaml:"status"`
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Time      string `json:"time" yaml:"time"`
}

type readyResponse struct {
	Status     string `json:"status" yaml:"status"`
	Version    string `json:"version" yaml:"version"`
	Identities int    `json:"identities" yaml:"identities"`
	Sessions   int    `json:"sessions" yaml:"sessions"`
	Memos      int    `json:"memos" yaml:"memos"`
}

// StatusCommand returns the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show server health, or readiness with --ready",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ready",
				Usage: "Query /ready, which includes store sizes",
			},
		},
		Action: status,
	}
}

func status(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}

	if c.Bool("ready") {
		var ready readyResponse
		if err := s.call(c.Context, http.MethodGet, "/ready", nil, &ready); err != nil {
			return err
		}
		return s.print(ready)
	}

	var health healthResponse
	if err := s.call(c.Context, http.MethodGet, "/health", nil, &health); err != nil {
		return err
	}
	return s.print(health)
}
