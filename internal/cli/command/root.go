package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memohalo-go/internal/cli/config"
	"github.com/yndnr/memohalo-go/internal/cli/connection"
	"github.com/yndnr/memohalo-go/internal/cli/output"
	"github.com/yndnr/memohalo-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "memohalo-cli",
		Usage:   "MemoHalo command-line client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			UserCommand(),
			MemoCommand(),
			StatusCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "server",
			Aliases:     []string{"s"},
			Usage:       "MemoHalo server address (e.g., localhost:5080)",
			EnvVars:     []string{"MEMOHALO_SERVER"},
			DefaultText: config.DefaultServer,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.StringFlag{
			Name:        "state",
			Usage:       "Path of the CLI state file",
			EnvVars:     []string{"MEMOHALO_CLI_STATE"},
			DefaultText: "~/.memohalo/cli.yaml",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server    string
	Output    string
	StatePath string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:    c.String("server"),
		Output:    c.String("output"),
		StatePath: c.String("state"),
	}
}

// session is the state of one CLI invocation.
type session struct {
	state     *config.State
	statePath string
	client    *connection.HTTPClient
	format    output.Format
	out       io.Writer
}

// openSession loads the state file and builds a client that carries the
// stored cookie. An explicit --server that differs from the stored one
// drops the stored session, which belongs to the other server.
func openSession(c *cli.Context) (*session, error) {
	flags := ParseGlobalFlags(c)

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return nil, err
	}

	st, err := config.Load(flags.StatePath)
	if err != nil {
		return nil, err
	}
	if flags.Server != "" && flags.Server != st.Server {
		st.Server = flags.Server
		st.ClearSession()
	}

	return &session{
		state:     st,
		statePath: flags.StatePath,
		client:    connection.NewHTTPClient(st.Server, st.CookieName, st.Cookie),
		format:    format,
		out:       c.App.Writer,
	}, nil
}

// save records the client's current cookie in the state file.
func (s *session) save() error {
	s.state.Cookie = s.client.Cookie()
	if !s.state.SignedIn() {
		s.state.Username = ""
	}
	return config.Save(s.state, s.statePath)
}

// call sends a request and decodes the response data into target.
func (s *session) call(ctx context.Context, method, path string, body, target any) error {
	resp, err := s.client.Do(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return connection.ParseResponse(resp, target)
}

// print writes data in the selected output format.
func (s *session) print(data any) error {
	return output.NewFormatter(s.format).Format(s.out, data)
}
