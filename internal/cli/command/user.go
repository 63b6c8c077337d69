package command

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memohalo-go/internal/cli/config"
	"github.com/yndnr/memohalo-go/internal/cli/connection"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	Username string `json:"username" yaml:"username"`
}

type signOutResponse struct {
	Success bool `json:"success" yaml:"success"`
}

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "username",
			Aliases:  []string{"u"},
			Usage:    "Username",
			EnvVars:  []string{"MEMOHALO_USERNAME"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Aliases:  []string{"p"},
			Usage:    "Password",
			EnvVars:  []string{"MEMOHALO_PASSWORD"},
			Required: true,
		},
	}
}

// UserCommand returns the user subcommand group.
func UserCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Register, sign in and out",
		Subcommands: []*cli.Command{
			{
				Name:   "sign-up",
				Usage:  "Register a new user",
				Flags:  credentialFlags(),
				Action: userSignUp,
			},
			{
				Name:   "sign-in",
				Usage:  "Sign in and store the session cookie",
				Flags:  credentialFlags(),
				Action: userSignIn,
			},
			{
				Name:   "sign-out",
				Usage:  "End the stored session",
				Action: userSignOut,
			},
			{
				Name:   "profile",
				Usage:  "Show the signed-in user",
				Action: userProfile,
			},
		},
	}
}

func userSignUp(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}

	var user userResponse
	body := credentials{Username: c.String("username"), Password: c.String("password")}
	if err := s.call(c.Context, http.MethodPost, "/user/sign-up", body, &user); err != nil {
		return err
	}
	return s.print(user)
}

func userSignIn(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}

	var user userResponse
	body := credentials{Username: c.String("username"), Password: c.String("password")}
	if err := s.call(c.Context, http.MethodPost, "/user/sign-in", body, &user); err != nil {
		return err
	}
	if s.client.Cookie() == "" {
		return fmt.Errorf("server did not set a %q cookie", s.state.CookieName)
	}

	s.state.Username = user.Username
	if err := s.save(); err != nil {
		return err
	}
	return s.print(user)
}

// userSignOut clears the local session even when the server no longer
// knows it.
func userSignOut(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	if !s.state.SignedIn() {
		return errors.New("not signed in")
	}

	var res signOutResponse
	callErr := s.call(c.Context, http.MethodPost, "/user/sign-out", nil, &res)

	var apiErr *connection.APIError
	if callErr != nil && !(errors.As(callErr, &apiErr) && apiErr.Status == http.StatusUnauthorized) {
		return callErr
	}

	s.state.ClearSession()
	if err := config.Save(s.state, s.statePath); err != nil {
		return err
	}
	return s.print(signOutResponse{Success: true})
}

func userProfile(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	if !s.state.SignedIn() {
		return errors.New("not signed in (run: memohalo-cli user sign-in)")
	}

	var user userResponse
	if err := s.call(c.Context, http.MethodGet, "/user/profile", nil, &user); err != nil {
		return err
	}
	return s.print(user)
}
