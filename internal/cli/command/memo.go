package command

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/urfave/cli/v2"
)

type memo struct {
	Data   string `json:"data" yaml:"data"`
	Author string `json:"author" yaml:"author"`
}

// memoRow is a memo with its current position in the list.
type memoRow struct {
	Index  int    `json:"index" yaml:"index"`
	Data   string `json:"data" yaml:"data"`
	Author string `json:"author" yaml:"author"`
}

type memoBody struct {
	Data string `json:"data"`
}

func indexed(memos []memo) []memoRow {
	rows := make([]memoRow, len(memos))
	for i, m := range memos {
		rows[i] = memoRow{Index: i, Data: m.Data, Author: m.Author}
	}
	return rows
}

// MemoCommand returns the memo subcommand group.
func MemoCommand() *cli.Command {
	return &cli.Command{
		Name:    "memo",
		Aliases: []string{"memos"},
		Usage:   "Read and edit the shared memo list",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all memos",
				Action:  memoList,
			},
			{
				Name:      "add",
				Usage:     "Append a memo authored by the signed-in user",
				ArgsUsage: "DATA",
				Action:    memoAdd,
			},
			{
				Name:      "get",
				Usage:     "Show the memo at INDEX",
				ArgsUsage: "INDEX",
				Action:    memoGet,
			},
			{
				Name:      "update",
				Usage:     "Replace the data of the memo at INDEX and take over authorship",
				ArgsUsage: "INDEX DATA",
				Action:    memoUpdate,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete the memo at INDEX",
				ArgsUsage: "INDEX",
				Action:    memoDelete,
			},
		},
	}
}

// parseIndex reads a non-negative list index from args.
func parseIndex(c *cli.Context) (int, error) {
	if c.NArg() < 1 {
		return 0, errors.New("INDEX is required")
	}
	idx, err := strconv.Atoi(c.Args().First())
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("invalid index %q: must be a non-negative integer", c.Args().First())
	}
	return idx, nil
}

func memoList(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}

	var memos []memo
	if err := s.call(c.Context, http.MethodGet, "/memo", nil, &memos); err != nil {
		return err
	}
	return s.print(indexed(memos))
}

func memoAdd(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("DATA is required")
	}
	s, err := openSession(c)
	if err != nil {
		return err
	}

	var memos []memo
	if err := s.call(c.Context, http.MethodPut, "/memo", memoBody{Data: c.Args().First()}, &memos); err != nil {
		return err
	}
	return s.print(indexed(memos))
}

func memoGet(c *cli.Context) error {
	idx, err := parseIndex(c)
	if err != nil {
		return err
	}
	s, err := openSession(c)
	if err != nil {
		return err
	}

	var m memo
	if err := s.call(c.Context, http.MethodGet, "/memo/"+strconv.Itoa(idx), nil, &m); err != nil {
		return err
	}
	return s.print(memoRow{Index: idx, Data: m.Data, Author: m.Author})
}

func memoUpdate(c *cli.Context) error {
	idx, err := parseIndex(c)
	if err != nil {
		return err
	}
	if c.NArg() < 2 {
		return errors.New("DATA is required")
	}
	s, err := openSession(c)
	if err != nil {
		return err
	}

	body := memoBody{Data: c.Args().Get(1)}
	var m memo
	if err := s.call(c.Context, http.MethodPatch, "/memo/"+strconv.Itoa(idx), body, &m); err != nil {
		return err
	}
	return s.print(memoRow{Index: idx, Data: m.Data, Author: m.Author})
}

func memoDelete(c *cli.Context) error {
	idx, err := parseIndex(c)
	if err != nil {
		return err
	}
	s, err := openSession(c)
	if err != nil {
		return err
	}

	var memos []memo
	if err := s.call(c.Context, http.MethodDelete, "/memo/"+strconv.Itoa(idx), nil, &memos); err != nil {
		return err
	}
	return s.print(indexed(memos))
}
