package command

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMemoList(t *testing.T) {
	server := newMockServer(t)
	server.handle("GET /memo", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, sampleMemos())
	})
	r := newCLIRunner(t, server)

	t.Run("table", func(t *testing.T) {
		out, err := r.run("memo", "list")
		if err != nil {
			t.Fatalf("memo list error = %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines:\n%s", len(lines), out)
		}
		if strings.Join(strings.Fields(lines[0]), " ") != "INDEX DATA AUTHOR" {
			t.Errorf("header = %q", lines[0])
		}
		if strings.Join(strings.Fields(lines[1]), " ") != "0 Moonhalo saltyaom" {
			t.Errorf("first row = %q", lines[1])
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := r.run("--output", "json", "memo", "list")
		if err != nil {
			t.Fatalf("memo list error = %v", err)
		}
		var rows []memoRow
		if err := json.Unmarshal([]byte(out), &rows); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if len(rows) != 2 || rows[1].Index != 1 || rows[1].Author != "alice" {
			t.Errorf("rows = %+v", rows)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := r.run("-o", "yaml", "memo", "ls")
		if err != nil {
			t.Fatalf("memo list error = %v", err)
		}
		var rows []memoRow
		if err := yaml.Unmarshal([]byte(out), &rows); err != nil {
			t.Fatalf("output is not YAML: %v", err)
		}
		if len(rows) != 2 || rows[0].Data != "Moonhalo" {
			t.Errorf("rows = %+v", rows)
		}
	})
}

func TestMemoAdd(t *testing.T) {
	server := newMockServer(t)
	server.handle("PUT /memo", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusCreated, append(sampleMemos(), memo{Data: "new note", Author: "alice"}))
	})
	r := newCLIRunner(t, server)

	out, err := r.run("memo", "add", "new note")
	if err != nil {
		t.Fatalf("memo add error = %v", err)
	}
	if !strings.Contains(out, "new note") {
		t.Errorf("output = %q", out)
	}

	_, body := server.last(t)
	if strings.TrimSpace(body) != `{"data":"new note"}` {
		t.Errorf("body = %q", body)
	}

	if _, err := r.run("memo", "add"); err == nil {
		t.Error("memo add without DATA should fail")
	}
}

func TestMemoGet(t *testing.T) {
	server := newMockServer(t)
	server.handle("GET /memo/1", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, sampleMemos()[1])
	})
	r := newCLIRunner(t, server)

	out, err := r.run("-o", "json", "memo", "get", "1")
	if err != nil {
		t.Fatalf("memo get error = %v", err)
	}
	var row memoRow
	json.Unmarshal([]byte(out), &row)
	if row != (memoRow{Index: 1, Data: "hello", Author: "alice"}) {
		t.Errorf("row = %+v", row)
	}

	_, err = r.run("memo", "get", "7")
	if err == nil || !strings.Contains(err.Error(), "MH-REQ-4040") {
		t.Errorf("missing index error = %v", err)
	}
}

func TestMemoUpdate(t *testing.T) {
	server := newMockServer(t)
	server.handle("PATCH /memo/0", func(w http.ResponseWriter, r *http.Request) {
		var body memoBody
		json.NewDecoder(strings.NewReader(server.bodies[len(server.bodies)-1])).Decode(&body)
		jsonResponse(w, http.StatusOK, memo{Data: body.Data, Author: "alice"})
	})
	r := newCLIRunner(t, server)

	out, err := r.run("-o", "json", "memo", "update", "0", "edited")
	if err != nil {
		t.Fatalf("memo update error = %v", err)
	}
	_, body := server.last(t)
	if strings.TrimSpace(body) != `{"data":"edited"}` {
		t.Errorf("body = %q", body)
	}

	var row memoRow
	json.Unmarshal([]byte(out), &row)
	if row.Data != "edited" || row.Author != "alice" {
		t.Errorf("row = %+v", row)
	}
}

func TestMemoUpdate_RequiresData(t *testing.T) {
	server := newMockServer(t)
	r := newCLIRunner(t, server)

	if _, err := r.run("memo", "update", "0"); err == nil {
		t.Error("memo update without DATA should fail")
	}
	if len(server.requests) != 0 {
		t.Errorf("update without DATA sent %d requests", len(server.requests))
	}
}

func TestMemoDelete(t *testing.T) {
	server := newMockServer(t)
	server.handle("DELETE /memo/0", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, sampleMemos()[1:])
	})
	r := newCLIRunner(t, server)

	out, err := r.run("-o", "json", "memo", "rm", "0")
	if err != nil {
		t.Fatalf("memo delete error = %v", err)
	}
	var rows []memoRow
	json.Unmarshal([]byte(out), &rows)
	if len(rows) != 1 || rows[0].Index != 0 || rows[0].Author != "alice" {
		t.Errorf("remaining = %+v", rows)
	}
}

func TestMemo_InvalidIndex(t *testing.T) {
	server := newMockServer(t)
	r := newCLIRunner(t, server)

	for _, args := range [][]string{
		{"memo", "get"},
		{"memo", "get", "abc"},
		{"memo", "delete", "-1"},
		{"memo", "update", "1.5", "x"},
	} {
		if _, err := r.run(args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
	if len(server.requests) != 0 {
		t.Errorf("invalid indexes sent %d requests", len(server.requests))
	}
}
