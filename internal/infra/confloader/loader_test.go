package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Server struct {
		HTTP struct {
			Addr string `koanf:"addr"`
		} `koanf:"http"`
	} `koanf:"server"`
	Security struct {
		MinPasswordLength int `koanf:"min_password_length"`
	} `koanf:"security"`
	Memo struct {
		Seed bool `koanf:"seed"`
	} `koanf:"memo"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
	if l.IsLoaded() {
		t.Error("new loader should not report loaded")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  http:
    addr: "0.0.0.0:5080"
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if addr := l.GetString("server.http.addr"); addr != "0.0.0.0:5080" {
		t.Errorf("server.http.addr = %q, want %q", addr, "0.0.0.0:5080")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_SERVER_PORT", "9090")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if port := l.GetString("server.port"); port != "9090" {
		t.Errorf("server.port = %q, want %q", port, "9090")
	}
}

func TestLoader_Load_UnderscoreKeys(t *testing.T) {
	t.Setenv("MEMOHALO_SECURITY_MIN_PASSWORD_LENGTH", "12")
	t.Setenv("MEMOHALO_SERVER_HTTP_ADDR", "127.0.0.1:9000")

	var cfg testConfig
	if err := NewLoader().Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Security.MinPasswordLength != 12 {
		t.Errorf("MinPasswordLength = %d, want 12", cfg.Security.MinPasswordLength)
	}
	if cfg.Server.HTTP.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q, want %q", cfg.Server.HTTP.Addr, "127.0.0.1:9000")
	}
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  http:
    addr: "from-file:5080"
`)

	cfg := testConfig{}
	cfg.Memo.Seed = true
	cfg.Security.MinPasswordLength = 8

	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Memo.Seed {
		t.Error("Seed default was overwritten by an absent key")
	}
	if cfg.Security.MinPasswordLength != 8 {
		t.Errorf("MinPasswordLength = %d, want default 8", cfg.Security.MinPasswordLength)
	}
	if cfg.Server.HTTP.Addr != "from-file:5080" {
		t.Errorf("Addr = %q, want %q", cfg.Server.HTTP.Addr, "from-file:5080")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
server:
  http:
    addr: "from-file:5080"
`)
	t.Setenv("MEMOHALO_SERVER_HTTP_ADDR", "from-env:8080")

	l := NewLoader(WithConfigFile(path))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTP.Addr != "from-env:8080" {
		t.Errorf("Addr = %q, want %q (env should override file)", cfg.Server.HTTP.Addr, "from-env:8080")
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() = false after Load()")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{"memo.seed": false, "server.http.addr": "localhost:3000"}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	cfg := testConfig{}
	cfg.Memo.Seed = true
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if cfg.Memo.Seed {
		t.Error("memo.seed should be false")
	}
	if cfg.Server.HTTP.Addr != "localhost:3000" {
		t.Errorf("Addr = %q, want %q", cfg.Server.HTTP.Addr, "localhost:3000")
	}
	if len(l.Keys()) != 2 {
		t.Errorf("Keys() = %v, want 2 keys", l.Keys())
	}
}

func TestLoader_LoadFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	if err := NewLoader().LoadFile(path); err == nil {
		t.Error("LoadFile() should fail on invalid YAML")
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := (mapProvider{}).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}
}

func TestMapProvider_Read_Unflattens(t *testing.T) {
	in := map[string]any{
		"server.http.addr": "localhost:1",
		"memo":             map[string]any{"seed": false},
	}
	got, err := mapProvider{data: in, delim: "."}.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	server, ok := got["server"].(map[string]any)
	if !ok {
		t.Fatalf("server = %#v, want nested map", got["server"])
	}
	if http, _ := server["http"].(map[string]any); http["addr"] != "localhost:1" {
		t.Errorf("server.http = %#v", server["http"])
	}
	if memo, _ := got["memo"].(map[string]any); memo["seed"] != false {
		t.Errorf("memo = %#v", got["memo"])
	}
	if _, ok := in["server"]; ok {
		t.Error("Read() modified the caller's map")
	}
}
