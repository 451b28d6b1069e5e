package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/kailas-cloud/lexidex/internal/domain/field"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 3000},
		Database: DatabaseConfig{FilePath: "/data/bailly.db"},
		Query:    QueryConfig{AllowedFields: "word,uri,definition", MaxRows: -1},
		Cache:    CacheConfig{Driver: CacheNone},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingFilePath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.FilePath = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database.file_path")
	}
}

func TestValidate_UnknownAllowedField(t *testing.T) {
	cfg := validConfig()
	cfg.Query.AllowedFields = "word,etymology"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidate_NegativeMaxRows(t *testing.T) {
	cfg := validConfig()
	cfg.Query.MaxRows = -2

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for max_rows < -1")
	}
}

func TestValidate_CacheDriver(t *testing.T) {
	tests := []struct {
		name    string
		cache   CacheConfig
		wantErr bool
	}{
		{"none", CacheConfig{Driver: CacheNone}, false},
		{"redis with addrs", CacheConfig{Driver: CacheRedis, Addrs: []string{"localhost:6379"}}, false},
		{"valkey without addrs", CacheConfig{Driver: CacheValkey}, true},
		{"bolt with path", CacheConfig{Driver: CacheBolt, Path: "/tmp/m.bolt"}, false},
		{"bolt without path", CacheConfig{Driver: CacheBolt}, true},
		{"unknown", CacheConfig{Driver: "memcached"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Cache = tt.cache
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 3000 {
		t.Errorf("expected Port=3000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.CORSOrigin != "*" {
		t.Errorf("expected CORSOrigin='*', got %q", cfg.HTTP.CORSOrigin)
	}
	if cfg.Database.Table != "bailly" {
		t.Errorf("expected Table='bailly', got %q", cfg.Database.Table)
	}
	if cfg.Morpheus.LookupTimeout() != 100*time.Millisecond {
		t.Errorf("expected LookupTimeout=100ms, got %v", cfg.Morpheus.LookupTimeout())
	}
	if cfg.Query.MaxRows != -1 {
		t.Errorf("expected MaxRows=-1, got %d", cfg.Query.MaxRows)
	}
	if cfg.Cache.Driver != CacheNone {
		t.Errorf("expected Driver=%q, got %q", CacheNone, cfg.Cache.Driver)
	}
	if cfg.Cache.TTL() != 24*time.Hour {
		t.Errorf("expected TTL=24h, got %v", cfg.Cache.TTL())
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080, ReadTimeoutSec: 30, CORSOrigin: "https://example.org"},
		Database: DatabaseConfig{Table: "lsj"},
		Morpheus: MorpheusConfig{LookupTimeoutMs: 250},
		Query:    QueryConfig{MaxRows: 50},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 || cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("http overridden: %+v", cfg.HTTP)
	}
	if cfg.HTTP.CORSOrigin != "https://example.org" {
		t.Errorf("expected custom CORS origin, got %q", cfg.HTTP.CORSOrigin)
	}
	if cfg.Database.Table != "lsj" {
		t.Errorf("expected Table='lsj', got %q", cfg.Database.Table)
	}
	if cfg.Morpheus.LookupTimeoutMs != 250 {
		t.Errorf("expected LookupTimeoutMs=250, got %d", cfg.Morpheus.LookupTimeoutMs)
	}
	if cfg.Query.MaxRows != 50 {
		t.Errorf("expected MaxRows=50, got %d", cfg.Query.MaxRows)
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("DB_FILE_PATH", "/srv/bailly.db")
	t.Setenv("QUERY_ALLOWED_FIELDS", "word, uri ,definition")
	t.Setenv("QUERY_MAX_ROWS", "")

	doc := []byte(`
database:
  file_path: ${DB_FILE_PATH}
morpheus:
  lookup_timeout_ms: ${MORPHEUS_LOOKUP_MAX_DURATION:-150}
query:
  allowed_fields: ${QUERY_ALLOWED_FIELDS}
  default_fields: ${QUERY_DEFAULT_FIELDS:-word,excerpt}
  max_rows: ${QUERY_MAX_ROWS:--1}
`)
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Database.FilePath != "/srv/bailly.db" {
		t.Errorf("file_path = %q", cfg.Database.FilePath)
	}
	if cfg.Morpheus.LookupTimeoutMs != 150 {
		t.Errorf("lookup_timeout_ms = %d, want 150", cfg.Morpheus.LookupTimeoutMs)
	}
	if cfg.Query.MaxRows != -1 {
		t.Errorf("max_rows = %d, want -1", cfg.Query.MaxRows)
	}

	sel, err := cfg.Query.Selector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	want := []field.Field{field.Word, field.URI, field.Definition}
	if got := sel.Allowed(); !reflect.DeepEqual(got, want) {
		t.Errorf("allowed = %v, want %v", got, want)
	}
	// excerpt is outside the allow-list
	if got := sel.Defaults(); !reflect.DeepEqual(got, want) {
		t.Errorf("defaults = %v, want %v", got, want)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_ShippedFiles(t *testing.T) {
	t.Setenv("DB_FILE_PATH", "/srv/bailly.db")
	t.Setenv("CACHE_DRIVER", "")

	for _, env := range []string{"local", "prod"} {
		t.Run(env, func(t *testing.T) {
			cfg, err := Load(env)
			if err != nil {
				t.Fatalf("load %s: %v", env, err)
			}
			if cfg.Cache.Driver != CacheNone {
				t.Errorf("cache driver = %q, want %q unless CACHE_DRIVER is set", cfg.Cache.Driver, CacheNone)
			}
		})
	}
}
