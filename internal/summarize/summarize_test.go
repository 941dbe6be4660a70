package summarize

import (
	"errors"
	"testing"
)

func TestConfigValidate_LocalRequiresEndpoint(t *testing.T) {
	err := Config{Backend: BackendLocal}.Validate()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestConfigValidate_RemoteRequiresAPIKey(t *testing.T) {
	err := Config{Backend: BackendRemote}.Validate()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestConfigValidate_UnknownBackend(t *testing.T) {
	err := Config{Backend: "ollama"}.Validate()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestConfigValidate_OK(t *testing.T) {
	if err := (Config{Backend: BackendLocal, Endpoint: "http://localhost:11434"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Config{Backend: BackendRemote, APIKey: "sk-test"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_FailsFastOnBadConfig(t *testing.T) {
	s, err := New(Config{Backend: BackendLocal}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if s != nil {
		t.Error("expected nil summarizer on config error")
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	s, err := New(Config{Backend: BackendLocal, Endpoint: "http://localhost:11434"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*ollamaClient); !ok {
		t.Errorf("expected ollama client, got %T", s)
	}

	s, err = New(Config{Backend: BackendRemote, APIKey: "sk-test"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*openaiClient); !ok {
		t.Errorf("expected openai client, got %T", s)
	}
}
