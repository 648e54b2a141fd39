package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "valid text config",
			config:  Config{Backend: BackendText, DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "valid jsonl config",
			config:  Config{Backend: BackendJSONL, DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: BackendSQLite, DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "empty DataDir is valid at config level",
			config:  Config{Backend: BackendText, DataDir: ""},
			wantErr: nil,
		},
		{
			name:    "board file name accepted",
			config:  Config{Backend: BackendText, BoardFile: "home.txt"},
			wantErr: nil,
		},
		{
			name:    "board file with directory rejected",
			config:  Config{Backend: BackendText, BoardFile: "boards/home.txt"},
			wantErr: ErrBoardFileInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigBoardFileName(t *testing.T) {
	if got := (Config{}).BoardFileName(); got != DefaultBoardFile {
		t.Fatalf("expected %q, got %q", DefaultBoardFile, got)
	}
	if got := (Config{BoardFile: "mine.txt"}).BoardFileName(); got != "mine.txt" {
		t.Fatalf("expected %q, got %q", "mine.txt", got)
	}
}
