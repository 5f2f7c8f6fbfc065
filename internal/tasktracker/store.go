package tasktracker

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultPath is used when MYGYM_DB is not set.
const DefaultPath = "mygym.json"

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

var ErrInvalidFile = errors.New("task file failed validation")

// PathFromEnv returns MYGYM_DB or DefaultPath.
func PathFromEnv() string {
	if p := strings.TrimSpace(os.Getenv("MYGYM_DB")); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads and validates the task file.
func Load(path string) (*Database, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var db Database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("decode task file: %w", err)
	}
	return &db, nil
}

func validate(raw []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate task file: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidFile, strings.Join(errs, "; "))
	}
	return nil
}

// Save writes the file with 2-space indentation. The content goes to a temp file in the
// same directory first and is renamed over the target.
func Save(path string, db *Database) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".mygym-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}
