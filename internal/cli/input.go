package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tokensmith.app/forge/internal/model"
)

func (a *app) readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(a.in)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// isYAML picks the decoder from the extension, or sniffs stdin.
func isYAML(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	case ".json":
		return false
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] != '{'
}

// toJSON converts YAML input to JSON so every document goes through the
// JSON decoders the API uses.
func toJSON(path string, data []byte) ([]byte, error) {
	if !isYAML(path, data) {
		return data, nil
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s as yaml: %w", path, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting %s to json: %w", path, err)
	}
	return out, nil
}

func (a *app) readBrief(path string) (model.DiscoveryInputs, error) {
	var in model.DiscoveryInputs
	data, err := a.readSource(path)
	if err != nil {
		return in, err
	}
	if isYAML(path, data) {
		if err := yaml.Unmarshal(data, &in); err != nil {
			return in, fmt.Errorf("parsing brief %s: %w", path, err)
		}
		return in, nil
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parsing brief %s: %w", path, err)
	}
	return in, nil
}

func (a *app) readTokens(path string) (*model.BrandSystem, error) {
	data, err := a.readSource(path)
	if err != nil {
		return nil, err
	}
	data, err = toJSON(path, data)
	if err != nil {
		return nil, err
	}
	var tokens model.BrandSystem
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("parsing tokens %s: %w", path, err)
	}
	return &tokens, nil
}
