package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors [GeneratorConfig] for file decoding. Both JSON and YAML
// documents share the same shape:
//
//	{
//	  "source": {"root": "."},
//	  "output": {"path": "repoinfo/repoinfo.go", "package": "repoinfo"},
//	  "build":  {"user": "user-name <email@demo.com>"}
//	}
type FileConfig struct {
	Source struct {
		Root string `json:"root" yaml:"root"`
	} `json:"source,omitempty" yaml:"source"`

	Output struct {
		Path    string `json:"path" yaml:"path"`
		Package string `json:"package" yaml:"package"`
	} `json:"output,omitempty" yaml:"output"`

	Build struct {
		User string `json:"user" yaml:"user"`
	} `json:"build,omitempty" yaml:"build"`
}

// parseFile reads the config file at filePath and maps it onto a
// *GeneratorConfig. The format is chosen by extension: ".yaml"/".yml" files
// are decoded as YAML, everything else as JSON.
func parseFile(filePath string) (*GeneratorConfig, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &GeneratorConfig{
		Source: Source{
			Root: fileCfg.Source.Root,
		},
		Output: Output{
			Path:    fileCfg.Output.Path,
			Package: fileCfg.Output.Package,
		},
		Build: Build{
			User: fileCfg.Build.User,
		},
		ConfigFilePath: "",
	}

	return cfg, nil
}
