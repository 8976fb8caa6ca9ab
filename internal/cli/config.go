package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/arith/internal/log"
)

// configPath returns the default configuration file, or the empty string if
// the user has no configuration directory.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "arith", "config.yaml")
}

// loadYAML is a [kong.ConfigurationLoader] for YAML documents. The document
// must be a mapping from flag names to values. Hyphens in flag names are
// written as underscores:
//
//	log_level: debug
//	fmt: "%.4f"
//	jobs: 4
//
// Flags given on the command line override the file.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	log.Debug("config loaded", slog.Int("bytes", len(b)))
	if len(bytes.TrimSpace(b)) == 0 {
		b = []byte("{}")
	}
	j, err := yaml.YAMLToJSON(b)
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return kong.JSON(bytes.NewReader(j))
}
