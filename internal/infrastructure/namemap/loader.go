// Package namemap loads the fixtures-to-odds team name table from disk.
package namemap

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/rdmgray/eplpal/internal/domain/teamname"
)

//go:embed default_names.yaml
var defaultNames []byte

// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported name table format")

type document struct {
	Teams map[string]string `yaml:"teams" toml:"teams"`
}

// Default returns the built-in Premier League table.
func Default() teamname.Table {
	table, err := parseYAML(defaultNames)
	if err != nil {
		panic(errors.Wrap(err, "parse embedded name table"))
	}
	return table
}

// Load reads a name table from path. An empty path yields the built-in table.
func Load(path string) (teamname.Table, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return teamname.Table{}, errors.Wrapf(err, "read name table %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(raw)
	case ".toml":
		return parseTOML(raw)
	default:
		return teamname.Table{}, errors.Wrapf(ErrUnsupportedFormat, "file=%s", path)
	}
}

func parseYAML(raw []byte) (teamname.Table, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return teamname.Table{}, errors.Wrap(err, "decode yaml name table")
	}
	return teamname.NewTable(doc.Teams), nil
}

func parseTOML(raw []byte) (teamname.Table, error) {
	var doc document
	md, err := toml.Decode(string(raw), &doc)
	if err != nil {
		return teamname.Table{}, errors.Wrap(err, "decode toml name table")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return teamname.Table{}, errors.Newf("unknown keys in toml name table: %v", undecoded)
	}
	return teamname.NewTable(doc.Teams), nil
}
