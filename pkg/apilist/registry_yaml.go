package apilist

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/apiflags/pkg/errors"
)

// registryFile is the YAML document describing a custom registry:
//
//	tags:
//	  - whitelist
//	  - greylist
//	  - greylist-max-o
//	  - greylist-max-p
//	  - blacklist
//	baseline: whitelist
//	fallback: blacklist
type registryFile struct {
	Tags     []Tag `yaml:"tags"`
	Baseline Tag   `yaml:"baseline"`
	Fallback Tag   `yaml:"fallback"`
}

// LoadRegistry reads a registry definition from a YAML file. The document
// must list the member tags in order and name the baseline and fallback
// roles; both roles must be members.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseRegistry(data, path)
}

// ParseRegistry builds a registry from raw YAML data. The source is used in
// error messages.
func ParseRegistry(data []byte, source string) (*Registry, error) {
	var doc registryFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", source, err)
	}

	registry, err := NewRegistry(doc.Tags, doc.Baseline, doc.Fallback)
	if err != nil {
		return nil, errors.NewConfigError("registry", "invalid registry in "+source, err)
	}
	return registry, nil
}
