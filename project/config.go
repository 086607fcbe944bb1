package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bitrise-steplib/steps-store-upload/errs"
)

const defaultConfigName = "app.json"

// configFile describes a supported project config file.
type configFile struct {
	name string
	// nested config files keep the project config under the `expo` key
	nested    bool
	unmarshal func([]byte, interface{}) error
}

var configFiles = []configFile{
	{name: "app.json", nested: true, unmarshal: json.Unmarshal},
	{name: "exp.json", nested: false, unmarshal: json.Unmarshal},
	{name: "app.yaml", nested: true, unmarshal: yaml.Unmarshal},
}

// AndroidConfig ...
type AndroidConfig struct {
	Package string `json:"package" yaml:"package"`
}

// IOSConfig ...
type IOSConfig struct {
	BundleIdentifier string `json:"bundleIdentifier" yaml:"bundleIdentifier"`
}

// Manifest is the part of the project config the upload workflow relies on.
type Manifest struct {
	Name    string         `json:"name" yaml:"name"`
	Slug    string         `json:"slug" yaml:"slug"`
	Version string         `json:"version" yaml:"version"`
	Android *AndroidConfig `json:"android,omitempty" yaml:"android,omitempty"`
	IOS     *IOSConfig     `json:"ios,omitempty" yaml:"ios,omitempty"`
}

type nestedManifest struct {
	Expo *Manifest `json:"expo" yaml:"expo"`
}

// Config is the project metadata read once per upload.
type Config struct {
	Manifest
	// ConfigName is the file name the config was read from, used in error messages.
	ConfigName string
	ProjectDir string
}

// Reader reads the project config from a project directory.
type Reader struct {
	pathChecker pathutil.PathChecker
}

// NewReader ...
func NewReader(pathChecker pathutil.PathChecker) Reader {
	return Reader{pathChecker: pathChecker}
}

// ConfigName returns the name of the first existing config file in projectDir.
func (r Reader) ConfigName(projectDir string) string {
	if cf, ok := r.findConfigFile(projectDir); ok {
		return cf.name
	}
	return defaultConfigName
}

// Read ...
func (r Reader) Read(projectDir string) (Config, error) {
	cf, ok := r.findConfigFile(projectDir)
	if !ok {
		return Config{}, errs.Configf("Couldn't read %s file in project at %s", defaultConfigName, projectDir)
	}

	manifest, err := readManifest(filepath.Join(projectDir, cf.name), cf)
	if err != nil || manifest == nil {
		return Config{}, &errs.Error{
			Kind:    errs.KindConfig,
			Message: fmt.Sprintf("Couldn't read %s file in project at %s", cf.name, projectDir),
			Err:     err,
		}
	}

	return Config{
		Manifest:   *manifest,
		ConfigName: cf.name,
		ProjectDir: projectDir,
	}, nil
}

func (r Reader) findConfigFile(projectDir string) (configFile, bool) {
	for _, cf := range configFiles {
		exists, err := r.pathChecker.IsPathExists(filepath.Join(projectDir, cf.name))
		if err == nil && exists {
			return cf, true
		}
	}
	return configFile{}, false
}

func readManifest(pth string, cf configFile) (*Manifest, error) {
	data, err := os.ReadFile(pth)
	if err != nil {
		return nil, err
	}

	if !cf.nested {
		var manifest Manifest
		if err := cf.unmarshal(data, &manifest); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", cf.name)
		}
		return &manifest, nil
	}

	var nested nestedManifest
	if err := cf.unmarshal(data, &nested); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", cf.name)
	}
	return nested.Expo, nil
}
