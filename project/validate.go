package project

import (
	"fmt"

	"github.com/bitrise-steplib/steps-store-upload/errs"
	"github.com/bitrise-steplib/steps-store-upload/platform"
)

// Identifier returns the store identifier of the app on the given platform:
// the Android package name or the iOS bundle identifier.
func (c Config) Identifier(p platform.Platform) string {
	switch p {
	case platform.Android:
		if c.Android != nil {
			return c.Android.Package
		}
	case platform.IOS:
		if c.IOS != nil {
			return c.IOS.BundleIdentifier
		}
	}
	return ""
}

// Validate checks that the config carries the identifier the platform's store requires.
func Validate(cfg Config, p platform.Platform) error {
	if cfg.Identifier(p) != "" {
		return nil
	}

	what := "an identifier"
	switch p {
	case platform.Android:
		what = "a package"
	case platform.IOS:
		what = "a bundle identifier"
	}

	return errs.Configf(
		"Must specify %s in order to upload %s file. Please specify one in %s",
		what, p.Extension(), configPath(cfg),
	)
}

func configPath(cfg Config) string {
	name := cfg.ConfigName
	if name == "" {
		name = defaultConfigName
	}
	if cfg.ProjectDir == "" {
		return name
	}
	return fmt.Sprintf("%s/%s", cfg.ProjectDir, name)
}
