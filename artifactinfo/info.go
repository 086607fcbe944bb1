// Package artifactinfo reads the app identity embedded in store artifacts.
package artifactinfo

import (
	"fmt"

	"github.com/bitrise-steplib/steps-store-upload/platform"
)

// Info ...
type Info struct {
	AppName string
	// Identifier is the Android package name or the iOS bundle identifier.
	Identifier  string
	VersionName string
	VersionCode string
}

// Parse reads the Info of the artifact at pth.
func Parse(p platform.Platform, pth string) (Info, error) {
	switch p {
	case platform.Android:
		return ParseAPK(pth)
	case platform.IOS:
		return ParseIPA(pth)
	default:
		return Info{}, fmt.Errorf("unsupported platform: %s", p)
	}
}
