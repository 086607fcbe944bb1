// Package uploaders implements the store submission of each platform on top of the publishing tool.
package uploaders

import (
	"github.com/bitrise-steplib/steps-store-upload/artifactinfo"
	"github.com/bitrise-steplib/steps-store-upload/fastlane"
	"github.com/bitrise-steplib/steps-store-upload/platform"
)

// Logger ...
type Logger interface {
	Printf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// Runner runs an action of the publishing tool.
type Runner interface {
	Run(action fastlane.Action, args ...string) (fastlane.Result, error)
}

// InspectFunc reads the app identity of an artifact.
type InspectFunc func(p platform.Platform, pth string) (artifactinfo.Info, error)

// reportFailure logs a non-success result of the publishing tool.
func reportFailure(logger Logger, step string, result fastlane.Result) {
	logger.Debugf("%s finished with result: %s", step, result.Result)

	if message := result.Message(); message != "" {
		logger.Warnf("%s", message)
		return
	}
	logger.Warnf("Returned json: %s", result.Dump())
}

// checkIdentity warns if the artifact was built for another app than the project's.
// Unreadable artifacts are left for the publishing tool to reject.
func checkIdentity(logger Logger, inspect InspectFunc, p platform.Platform, artifactPath, expected string) {
	if inspect == nil {
		return
	}

	info, err := inspect(p, artifactPath)
	if err != nil {
		logger.Debugf("Failed to read app identity of %s: %s", artifactPath, err)
		return
	}

	if info.Identifier != "" && info.Identifier != expected {
		logger.Warnf("%s was built for %s, but the project is configured for %s", artifactPath, info.Identifier, expected)
	}
}
