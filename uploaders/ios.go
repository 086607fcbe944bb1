package uploaders

import (
	"fmt"
	"runtime"

	"github.com/bitrise-steplib/steps-store-upload/fastlane"
	"github.com/bitrise-steplib/steps-store-upload/platform"
	"github.com/bitrise-steplib/steps-store-upload/project"
	"github.com/bitrise-steplib/steps-store-upload/prompt"
	"github.com/bitrise-steplib/steps-store-upload/upload"
)

// IOS uploads ipa files to App Store Connect.
type IOS struct {
	runner   Runner
	prompter prompt.Prompter
	inspect  InspectFunc
	logger   Logger
	goos     string
}

// NewIOS ...
func NewIOS(runner Runner, prompter prompt.Prompter, inspect InspectFunc, logger Logger) IOS {
	return IOS{
		runner:   runner,
		prompter: prompter,
		inspect:  inspect,
		logger:   logger,
		goos:     runtime.GOOS,
	}
}

// Platform ...
func (i IOS) Platform() platform.Platform {
	return platform.IOS
}

// ValidateOptions ...
func (i IOS) ValidateOptions(upload.Options) error {
	return nil
}

// CollectMetadata returns the Apple ID, asking for it if it was not given.
func (i IOS) CollectMetadata(opts upload.Options) (upload.PlatformMetadata, error) {
	if opts.AppleID != "" {
		return upload.PlatformMetadata{AppleID: opts.AppleID}, nil
	}

	i.logger.Printf("You can specify your Apple ID using --apple-id option")
	appleID, err := i.prompter.Ask("Your Apple ID Username: ")
	if err != nil {
		return upload.PlatformMetadata{}, fmt.Errorf("failed to read Apple ID: %w", err)
	}
	return upload.PlatformMetadata{AppleID: appleID}, nil
}

// Upload logs in with the produce action, then submits the ipa with the deliver action.
// Deliver is skipped if the login did not succeed.
func (i IOS) Upload(cfg project.Config, metadata upload.PlatformMetadata, artifactPath string) error {
	if i.goos != "darwin" {
		i.logger.Warnf("Uploading to the App Store is only supported on macOS, the publishing tool may fail on %s", i.goos)
	}

	bundleID := cfg.Identifier(platform.IOS)
	checkIdentity(i.logger, i.inspect, platform.IOS, artifactPath, bundleID)

	login, err := i.runner.Run(fastlane.Produce, bundleID, cfg.Name, metadata.AppleID)
	if err != nil {
		return err
	}
	if !login.Succeeded() {
		reportFailure(i.logger, "login", login)
		return nil
	}

	result, err := i.runner.Run(fastlane.Deliver, artifactPath, metadata.AppleID)
	if err != nil {
		return err
	}
	if !result.Succeeded() {
		reportFailure(i.logger, "upload", result)
	}
	return nil
}
