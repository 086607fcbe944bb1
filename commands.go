package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/spf13/cobra"

	"github.com/bitrise-steplib/steps-store-upload/artifact"
	"github.com/bitrise-steplib/steps-store-upload/artifactinfo"
	"github.com/bitrise-steplib/steps-store-upload/buildinfo"
	"github.com/bitrise-steplib/steps-store-upload/fastlane"
	"github.com/bitrise-steplib/steps-store-upload/platform"
	"github.com/bitrise-steplib/steps-store-upload/project"
	"github.com/bitrise-steplib/steps-store-upload/prompt"
	"github.com/bitrise-steplib/steps-store-upload/upload"
	"github.com/bitrise-steplib/steps-store-upload/uploaders"
)

type uploadFunc func(ctx context.Context, p platform.Platform, projectDir string, opts upload.Options) error

func newRootCommand(run uploadFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "store-upload",
		Short:         "Uploads standalone app builds to the app stores",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newUploadCommand(platform.Android, run),
		newUploadCommand(platform.IOS, run),
	)
	return root
}

func newUploadCommand(p platform.Platform, run uploadFunc) *cobra.Command {
	var opts upload.Options

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("upload:%s [projectDir]", p),
		Short: fmt.Sprintf("Uploads a standalone %s app to the %s", p.DisplayName(), storeName(p)),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) > 0 {
				projectDir = args[0]
			}
			return run(cmd.Context(), p, projectDir, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ID, "id", "", "id of the build to upload")
	flags.BoolVar(&opts.Latest, "latest", false, "upload the latest build")
	flags.StringVar(&opts.Path, "path", "", fmt.Sprintf("path to the .%s file", p.Extension()))

	switch p {
	case platform.Android:
		flags.StringVar(&opts.Key, "key", "", "path to the JSON key used to authenticate with Google Play")
	case platform.IOS:
		flags.StringVar(&opts.AppleID, "apple-id", "", "your Apple ID username")
	}

	return cmd
}

func storeName(p platform.Platform) string {
	if p == platform.IOS {
		return "App Store"
	}
	return "Google Play Store"
}

type app struct {
	config Config
	logger log.Logger
}

func newApp(config Config, logger log.Logger) app {
	return app{config: config, logger: logger}
}

func (a app) upload(ctx context.Context, p platform.Platform, projectDir string, opts upload.Options) error {
	pathChecker := pathutil.NewPathChecker()
	projects := project.NewReader(pathChecker)
	terminal := prompt.NewTerminal(os.Stdin)

	builds := buildinfo.NewClient(a.config.APIURL, string(a.config.SessionToken), projects, a.logger)
	resolver := artifact.NewResolver(p, builds, terminal, a.config.WebsiteURL)
	fetcher := artifact.NewFetcher(
		p,
		cleanhttp.DefaultPooledClient(),
		fileutil.NewFileManager(),
		pathChecker,
		artifact.NewTerminalProgress(os.Stderr),
		a.logger,
	)

	runner := fastlane.NewRunner(command.NewFactory(env.NewRepository()), a.config.FastlaneDir, a.logger)

	var uploader upload.PlatformUploader
	switch p {
	case platform.Android:
		uploader = uploaders.NewAndroid(runner, terminal, pathChecker, artifactinfo.Parse, a.logger)
	case platform.IOS:
		uploader = uploaders.NewIOS(runner, terminal, artifactinfo.Parse, a.logger)
	default:
		return fmt.Errorf("unsupported platform: %s", p)
	}

	orchestrator := upload.NewOrchestrator(uploader, resolver, fetcher, projects, pathChecker, pathutil.NewPathModifier(), a.logger)
	return orchestrator.Upload(ctx, projectDir, opts)
}
