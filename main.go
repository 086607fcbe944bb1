package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
)

const (
	defaultAPIURL     = "https://exp.host/--/api/v2"
	defaultWebsiteURL = "https://expo.io"
)

// Config ...
type Config struct {
	APIURL       string          `env:"STORE_UPLOAD_API_URL"`
	WebsiteURL   string          `env:"STORE_UPLOAD_WEBSITE_URL"`
	SessionToken stepconf.Secret `env:"STORE_UPLOAD_SESSION_TOKEN"`
	FastlaneDir  string          `env:"STORE_UPLOAD_FASTLANE_DIR"`
	DebugMode    bool            `env:"STORE_UPLOAD_DEBUG"`
}

func (c Config) withDefaults() Config {
	if c.APIURL == "" {
		c.APIURL = defaultAPIURL
	}
	if c.WebsiteURL == "" {
		c.WebsiteURL = defaultWebsiteURL
	}
	return c
}

func fail(logger log.Logger, format string, v ...interface{}) {
	logger.Errorf(format, v...)
	os.Exit(1)
}

func main() {
	logger := log.NewLogger()

	var config Config
	if err := stepconf.NewInputParser(env.NewRepository()).Parse(&config); err != nil {
		fail(logger, "Issue with input: %s", err)
	}
	config = config.withDefaults()

	logger.EnableDebugLog(config.DebugMode)
	if config.DebugMode {
		stepconf.Print(config)
		fmt.Println()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := newApp(config, logger)
	err := newRootCommand(app.upload).ExecuteContext(ctx)
	stop()
	if err != nil {
		fail(logger, "%s", err)
	}
}
