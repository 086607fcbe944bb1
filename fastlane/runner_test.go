package fastlane

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitrise-steplib/steps-store-upload/errs"
)

func writeAction(t *testing.T, dir string, action Action, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script actions are not supported on windows")
	}
	pth := filepath.Join(dir, string(action))
	require.NoError(t, os.WriteFile(pth, []byte("#!/bin/sh\n"+script+"\n"), 0755))
}

func newTestRunner(dir string, stdout *bytes.Buffer) Runner {
	r := NewRunner(command.NewFactory(env.NewRepository()), dir, log.NewLogger())
	r.stdout = stdout
	r.stdin = strings.NewReader("")
	return r
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name        string
		script      string
		wantResult  string
		wantStdout  string
		wantErrKind errs.Kind
		wantErr     bool
	}{
		{
			name:       "success",
			script:     `echo "uploading $1"` + "\n" + `echo '{"result":"success"}' >&2`,
			wantResult: "success",
			wantStdout: "uploading io.sample /tmp/app.apk /tmp/key.json\n",
		},
		{
			name:       "failure reported with non zero exit code",
			script:     `echo '{"result":"error","rawDump":{"message":"bad id"}}' >&2` + "\nexit 1",
			wantResult: "error",
		},
		{
			name:        "invalid json",
			script:      `echo 'not json' >&2`,
			wantErrKind: errs.KindProtocol,
			wantErr:     true,
		},
		{
			name:        "nothing written to stderr",
			script:      `exit 0`,
			wantErrKind: errs.KindProtocol,
			wantErr:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeAction(t, dir, Supply, tt.script)

			var stdout bytes.Buffer
			got, err := newTestRunner(dir, &stdout).Run(Supply, "io.sample", "/tmp/app.apk", "/tmp/key.json")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErrKind), "unexpected error: %s", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, got.Result)
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, stdout.String())
			}
		})
	}
}

func TestRunner_Run_ArgumentsAreJoined(t *testing.T) {
	dir := t.TempDir()
	writeAction(t, dir, Deliver, `echo "$#:$1" > "$(dirname "$0")/args.txt"`+"\n"+`echo '{"result":"success"}' >&2`)

	var stdout bytes.Buffer
	_, err := newTestRunner(dir, &stdout).Run(Deliver, "/tmp/app.ipa", "user@example.com")
	require.NoError(t, err)

	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1:/tmp/app.ipa user@example.com\n", string(args))
}

func TestRunner_Run_MissingAction(t *testing.T) {
	var stdout bytes.Buffer
	_, err := newTestRunner(t.TempDir(), &stdout).Run(Produce, "io.sample")
	require.Error(t, err)
	assert.False(t, errs.Is(err, errs.KindProtocol))
}
