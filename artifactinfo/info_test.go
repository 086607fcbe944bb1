package artifactinfo

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/bitrise-steplib/steps-store-upload/platform"
)

func createIPA(t *testing.T, entries map[string][]byte) string {
	t.Helper()

	pth := filepath.Join(t.TempDir(), "app.ipa")
	file, err := os.Create(pth)
	require.NoError(t, err)

	w := zip.NewWriter(file)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, file.Close())

	return pth
}

func TestParseIPA(t *testing.T) {
	content, err := plist.Marshal(map[string]interface{}{
		"CFBundleName":               "Sample",
		"CFBundleIdentifier":         "io.sample.ios",
		"CFBundleShortVersionString": "1.2.0",
		"CFBundleVersion":            "42",
	}, plist.XMLFormat)
	require.NoError(t, err)

	pth := createIPA(t, map[string][]byte{
		"Payload/Sample.app/Info.plist":            content,
		"Payload/Sample.app/Frameworks/Info.plist": []byte("ignored"),
	})

	got, err := Parse(platform.IOS, pth)
	require.NoError(t, err)

	want := Info{
		AppName:     "Sample",
		Identifier:  "io.sample.ios",
		VersionName: "1.2.0",
		VersionCode: "42",
	}
	if diffs := pretty.Diff(got, want); len(diffs) > 0 {
		t.Errorf(
			"\nParseIPA()\n - got:\t\t%+v\n - want:\t%+v\n diff:\n\t%s",
			got,
			want,
			strings.Join(diffs, "\n"),
		)
	}
}

func TestParseIPA_Errors(t *testing.T) {
	t.Run("no Info.plist", func(t *testing.T) {
		pth := createIPA(t, map[string][]byte{"Payload/Sample.app/main": []byte("binary")})
		_, err := ParseIPA(pth)
		assert.EqualError(t, err, "no Info.plist found in "+pth)
	})

	t.Run("not a zip", func(t *testing.T) {
		pth := filepath.Join(t.TempDir(), "app.ipa")
		require.NoError(t, os.WriteFile(pth, []byte("not a zip"), 0644))
		_, err := ParseIPA(pth)
		assert.Error(t, err)
	})
}

func TestParseManifest(t *testing.T) {
	content := `<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="io.sample" versionCode="7" versionName="1.0.1">
	<application label="Sample"></application>
</manifest>`

	got, err := parseManifest([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, Info{AppName: "Sample", Identifier: "io.sample", VersionName: "1.0.1", VersionCode: "7"}, got)
}

func TestParseAPK_InvalidFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "app.apk")
	require.NoError(t, os.WriteFile(pth, []byte("not an apk"), 0644))

	_, err := Parse(platform.Android, pth)
	assert.Error(t, err)
}
