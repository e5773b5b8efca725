package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rawbytedev/otherdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestDecodeText(t *testing.T) {
	out, _, err := run(t, "", "decode", `72.5,left\,arm,unit=kg`)
	require.NoError(t, err)
	assert.Equal(t, "string\t72.5\nstring\tleft,arm\nnamed\tunit\tkg\n", out)
}

func TestDecodeStdinNumericJSON(t *testing.T) {
	out, _, err := run(t, "120,80,pulse=64\n", "decode", "--numeric", "-o", "json")
	require.NoError(t, err)

	var recs []itemRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	items, err := fromRecords(recs)
	require.NoError(t, err)
	require.Equal(t, otherdata.Items{
		otherdata.NumericValue{Value: 120},
		otherdata.NumericValue{Value: 80},
		otherdata.NamedValue{Name: "pulse", Value: "64"},
	}, items)
}

func TestDecodeContentTypeMismatch(t *testing.T) {
	_, errOut, err := run(t, "", "decode", "--content-type", "text/plain", "a,b")
	require.ErrorIs(t, err, otherdata.ErrContentTypeMismatch)
	assert.Contains(t, errOut, "decode failed")
}

func TestDecodeNumericFailure(t *testing.T) {
	_, _, err := run(t, "", "decode", "--numeric", "1,abc")
	require.ErrorIs(t, err, otherdata.ErrInvalidFormat)
}

func TestEncodeFromYAML(t *testing.T) {
	in := `
- kind: numeric
  number: 72.5
- kind: string
  text: left,arm
- kind: named
  name: x=y
  value: "1"
`
	out, _, err := run(t, in, "encode")
	require.NoError(t, err)
	assert.Equal(t, "72.5,left\\,arm,x\\=y=1\n", out)
}

func TestEncodeFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"kind":"string","text":"a"},{"kind":"numeric","number":3}]`), 0o600))
	out, _, err := run(t, "", "encode", path)
	require.NoError(t, err)
	assert.Equal(t, "a,3\n", out)
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	_, _, err := run(t, `[{"kind":"bool"}]`, "encode")
	require.ErrorContains(t, err, "unknown kind")

	_, _, err = run(t, `[{"kind":"numeric"}]`, "encode")
	require.ErrorContains(t, err, "without number")
}

func TestDecodeYAMLRoundTrip(t *testing.T) {
	out, _, err := run(t, "", "decode", "-o", "yaml", `a\,b,k=v`)
	require.NoError(t, err)

	var recs []itemRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Equal(t, []itemRecord{
		{Kind: kindString, Text: "a,b"},
		{Kind: kindNamed, Name: "k", Value: "v"},
	}, recs)

	enc, _, err := run(t, out, "encode")
	require.NoError(t, err)
	assert.Equal(t, "a\\,b,k=v\n", enc)
}

func TestPackUnpack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reading.od")
	text := strings.Repeat("1.5,", 200) + "unit=kg"

	_, _, err := run(t, "", "pack", "--out", path, text)
	require.NoError(t, err)

	raw, _, err := run(t, "", "unpack", "--raw", path)
	require.NoError(t, err)
	assert.Equal(t, text+"\n", raw)

	out, _, err := run(t, "", "unpack", "-o", "json", path)
	require.NoError(t, err)
	var recs []itemRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	assert.Len(t, recs, 201)
	assert.Equal(t, itemRecord{Kind: kindNamed, Name: "unit", Value: "kg"}, recs[200])
}

func TestPackRequiresOut(t *testing.T) {
	_, _, err := run(t, "", "pack", "a")
	require.ErrorContains(t, err, "--out")
}

func TestUnpackCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.od")
	require.NoError(t, os.WriteFile(path, []byte("not a frame at all"), 0o600))
	_, _, err := run(t, "", "unpack", path)
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otherdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codec:\n  numeric: true\noutput:\n  format: json\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "decode", "1,2")
	require.NoError(t, err)
	var recs []itemRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, kindNumeric, recs[0].Kind)

	// flags override the file
	out, _, err = run(t, "", "--config", path, "-o", "text", "decode", "1,2")
	require.NoError(t, err)
	assert.Equal(t, "numeric\t1\nnumeric\t2\n", out)
}

func TestInvalidOutputFlag(t *testing.T) {
	_, _, err := run(t, "", "-o", "xml", "decode", "a")
	require.ErrorContains(t, err, "invalid output format")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log-level", "loud", "decode", "a")
	require.ErrorContains(t, err, "invalid log level")
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "", "--log-level", "debug", "--log-format", "json", "decode", "a,b")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"decoded payload"`)
	assert.Contains(t, errOut, `"items":2`)
}

func TestProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.prof")
	_, _, err := run(t, "", "profile", "--out", path, "--iterations", "10")
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
