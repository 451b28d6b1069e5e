package morpheus

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// fakeInstallation creates an analyzer binary file and stem library
// directory that pass the installation check.
func fakeInstallation(t *testing.T, script string) Config {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "cruncher")
	if err := os.WriteFile(bin, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}
	lib := filepath.Join(dir, "stemlib")
	if err := os.Mkdir(lib, 0o755); err != nil {
		t.Fatal(err)
	}
	return Config{BinaryPath: bin, StemlibPath: lib}
}

func newTestClient(t *testing.T, runner Runner) *Client {
	t.Helper()
	return New(fakeInstallation(t, ""), runner, zap.NewNop())
}

const sampleOutput = `:raw a)nhr

:workw a)nh/r
:lem a)nh/r
:prvb 			:aug1 			:stem a)nhr	 :suff 			:end 	 masc nom sg
:raw a)nhr

:workw a)nh/r
:lem a)nh/r
:prvb 			:aug1 			:stem a)ner	 :suff 			:end 	 masc voc sg
:raw ei)mi

:workw ei)mi/
:lem ei)mi/1
:prvb 			:aug1 			:stem ei)	 :suff 			:end mi/	 pres ind act 1st sg
`
