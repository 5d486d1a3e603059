// Package testutil holds helpers shared by ecofocus tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/ecofocus/internal/osutil"
)

const fixtureDir = "testdata"

// GoldenTest produces the output of a test case along with the name of the
// golden file it is checked against. A nil output means the case is expected
// to have no golden file.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of a test case matches its
// golden file. Run with -update to rewrite the fixtures.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings in the fixtures
		t.Skip("skipping golden file test in Windows")
	}

	output, name := tc.Output()

	if output == nil {
		f := filepath.Join(fixtureDir, name+".golden")
		if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(t, goldie.WithFixtureDir(fixtureDir))

	g.Assert(t, name, output)
}
