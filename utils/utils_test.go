package utils

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

func TestFmtErrorf(t *testing.T) {
	base := errors.New("boom")
	err := FmtErrorf("load deck", base)
	if err.Error() != "load deck: boom" || !errors.Is(err, base) {
		t.Fatalf("err = %v", err)
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	flags := log.Flags()
	log.SetFlags(0)
	defer log.SetFlags(flags)

	LogInfo("loaded %d words", 3)
	LogError("failed %s", "toeic")
	LogDebug("x")
	want := "[INFO] loaded 3 words\n[ERROR] failed toeic\n[DEBUG] x\n"
	if buf.String() != want {
		t.Fatalf("log = %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "[INFO]") {
		t.Fatal("missing level")
	}
}
