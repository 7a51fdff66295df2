package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/initializ/enroll/internal/config"
)

const validAnswers = `firstName: Ada
lastName: Lovelace
email: ada@example.com
phone: "(555) 010-0199"
country: gb
dob: 1990-12-10
username: ada_l
password: engine1843
confirmPassword: engine1843
securityQuestion: pet
securityAnswer: Puff
terms: true
profilePicture: ada.png
resume: ada.pdf
bio: I build terminal tools for fun
`

// writeAnswers writes an answers file plus the picture and resume it
// refers to. Each replace pair swaps a line of the valid answers.
func writeAnswers(t *testing.T, replace ...string) string {
	t.Helper()
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "ada.png"))
	if err != nil {
		t.Fatalf("creating png: %v", err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	f.Close()
	if err := os.WriteFile(filepath.Join(dir, "ada.pdf"), []byte("%PDF-1.4\n%%EOF\n"), 0644); err != nil {
		t.Fatalf("writing pdf: %v", err)
	}

	content := validAnswers
	for i := 0; i+1 < len(replace); i += 2 {
		content = strings.Replace(content, replace[i], replace[i+1], 1)
	}
	path := filepath.Join(dir, "answers.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing answers: %v", err)
	}
	return path
}

// captureOutput swaps stdout and stderr for buffers until the test ends.
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	oldOut, oldErr := stdout, stderr
	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return &out, &errOut
}

// resetFlags restores every command flag variable when the test ends.
func resetFlags(t *testing.T) {
	t.Helper()
	oldCfg, oldVerbose, oldTheme, oldLog := cfgFile, verbose, themeOverride, logFile
	oldAnswers, oldPrefill, oldPlain, oldEndpoint := answersFile, prefillFile, plainMode, endpointOverride
	oldStrict, oldStep := strict, validateStep
	oldTerm := isTerminal

	cfgFile = config.DefaultPath
	verbose, themeOverride, logFile = false, "", ""
	answersFile, prefillFile, plainMode, endpointOverride = "", "", false, ""
	strict, validateStep = false, 0
	isTerminal = func() bool { return false }

	t.Cleanup(func() {
		cfgFile, verbose, themeOverride, logFile = oldCfg, oldVerbose, oldTheme, oldLog
		answersFile, prefillFile, plainMode, endpointOverride = oldAnswers, oldPrefill, oldPlain, oldEndpoint
		strict, validateStep = oldStrict, oldStep
		isTerminal = oldTerm
	})
}
