package pathguard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
)

// dotfileAllowList holds dotfiles that may keep their leading dot. Any
// other name loses a single leading dot during sanitization.
var dotfileAllowList = map[string]struct{}{
	".gitignore":     {},
	".gitkeep":       {},
	".gitattributes": {},
	".env":           {},
	".env.example":   {},
	".dockerignore":  {},
	".editorconfig":  {},
}

// reservedDeviceNames are legacy console/port device names that are not
// usable as plain file names on common filesystems.
var reservedDeviceNames = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

var (
	invalidFileNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
	hyphenRun            = regexp.MustCompile(`-{2,}`)
)

// SanitizeFileName returns a form of name that is safe on common
// filesystems. Callers writing files must treat any difference between
// input and output as an error (never silently rename); tree-copy callers
// may instead skip the entry with a warning.
func SanitizeFileName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: file name is empty", ErrInvalidFileName)
	}

	if _, ok := dotfileAllowList[name]; ok {
		return name, nil
	}

	s := invalidFileNameChars.ReplaceAllString(name, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	// Strip a single leading dot from non-allow-listed names so templates
	// cannot smuggle in unexpected hidden files.
	if strings.HasPrefix(s, ".") {
		s = s[1:]
	}

	if len(s) > constants.MaxFileNameLength {
		s = s[:constants.MaxFileNameLength]
		s = strings.Trim(s, "-.")
	}

	// Both the dot strip and the truncation trim can leave an empty string
	// or a bare path token, so the rejection comes after them.
	if s == "" || s == "." || s == ".." {
		return "", fmt.Errorf("%w: %q reduces to nothing usable after sanitization", ErrInvalidFileName, name)
	}

	stem := s
	if idx := strings.IndexByte(s, '.'); idx > 0 {
		stem = s[:idx]
	}
	if _, reserved := reservedDeviceNames[strings.ToLower(stem)]; reserved {
		s = "_" + s
	}

	return s, nil
}
