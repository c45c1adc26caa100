package template

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// hexDigits supplies the derived symbol alphabet for template files:
// n_symbols selects a prefix of this sequence.
const hexDigits = "0123456789abcdefABCDEF"

const defaultSymbolCount = 9

// LoadFile reads a template file. Lines starting with '#' are comments and
// are dropped from the template; a "# n_symbols N" comment selects the size
// of the derived symbol alphabet (default 9). Returns the template text and
// the alphabet.
func LoadFile(path string) (text string, symbols []rune, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	nSymbols := defaultSymbolCount
	var templateLines []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# n_symbols") {
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return "", nil, fmt.Errorf("malformed n_symbols directive: %q", line)
			}
			nSymbols, err = strconv.Atoi(fields[2])
			if err != nil {
				return "", nil, fmt.Errorf("malformed n_symbols directive %q: %w", line, err)
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		templateLines = append(templateLines, line)
	}

	if nSymbols <= 0 || nSymbols > len(hexDigits) {
		return "", nil, fmt.Errorf("n_symbols must be in [1, %d], got %d", len(hexDigits), nSymbols)
	}
	return strings.Join(templateLines, "\n"), []rune(hexDigits[:nSymbols]), nil
}
