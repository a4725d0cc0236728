package accounts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Credential is one session token line from the data file. Tokens are
// opaque and never written back.
type Credential struct {
	Index int    // 1-based position among non-empty lines
	Token string // raw initData string
}

// LoadCredentials reads every non-empty line of path, preserving file order.
func LoadCredentials(path string) ([]Credential, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential file: %w", err)
	}
	defer f.Close()

	creds, err := ReadCredentials(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return creds, nil
}

// ReadCredentials parses one token per line from r. Blank lines are skipped
// and surrounding whitespace (including CR from Windows files) is trimmed.
func ReadCredentials(r io.Reader) ([]Credential, error) {
	scanner := bufio.NewScanner(r)
	// initData lines easily pass the 64K default once signatures are included.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var creds []Credential
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		creds = append(creds, Credential{
			Index: len(creds) + 1,
			Token: line,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return creds, nil
}
