package settings

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// loadOptions follow the ConfigParser dialect the settings files were
// originally written in: indented continuation lines, case-preserving
// keys, and values taken verbatim including '#', ';' and quotes.
var loadOptions = ini.LoadOptions{
	AllowPythonMultilineValues: true,
	IgnoreContinuation:         true,
	IgnoreInlineComment:        true,
	PreserveSurroundedQuote:    true,
	SkipUnrecognizableLines:    false,
}

func newDocument() *ini.File {
	return ini.Empty(loadOptions)
}

func decode(data []byte) (*ini.File, error) {
	doc, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return doc, nil
}

func encode(doc *ini.File) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return buf.Bytes(), nil
}

// joinLines strips every line of a value, the first one included, the
// way ConfigParser strips continuation lines, then joins them with
// single spaces.
func joinLines(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}
	lines := strings.Split(value, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, " ")
}
