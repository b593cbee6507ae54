package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// Diff compares two rendered descriptor documents and returns a
// human-readable report of the differences. An empty string means the
// documents are semantically identical. JSON descriptors parse as YAML, so
// the comparison is structure-aware rather than line-based.
func Diff(before, after []byte, useColor bool) (string, error) {
	if len(bytes.TrimSpace(before)) == 0 && len(bytes.TrimSpace(after)) == 0 {
		return "", nil
	}

	beforeInput, err := parseDocumentInput("before", before)
	if err != nil {
		return "", fmt.Errorf("parsing previous descriptor: %w", err)
	}
	afterInput, err := parseDocumentInput("after", after)
	if err != nil {
		return "", fmt.Errorf("parsing current descriptor: %w", err)
	}

	report, err := dyff.CompareInputFiles(beforeInput, afterInput)
	if err != nil {
		return "", fmt.Errorf("comparing descriptors: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDiffReport(report, useColor)
}

// parseDocumentInput parses document bytes into a dyff input file.
func parseDocumentInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

// renderDiffReport renders a dyff report to a string with trailing
// whitespace stripped.
func renderDiffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing diff report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
