package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/ftracker/internal/models"
	"gopkg.in/yaml.v3"
)

// Input formats accepted by Parse.
const (
	InputText = "text"
	InputYAML = "yaml"
)

// packageLineRe matches: RUN;15000;1;75 (the value list may be empty).
var packageLineRe = regexp.MustCompile(`^([^;\s]+)\s*(?:;(.*))?$`)

// DefaultPackages is the reference batch used when no input is given.
func DefaultPackages() []models.Package {
	return []models.Package{
		{Type: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Values: []float64{15000, 1, 75}},
		{Type: "WLK", Values: []float64{9000, 1, 75, 180}},
	}
}

// DetectFormat picks the input format from a file extension.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return InputYAML
	default:
		return InputText
	}
}

// ParseFile reads packages from a file. An empty format is detected from the extension.
func ParseFile(path, format string) ([]models.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	if format == "" {
		format = DetectFormat(path)
	}
	return Parse(f, format)
}

// Parse reads packages in the given format.
func Parse(r io.Reader, format string) ([]models.Package, error) {
	switch format {
	case InputYAML:
		return ParseYAML(r)
	case InputText, "":
		return ParseText(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// ParseYAML reads a YAML sequence of {type, values} packages.
func ParseYAML(r io.Reader) ([]models.Package, error) {
	var packages []models.Package
	if err := yaml.NewDecoder(r).Decode(&packages); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing YAML input: %w", err)
	}
	return packages, nil
}

// ParseText reads one package per line in the form CODE;v1;v2;...
// Blank lines and lines starting with # are skipped.
func ParseText(r io.Reader) ([]models.Package, error) {
	scanner := bufio.NewScanner(r)
	var packages []models.Package
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := packageLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed package %q", lineNo, line)
		}

		pkg := models.Package{Type: m[1]}
		if strings.TrimSpace(m[2]) != "" {
			for _, field := range strings.Split(m[2], ";") {
				v, err := parseValue(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				pkg.Values = append(pkg.Values, v)
			}
		}
		packages = append(packages, pkg)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return packages, nil
}

// parseValue converts a reading to float64, accepting a decimal comma.
// "1,5" -> 1.5, " 75 " -> 75
func parseValue(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", s)
	}
	return f, nil
}
