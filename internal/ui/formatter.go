package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"xsmoke/internal/config"
	"xsmoke/internal/domain"
)

// Formatter formats and displays run output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintMetaStats displays the summary of a persisted run
func (f *Formatter) PrintMetaStats(output *domain.RunOutput) error {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Smoke Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	rows := []struct {
		label string
		value string
		paint func(format string, a ...interface{})
	}{
		{"Total Test Files", fmt.Sprintf("%d", meta.TotalTestFiles), color.White},
		{"Passed Test Files", fmt.Sprintf("%d", meta.PassedTestFiles), color.Green},
		{"Failed Test Files", fmt.Sprintf("%d", meta.FailedTestFiles), color.Red},
		{"Failed Test Cases", fmt.Sprintf("%d", meta.FailedTestCases), color.Red},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), color.White},
		{"Workers", fmt.Sprintf("%d", meta.Workers), color.White},
		{"Timestamp", meta.Timestamp, color.White},
	}

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Printf("│ %-31s │ ", row.label)
		row.paint("%-27s │\n", row.value)
		if i < len(rows)-1 {
			fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTestFiles == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test file(s) failed with %d test case failure(s)", meta.FailedTestFiles, meta.FailedTestCases)
		fmt.Println()
		f.printFailures(output.Details)
	}

	return nil
}

// printFailures groups failures by file and prints them as a two-level tree
func (f *Formatter) printFailures(failures []domain.Failure) {
	if len(failures) == 0 {
		return
	}

	fileMap := make(map[string][]domain.Failure)
	var files []string
	for _, failure := range failures {
		if _, seen := fileMap[failure.FilePath]; !seen {
			files = append(files, failure.FilePath)
		}
		fileMap[failure.FilePath] = append(fileMap[failure.FilePath], failure)
	}
	sort.Strings(files)

	for i, file := range files {
		isLastFile := i == len(files)-1
		branch := "├── "
		childPrefix := "│   "
		if isLastFile {
			branch = "└── "
			childPrefix = "    "
		}
		color.Cyan("%s%s", branch, f.relPath(file))

		cases := fileMap[file]
		for j, failure := range cases {
			caseBranch := "├── "
			if j == len(cases)-1 {
				caseBranch = "└── "
			}
			name := failure.TestName
			if name == "" {
				name = "(unnamed test case)"
			}
			color.Red("%s%s%s", childPrefix, caseBranch, name)
		}
	}
}

// PrintTestList prints the sorted discovery set
func (f *Formatter) PrintTestList(tests []string) error {
	color.Green("Found %d test file(s):\n", len(tests))

	for i, test := range tests {
		branch := "├── "
		if i == len(tests)-1 {
			branch = "└── "
		}
		color.Cyan("%s%s", branch, f.relPath(test))
	}
	return nil
}

// relPath shortens a path relative to the extension root for display
func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.ExtensionRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
