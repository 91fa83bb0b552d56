// Command jsoncompare compares two JSON documents structurally and prints a
// path-addressed report of every discrepancy.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/zippoy/jsoncompare"
)

// CLI defines the command-line interface
var CLI struct {
	Expected string `arg:"" help:"Path to the expected JSON document." type:"existingfile"`
	Actual   string `arg:"" help:"Path to the actual JSON document." type:"existingfile"`
	Mode     string `help:"Comparison mode." short:"m" default:"lenient" enum:"strict,lenient,non-extensible,strict-order"`
	Rules    string `help:"Path to a YAML rules file. Its mode, when set, wins over --mode." short:"r" optional:"" type:"existingfile"`
	Stats    bool   `help:"Print comparison statistics." short:"s"`
	NoColor  bool   `help:"Disable colored output."`
}

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	extraStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("jsoncompare"),
		kong.Description("Structural comparison for JSON documents."),
		kong.UsageOnError(),
	)

	failed, err := run()
	kctx.FatalIfErrorf(err)
	if failed {
		os.Exit(1)
	}
}

func run() (failed bool, err error) {
	mode, err := jsoncompare.ParseMode(CLI.Mode)
	if err != nil {
		return false, err
	}

	var stats jsoncompare.Stats
	var opts []jsoncompare.Option
	if CLI.Stats {
		opts = append(opts, jsoncompare.OptionSetStats(&stats))
	}

	comparator, err := buildComparator(mode, opts)
	if err != nil {
		return false, err
	}

	expected, err := os.ReadFile(CLI.Expected)
	if err != nil {
		return false, err
	}
	actual, err := os.ReadFile(CLI.Actual)
	if err != nil {
		return false, err
	}

	result := comparator.CompareStrings(string(expected), string(actual))
	report(result)

	if CLI.Stats {
		fmt.Print(style(mutedStyle, jsoncompare.FormatStats(&stats)))
	}
	return result.Failed(), nil
}

func buildComparator(mode jsoncompare.Mode, opts []jsoncompare.Option) (*jsoncompare.Comparator, error) {
	if CLI.Rules == "" {
		return jsoncompare.New(mode, opts...)
	}
	rules, err := jsoncompare.LoadRules(CLI.Rules)
	if err != nil {
		return nil, err
	}
	return rules.Comparator(mode, opts...)
}

func report(result *jsoncompare.Result) {
	if result.Passed() {
		fmt.Println(style(passStyle, "documents match"))
		return
	}

	for _, f := range result.Missing() {
		fmt.Printf("%s %s: expected %s, but none found\n",
			style(missStyle, "-"), style(pathStyle, f.Path), render(f.Expected))
	}
	for _, f := range result.Unexpected() {
		fmt.Printf("%s %s: unexpected %s\n",
			style(extraStyle, "+"), style(pathStyle, f.Path), render(f.Actual))
	}
	for _, f := range result.Diffs() {
		fmt.Printf("%s %s: expected %s, got %s\n",
			style(changedStyle, "~"), style(pathStyle, f.Path), render(f.Expected), render(f.Actual))
	}

	total := len(result.Missing()) + len(result.Unexpected()) + len(result.Diffs())
	fmt.Println(style(failStyle, fmt.Sprintf("documents differ: %d finding(s)", total)))
}

func render(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}:
		return "a JSON object"
	case []interface{}:
		return "a JSON array"
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func style(s lipgloss.Style, text string) string {
	if CLI.NoColor {
		return text
	}
	return s.Render(text)
}
