package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"time"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/agentlint/internal/config"
	"github.com/jeduden/agentlint/internal/discovery"
	"github.com/jeduden/agentlint/internal/engine"
	"github.com/jeduden/agentlint/internal/log"
	"github.com/jeduden/agentlint/internal/output"
	"github.com/jeduden/agentlint/internal/rule"
	"github.com/jeduden/agentlint/internal/upload"

	// Register the full rule catalogue.
	_ "github.com/jeduden/agentlint/internal/rules/all"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

const usageText = `Usage: agentlint <command> [flags] [workspace]

Commands:
  check     Score the agent configuration files of a workspace
  upload    Check a workspace and publish the report
  rules     List the rule catalogue
  init      Generate a default .agentlint.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

The workspace defaults to the current directory.
Run 'agentlint <command> --help' for more information on a command.
`

// cli carries the output streams of one invocation.
type cli struct {
	stdout, stderr io.Writer
}

func (c *cli) errorf(format string, args ...any) int {
	_, _ = fmt.Fprintf(c.stderr, "agentlint: "+format+"\n", args...)
	return 2
}

func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}

	if len(args) == 0 {
		_, _ = fmt.Fprint(stderr, usageText)
		return 0
	}

	first := args[0]
	switch first {
	case "--help", "-h":
		_, _ = fmt.Fprint(stderr, usageText)
		return 0
	}

	switch first {
	case "check":
		return c.runCheck(args[1:])
	case "upload":
		return c.runUpload(args[1:])
	case "rules":
		return c.runRules(args[1:])
	case "init":
		return c.runInit(args[1:])
	case "version":
		c.printVersion()
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "agentlint: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func (c *cli) printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	_, _ = fmt.Fprintf(c.stdout, "agentlint %s\n", version)
}

// checkFlags are shared by check and upload.
type checkFlags struct {
	configPath string
	format     string
	noColor    bool
	quiet      bool
	verbose    bool
	minScore   int
	parallel   int
}

func (f *checkFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&f.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Suppress the report")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log progress to stderr")
	fs.IntVar(&f.minScore, "min-score", 0, "Exit with status 1 when the total score is below this value")
	fs.IntVar(&f.parallel, "parallel", 0, "Number of rules evaluated concurrently")
}

// runCheck implements the "check" subcommand.
func (c *cli) runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var flags checkFlags
	flags.register(fs)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(c.stderr, "Usage: agentlint check [flags] [workspace]\n\n"+
			"Score the agent configuration files (CLAUDE.md, AGENTS.md, .claude/, ...)\n"+
			"of a workspace.\n\n"+
			"Exit status is 1 when the score is below --min-score, 2 on errors.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		return c.errorf("check takes at most one workspace")
	}

	res, cfg, code := c.check(fs, &flags)
	if res == nil {
		return code
	}
	return c.exitCode(res, cfg)
}

// runUpload implements the "upload" subcommand.
func (c *cli) runUpload(args []string) int {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var (
		flags    checkFlags
		endpoint string
		timeout  time.Duration
	)
	flags.register(fs)
	fs.StringVar(&endpoint, "endpoint", "", "Report service endpoint")
	fs.DurationVar(&timeout, "timeout", 0, "Timeout of each upload request")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(c.stderr, "Usage: agentlint upload [flags] [workspace]\n\n"+
			"Check a workspace, then publish the report and print its URL.\n"+
			"Only scores, diagnostics and file names are sent, never file contents.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		return c.errorf("upload takes at most one workspace")
	}

	res, cfg, code := c.check(fs, &flags)
	if res == nil {
		return code
	}

	if endpoint != "" {
		cfg.Upload.Endpoint = endpoint
	}
	if timeout != 0 {
		cfg.Upload.Timeout = timeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := upload.NewClient(cfg.Upload, &log.Logger{Enabled: flags.verbose, W: c.stderr})
	rep, err := client.Upload(ctx, res)
	if err != nil {
		return c.errorf("%v", err)
	}
	_, _ = fmt.Fprintf(c.stdout, "Report: %s\n", rep.URL)
	return c.exitCode(res, cfg)
}

// check loads the configuration, scans the workspace and prints the
// report. On failure it returns a nil result and the exit code.
func (c *cli) check(fs *flag.FlagSet, flags *checkFlags) (*engine.LintResult, *config.Config, int) {
	workspace := "."
	if fs.NArg() == 1 {
		workspace = fs.Arg(0)
	}
	logger := &log.Logger{Enabled: flags.verbose, W: c.stderr}

	formatter, err := output.New(flags.format, !flags.noColor)
	if err != nil {
		return nil, nil, c.errorf("%v", err)
	}

	root, docs, err := discovery.ScanDir(workspace)
	if err != nil {
		return nil, nil, c.errorf("%v", err)
	}

	cfg, err := loadConfig(flags.configPath, root, logger)
	if err != nil {
		return nil, nil, c.errorf("%v", err)
	}
	if fs.Changed("min-score") {
		cfg.MinScore = flags.minScore
	}
	if fs.Changed("parallel") {
		cfg.Parallel = flags.parallel
	}

	runner := &engine.Runner{
		Config:   cfg,
		Rules:    rule.All(),
		Parallel: cfg.Parallel,
		Log:      logger,
	}
	res := runner.Run(root, docs)

	if !flags.quiet {
		if err := formatter.Format(c.stdout, res); err != nil {
			return nil, nil, c.errorf("error writing output: %v", err)
		}
	}
	return res, cfg, 0
}

func (c *cli) exitCode(res *engine.LintResult, cfg *config.Config) int {
	if res.TotalScore < cfg.MinScore {
		_, _ = fmt.Fprintf(c.stderr, "agentlint: score %d is below the minimum of %d\n", res.TotalScore, cfg.MinScore)
		return 1
	}
	return 0
}

// runRules implements the "rules" subcommand: list the catalogue.
func (c *cli) runRules(args []string) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(c.stderr, "Usage: agentlint rules [id]\n\n"+
			"List every rule, or show one rule.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch fs.NArg() {
	case 0:
		for _, r := range rule.All() {
			_, _ = fmt.Fprintf(c.stdout, "%-44s %-8s %s\n", r.ID(), r.Severity(), r.Description())
		}
		return 0
	case 1:
		r := rule.ByID(fs.Arg(0))
		if r == nil {
			return c.errorf("unknown rule %q", fs.Arg(0))
		}
		weight := "unweighted"
		if w, ok := engine.Weights[r.Category()]; ok {
			weight = fmt.Sprintf("weight %.2f", w)
		}
		_, _ = fmt.Fprintf(c.stdout, "%s\n\n%s\n\nCategory: %s (%s)\nSeverity: %s\n",
			r.ID(), r.Description(), r.Category().Label(), weight, r.Severity())
		return 0
	}
	return c.errorf("rules takes at most one rule id")
}

// runInit implements the "init" subcommand: generate .agentlint.yml.
func (c *cli) runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(c.stderr, "Usage: agentlint init [dir]\n\n"+
			"Generate a default %s config file in dir (default: current directory).\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		return c.errorf("init takes at most one directory")
	}
	dir := "."
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}

	configFile := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configFile); err == nil {
		return c.errorf("%s already exists", configFile)
	}

	data, err := yaml.Marshal(config.Defaults())
	if err != nil {
		return c.errorf("marshalling config: %v", err)
	}

	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return c.errorf("writing %s: %v", configFile, err)
	}

	_, _ = fmt.Fprintf(c.stderr, "agentlint: created %s\n", configFile)
	return 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the workspace upwards.
func loadConfig(configPath, workspace string, logger *log.Logger) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath == "" {
		discovered, err := config.Discover(workspace)
		if err != nil || discovered == "" {
			logger.Printf("config: defaults")
			return config.Merge(defaults, nil), nil
		}
		configPath = discovered
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Printf("config: %s", configPath)
	return config.Merge(defaults, loaded), nil
}
