package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gokudu/kudu"
	"github.com/gokudu/kudu/config"
	"github.com/gokudu/kudu/internal/util"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		site       string
		username   string
		password   string
		token      string
		timeout    int
		verbose    int
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (.yaml, .yml or .json)")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&site, "site", "", "App name without the "+kudu.HostSuffix+" suffix")
	flag.StringVar(&site, "s", "", "--site (shorthand)")
	flag.StringVar(&username, "user", "", "Deployment username")
	flag.StringVar(&password, "password", "", "Deployment password")
	flag.StringVar(&token, "token", "", "Pre-encoded basic auth token; wins over -user/-password")
	flag.IntVar(&timeout, "timeout", config.DefaultTimeout, "Per-request timeout in seconds, 0 disables")
	flag.IntVar(&verbose, "verbose", config.InfoVerbose, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", config.InfoVerbose, "--verbose (shorthand)")
	flag.Usage = usage
	flag.Parse()

	// Initialize logger
	if verbose < config.ErrorVerbose {
		verbose = config.ErrorVerbose
	}
	if verbose > config.TraceVerbose {
		verbose = config.TraceVerbose
	}
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	util.InitializeLogger(logLvls[verbose-1])
	logger := util.GetLogger("main")

	cfg := resolveConfig(logger, configPath, &site, &username, &password, &token, &timeout, &verbose)
	// Re-apply in case the config file raised or lowered the level
	util.InitializeLogger(cfg.LogLvl)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	authToken := cfg.Token
	if authToken == "" {
		authToken = kudu.BasicToken(cfg.Username, cfg.Password)
	}
	httpClient := &http.Client{}
	if cfg.Timeout > 0 {
		httpClient.Timeout = time.Duration(cfg.Timeout) * time.Second
	}
	client, err := kudu.New(cfg.Site, authToken,
		kudu.WithHTTPClient(httpClient),
		kudu.WithLogger(util.GetLogger("kudu")),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create client")
	}

	cmd := flag.Arg(0)
	if cmd == "" {
		usage()
		os.Exit(2)
	}
	args := flag.Args()[1:]

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Debug().Str("site", cfg.Site).Str("command", cmd).Msg("Running command")
	if err := run(ctx, client, logger, cmd, args); err != nil {
		logger.Fatal().Err(err).Str("command", cmd).Msg("Command failed")
	}
}

func run(ctx context.Context, client *kudu.Client, logger util.Logger, cmd string, args []string) error {
	switch cmd {
	case "ls":
		return runLs(ctx, client, args)
	case "cat":
		return runCat(ctx, client, args)
	case "get":
		return runGet(ctx, client, logger, args)
	case "put":
		return runPut(ctx, client, logger, args)
	case "rm":
		return runRm(ctx, client, logger, args)
	case "mkdir":
		return runMkDir(ctx, client, logger, args)
	case "rmdir":
		return runRmDir(ctx, client, logger, args)
	case "zip":
		return runZip(ctx, client, logger, args)
	case "env":
		return runEnv(ctx, client, args)
	case "run":
		return runExec(ctx, client, args)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// resolveConfig layers defaults, the config file, KUDU_* environment
// variables and explicitly passed flags, most specific last.
func resolveConfig(logger util.Logger, configPath string, site, username, password, token *string, timeout, verbose *int) *config.Config {
	cfg := config.NewDefaultConfig()

	if configPath != "" {
		override, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		cfg.Merge(override)
		logger.Debug().Str("config", configPath).Msg("Config file loaded")
	}

	envOverride := &config.ConfigOverride{}
	if v := os.Getenv(kudu.EnvSite); v != "" {
		envOverride.Site = &v
	}
	if v := os.Getenv(kudu.EnvUsername); v != "" {
		envOverride.Username = &v
	}
	if v := os.Getenv(kudu.EnvPassword); v != "" {
		envOverride.Password = &v
	}
	if v := os.Getenv(kudu.EnvToken); v != "" {
		envOverride.Token = &v
	}
	cfg.Merge(envOverride)

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	flagOverride := &config.ConfigOverride{}
	if set["site"] || set["s"] {
		flagOverride.Site = site
	}
	if set["user"] {
		flagOverride.Username = username
	}
	if set["password"] {
		flagOverride.Password = password
	}
	if set["token"] {
		flagOverride.Token = token
	}
	if set["timeout"] {
		flagOverride.Timeout = timeout
	}
	if set["verbose"] || set["v"] {
		flagOverride.Verbose = verbose
	}
	cfg.Merge(flagOverride)

	return cfg
}

func runLs(ctx context.Context, client *kudu.Client, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	entries, err := client.ReadDir(ctx, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name
		if e.IsDir() {
			name += "/"
		}
		fmt.Printf("%10d  %s  %s\n", e.Size, e.Mtime.Format(time.RFC3339), name)
	}
	return nil
}

func runCat(ctx context.Context, client *kudu.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kudu cat <path>")
	}
	data, err := client.GetFile(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runGet(ctx context.Context, client *kudu.Client, logger util.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: kudu get <remote> <local>")
	}
	if err := client.DownloadFile(ctx, args[0], args[1]); err != nil {
		return err
	}
	logger.Info().Str("remote", args[0]).Str("local", args[1]).Msg("Downloaded file")
	return nil
}

func runPut(ctx context.Context, client *kudu.Client, logger util.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: kudu put <local> <remote>")
	}
	if err := client.UploadFile(ctx, args[0], args[1]); err != nil {
		return err
	}
	logger.Info().Str("local", args[0]).Str("remote", args[1]).Msg("Uploaded file")
	return nil
}

func runRm(ctx context.Context, client *kudu.Client, logger util.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kudu rm <path>")
	}
	if err := client.DeleteFile(ctx, args[0]); err != nil {
		return err
	}
	logger.Info().Str("path", args[0]).Msg("Deleted file")
	return nil
}

func runMkDir(ctx context.Context, client *kudu.Client, logger util.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kudu mkdir <path>")
	}
	if err := client.MkDir(ctx, args[0]); err != nil {
		return err
	}
	logger.Info().Str("path", args[0]).Msg("Created directory")
	return nil
}

func runRmDir(ctx context.Context, client *kudu.Client, logger util.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kudu rmdir <path>")
	}
	if err := client.RmDir(ctx, args[0]); err != nil {
		return err
	}
	logger.Info().Str("path", args[0]).Msg("Removed directory")
	return nil
}

func runZip(ctx context.Context, client *kudu.Client, logger util.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: kudu zip <remote-folder> <local>")
	}
	if err := client.DownloadZip(ctx, args[0], args[1]); err != nil {
		return err
	}
	logger.Info().Str("remote", args[0]).Str("local", args[1]).Msg("Downloaded zip archive")
	return nil
}

func runEnv(ctx context.Context, client *kudu.Client, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: kudu env")
	}
	environment, err := client.Environment(ctx)
	if err != nil {
		return err
	}
	fmt.Println(environment.Version)
	return nil
}

func runExec(ctx context.Context, client *kudu.Client, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: kudu run <command> [dir]")
	}
	dir := ""
	if len(args) == 2 {
		dir = args[1]
	}
	res, err := client.Exec(ctx, args[0], dir)
	if err != nil {
		return err
	}
	if res.Output != "" {
		fmt.Print(res.Output)
	}
	if res.Error != "" {
		fmt.Fprint(os.Stderr, res.Error)
	}
	if res.ExitCode != 0 {
		os.Exit(res.ExitCode)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: kudu [flags] <command> [args]

Commands:
  ls [path]                 List a remote directory (root when omitted)
  cat <path>                Print a remote file to stdout
  get <remote> <local>      Download a remote file
  put <local> <remote>      Upload a local file
  rm <path>                 Delete a remote file
  mkdir <path>              Create a remote directory
  rmdir <path>              Remove a remote directory
  zip <remote-folder> <local>  Download a folder as a zip archive
  env                       Print the SCM environment version
  run <command> [dir]       Execute a command on the site

Flags:
`)
	flag.PrintDefaults()
}
