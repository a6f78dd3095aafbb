package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/shade/app/layout"
	"github.com/umputun/shade/app/server"
)

var opts struct {
	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8585" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"30s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /shade)"`
		BodySizeLimit   int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
		CacheSize       int           `long:"cache-size" env:"CACHE_SIZE" default:"64" description:"rendered pages kept in cache"`
	} `group:"server" namespace:"server" env-namespace:"SHADE_SERVER"`

	Layout struct {
		File      string `long:"file" env:"FILE" description:"layout config file (yaml), built-in layout if empty"`
		HotReload bool   `long:"hot-reload" env:"HOT_RELOAD" description:"watch layout file for changes and reload"`
	} `group:"layout" namespace:"layout" env-namespace:"SHADE_LAYOUT"`

	Cookie struct {
		MaxAge time.Duration `long:"max-age" env:"MAX_AGE" default:"8760h" description:"theme cookie lifetime"`
		Secure bool          `long:"secure" env:"SECURE" description:"mark theme cookie secure (https only)"`
	} `group:"cookie" namespace:"cookie" env-namespace:"SHADE_COOKIE"`

	Verify  bool `long:"verify" description:"validate layout file and exit"`
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("shade %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs()

	if opts.Verify {
		if err := verifyLayout(opts.Layout.File); err != nil {
			log.Printf("[ERROR] %v", err)
			os.Exit(1)
		}
		log.Printf("[INFO] layout %s is valid", opts.Layout.File)
		os.Exit(0)
	}

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log.Printf("[INFO] starting shade server on %s", opts.Server.Address)

	layouts, err := layout.NewStore(opts.Layout.File)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	if opts.Layout.File != "" && opts.Layout.HotReload {
		if err := layouts.StartWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start layout watcher: %w", err)
		}
		log.Printf("[INFO] layout hot-reload enabled for %s", opts.Layout.File)
	}

	srv, err := server.New(layouts, server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         opts.Server.BaseURL,
		CookieMaxAge:    opts.Cookie.MaxAge,
		CookieSecure:    opts.Cookie.Secure,
		CacheSize:       opts.Server.CacheSize,
		BodySizeLimit:   opts.Server.BodySizeLimit,
		RequestsPerSec:  opts.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// verifyLayout checks the layout file against the schema and the layout rules.
func verifyLayout(path string) error {
	if path == "" {
		return errors.New("layout file is required for --verify")
	}
	if _, err := layout.Load(path); err != nil {
		return fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return nil
}

func setupLogs() io.Writer {
	log.Setup(log.Msec)
	if opts.Debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
