// Command laguide exposes the matrix kernels and the Hill cipher on the command line.
//
// Usage:
//
//	laguide det     -a "1,2;3,4"
//	laguide rref    -a "1,2,3;4,5,6" [-tol 1e-12]
//	laguide solve   -a "2,1;1,3" -b "3;5"
//	laguide inverse -a "4,7;2,6"
//	laguide qr      -a "1,1;1,0;0,1"
//	laguide encrypt -key "1,2;3,5" [-seed 42] hello world
//	laguide decrypt -key "1,2;3,5" VEKWOT
//
// Every subcommand also accepts -config (a TOML file, see internal/config)
// and -log-level. Flags override the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/laguide/hill"
	"github.com/katalvlaran/laguide/internal/config"
	"github.com/katalvlaran/laguide/matrix"
)

var errUsage = errors.New("usage: laguide <det|rref|solve|inverse|qr|encrypt|decrypt> [flags] [text]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("laguide: ")
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, hill.ErrSymbolNotEncodable) {
		log.Printf("warning: %v", err)
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// options collects every flag; each subcommand reads the ones it needs.
type options struct {
	configPath string
	logLevel   string
	a, b       string
	tol        float64
	tolSet     bool
	key        string
	seed       int64
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd := args[0]

	var o options
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&o.a, "a", "", "Matrix literal, rows split by ';', entries by ','")
	fs.StringVar(&o.b, "b", "", "Right-hand side column literal for solve")
	fs.Float64Var(&o.tol, "tol", 0, "Chop tolerance for rref (default from the config; 0 disables chopping)")
	fs.StringVar(&o.key, "key", "", "Cipher key literal (overrides the config key)")
	fs.Int64Var(&o.seed, "seed", 0, "Padding seed (0 uses the config seed; both 0 means crypto/rand)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tol" {
			o.tolSet = true
		}
	})

	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	level, err := logging.LevelFromString(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	logging.SetAllLoggers(level)

	switch cmd {
	case "det", "rref", "solve", "inverse", "qr":
		return runMatrix(cmd, o, cfg, stdout)
	case "encrypt", "decrypt":
		return runCipher(cmd, o, cfg, strings.Join(fs.Args(), " "), stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func loadConfig(o options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.tolSet {
		tol := o.tol
		cfg.Matrix.Tolerance = &tol
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runMatrix(cmd string, o options, cfg *config.Config, w io.Writer) error {
	if o.a == "" {
		return fmt.Errorf("%s: -a is required", cmd)
	}
	a, err := config.ParseMatrix(o.a)
	if err != nil {
		return fmt.Errorf("%s: -a: %w", cmd, err)
	}

	switch cmd {
	case "det":
		d, err := matrix.Determinant(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%g\n", d)
		return err
	case "rref":
		r, err := matrix.ReduceFull(a, cfg.Tolerance())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, r)
		return err
	case "solve":
		if o.b == "" {
			return errors.New("solve: -b is required")
		}
		b, err := config.ParseMatrix(o.b)
		if err != nil {
			return fmt.Errorf("solve: -b: %w", err)
		}
		x, err := matrix.Solve(a, b)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, x)
		return err
	case "inverse":
		inv, err := matrix.Inverse(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, inv)
		return err
	default: // qr
		q, r, err := matrix.QR(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Q:\n%vR:\n%v", q, r)
		return err
	}
}

func runCipher(cmd string, o options, cfg *config.Config, text string, w io.Writer) error {
	rows := cfg.Cipher.Key
	if o.key != "" {
		var err error
		if rows, err = config.ParseIntMatrix(o.key); err != nil {
			return fmt.Errorf("%s: -key: %w", cmd, err)
		}
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: no key (use -key or [cipher] key in -config)", cmd)
	}
	key, err := hill.NewKey(rows)
	if err != nil {
		return err
	}

	var opts []hill.Option
	seed := cfg.Cipher.Seed
	if o.seed != 0 {
		seed = o.seed
	}
	if seed != 0 {
		opts = append(opts, hill.WithSeed(seed))
	}
	c, err := hill.NewCipher(key, opts...)
	if err != nil {
		return err
	}

	var out string
	if cmd == "encrypt" {
		out, err = c.Encrypt(text)
	} else {
		out, err = c.Decrypt(text)
	}
	if err != nil && !errors.Is(err, hill.ErrSymbolNotEncodable) {
		return err
	}
	// Skipped symbols still produce output; the skip is reported after it.
	if _, werr := fmt.Fprintln(w, out); werr != nil {
		return werr
	}
	return err
}
