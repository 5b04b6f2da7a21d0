package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/iamNilotpal/crc/config"
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/internal/core/services/scanner"
	"github.com/iamNilotpal/crc/internal/manifest"
	"github.com/iamNilotpal/crc/internal/serialize"
	"github.com/iamNilotpal/crc/pkg/errors"
	"github.com/iamNilotpal/crc/pkg/logger"
)

const usage = `usage: crcsum [flags] [FILE...]

Prints the CRC-32 (IEEE) checksum of each FILE. With no FILE, or when
FILE is -, reads standard input.

`

type flags struct {
	config      string
	recursive   bool
	decompress  bool
	format      string
	concurrency uint
	rate        uint64
	timeout     time.Duration
	output      string
	check       string
	logLevel    string
	json        bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, []string, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("crcsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&f.config, "config", "", "YAML config file")
	fs.BoolVar(&f.recursive, "r", false, "walk directories")
	fs.BoolVar(&f.decompress, "z", false, "checksum decoded content of .zst, .gz and .lz4 inputs")
	fs.StringVar(&f.format, "format", "", "with -z, treat every input as this format (zstd, gzip, lz4)")
	fs.UintVar(&f.concurrency, "j", scanner.DefaultConcurrency, "inputs read in parallel")
	fs.Uint64Var(&f.rate, "rate", 0, "read rate limit in bytes per second (0 = unlimited)")
	fs.DurationVar(&f.timeout, "timeout", 0, "per input time limit (0 = none)")
	fs.StringVar(&f.output, "o", "", "also write a manifest to this path")
	fs.StringVar(&f.check, "c", "", "verify the files recorded in this manifest")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&f.json, "json", false, "print one JSON object per input, failures included")

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, fs.Args(), set, nil
}

// loadConfig layers explicitly set flags over the config file, which is
// itself layered over the defaults.
func loadConfig(f *flags, set map[string]bool) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		loaded, err := config.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if set["r"] {
		cfg.Scan.Recursive = f.recursive
	}
	if set["z"] {
		cfg.Scan.Decompress = f.decompress
	}
	if set["format"] {
		cfg.Scan.Format = f.format
	}
	if set["j"] {
		cfg.Scan.Concurrency = uint16(min(f.concurrency, scanner.MaxConcurrency+1))
	}
	if set["rate"] {
		cfg.Scan.ReadRateLimit = f.rate
	}
	if set["timeout"] {
		cfg.Scan.Timeout = f.timeout
	}
	if set["log-level"] {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, paths, set, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	cfg, err := loadConfig(f, set)
	if err != nil {
		if ve := errors.AsValidationError(err); ve != nil {
			fmt.Fprintf(stderr, "crcsum: invalid %s %v: %v\n", ve.Field, ve.Value, ve.Err)
		} else {
			fmt.Fprintf(stderr, "crcsum: %v\n", err)
		}
		return 2
	}

	log, err := logger.NewWithLevel("crcsum", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "crcsum: %v\n", err)
		return 2
	}
	defer log.Sync()

	s, err := scanner.New(cfg.ScannerOptions(), log)
	if err != nil {
		log.Errorw("create scanner", "error", err)
		return 2
	}

	p := &printer{out: stdout, errOut: stderr, json: f.json, log: log}

	if f.check != "" {
		return check(ctx, s, p, f.check)
	}

	if len(paths) == 0 {
		paths = []string{"-"}
	}
	return sum(ctx, s, p, paths, f.output)
}

// printer renders results as text lines or JSON objects. In text mode the
// reason for every failed result goes to errOut.
type printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
	log    *zap.SugaredLogger
}

func (p *printer) print(r domain.FileResult, text string) {
	if !p.json {
		if r.Err != nil {
			fmt.Fprintf(p.errOut, "crcsum: %s: %v\n", r.Path, reason(r.Err))
		}
		if text != "" {
			fmt.Fprintln(p.out, text)
		}
		return
	}

	data, err := serialize.MarshalJSON(serialize.NewRecord(r))
	if err != nil {
		p.log.Errorw("encode result", "path", r.Path, "error", err)
		return
	}
	fmt.Fprintf(p.out, "%s\n", data)
}

// reason strips the wrappers that repeat the path already printed.
func reason(err error) error {
	if ce := errors.AsChecksumError(err); ce != nil {
		err = ce.Err
	}
	var pe *iofs.PathError
	if stderrors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func sum(ctx context.Context, s *scanner.Scanner, p *printer, paths []string, output string) int {
	log := p.log
	results, err := s.SumFiles(ctx, paths)

	for _, r := range results {
		text := ""
		if r.OK() {
			text = fmt.Sprintf("%08x  %s", r.Checksum, r.Path)
		}
		p.print(r, text)
	}

	if output != "" {
		if werr := writeManifest(output, manifest.FromResults(results)); werr != nil {
			log.Errorw("write manifest", "path", output, "error", werr)
			return 1
		}
		log.Infow("manifest written", "path", output, "entries", countOK(results))
	}

	if err != nil {
		return 1
	}
	return 0
}

func check(ctx context.Context, s *scanner.Scanner, p *printer, path string) int {
	log := p.log
	file, err := os.Open(path)
	if err != nil {
		log.Errorw("open manifest", "path", path, "error", err)
		return 1
	}
	entries, err := manifest.Read(file)
	file.Close()
	if err != nil {
		log.Errorw("read manifest", "path", path, "error", errors.NewChecksumError(errors.ErrorManifest, "read", path, err))
		return 1
	}

	results, err := s.Verify(ctx, entries)
	for _, r := range results {
		status := "OK"
		if !r.OK() {
			status = "FAILED"
		}
		p.print(r, fmt.Sprintf("%s: %s", r.Path, status))
	}

	if err != nil {
		log.Warnw("verification finished with failures", "failed", len(results)-countOK(results), "total", len(results))
		return 1
	}
	return 0
}

func writeManifest(path string, entries []manifest.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := manifest.Write(file, entries); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func countOK(results []domain.FileResult) int {
	n := 0
	for _, r := range results {
		if r.OK() {
			n++
		}
	}
	return n
}
