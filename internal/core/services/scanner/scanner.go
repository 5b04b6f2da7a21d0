// Package scanner computes CRC-32 checksums of files and streams in
// fixed-size chunks, optionally decoding compressed inputs first.
package scanner

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/iamNilotpal/crc/internal/adapters/checksum"
	"github.com/iamNilotpal/crc/internal/adapters/compression"
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/internal/core/ports"
	"github.com/iamNilotpal/crc/internal/manifest"
	"github.com/iamNilotpal/crc/pkg/errors"
	"github.com/iamNilotpal/crc/pkg/fs"
	"github.com/iamNilotpal/crc/pkg/pool"
	"github.com/iamNilotpal/crc/pkg/system"
)

// Scanner reads inputs and checksums them. It is safe for concurrent use;
// every input gets its own running checksum.
type Scanner struct {
	opts *domain.ScannerOptions
	log  *zap.SugaredLogger

	fs       ports.FileSystem
	checksum ports.Checksum
	buffers  *pool.BufferPool

	// Shared by all workers; nil when unthrottled.
	limiter *rate.Limiter
}

// New validates opts, filling in defaults for zero fields. A nil opts
// uses DefaultOptions and a nil log discards output.
func New(opts *domain.ScannerOptions, log *zap.SugaredLogger) (*Scanner, error) {
	if opts == nil {
		opts = &domain.ScannerOptions{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	sum, err := checksum.NewCheckSummer(opts.ChecksumOptions)
	if err != nil {
		return nil, err
	}

	s := &Scanner{
		opts:     opts,
		log:      log,
		fs:       fs.NewLocalFileSystem(),
		checksum: sum,
		buffers:  pool.NewBufferPool(int(opts.BufferSize)),
	}

	if opts.ReadRateLimit > 0 {
		// A single chunk must always fit in the bucket or WaitN fails.
		burst := max(int(opts.ReadRateLimit), int(opts.BufferSize))
		s.limiter = rate.NewLimiter(rate.Limit(opts.ReadRateLimit), burst)
	}

	return s, nil
}

// Sum reads r to EOF and returns the checksum and the number of bytes read.
// ctx is checked between chunks.
func (s *Scanner) Sum(ctx context.Context, r io.Reader) (uint32, int64, error) {
	h := s.checksum.New()
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return h.Sum32(), total, err
		}

		n, err := r.Read(*buf)
		if n > 0 {
			if s.limiter != nil {
				if werr := s.limiter.WaitN(ctx, n); werr != nil {
					return h.Sum32(), total, werr
				}
			}
			h.Write((*buf)[:n])
			total += int64(n)
		}

		if err == io.EOF {
			return h.Sum32(), total, nil
		}
		if err != nil {
			return h.Sum32(), total, err
		}
	}
}

// SumFile checksums the file at path, or stdin when path is "-". Failures
// are reported in the result's Err as *errors.ChecksumError.
func (s *Scanner) SumFile(ctx context.Context, path string) domain.FileResult {
	result := domain.FileResult{Path: path}
	start := time.Now()

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	err := system.RunWithContext(ctx, func(opCtx context.Context) error {
		return s.sumFile(opCtx, &result)
	})
	if err != nil && errors.AsChecksumError(err) == nil {
		err = errors.NewChecksumError(categorize(err, errors.ErrorStorage), "read", path, err)
	}

	result.Err = err
	result.Elapsed = time.Since(start)

	if err != nil {
		s.log.Warnw("checksum failed", "path", path, "error", err)
	} else {
		s.log.Debugw(
			"checksummed",
			"path", path,
			"checksum", fmt.Sprintf("%08x", result.Checksum),
			"bytes", result.Size,
			"format", result.Format,
			"elapsed", result.Elapsed,
		)
	}
	return result
}

func (s *Scanner) sumFile(ctx context.Context, result *domain.FileResult) error {
	f, err := s.fs.Open(result.Path)
	if err != nil {
		return errors.NewChecksumError(errors.ErrorStorage, "open", result.Path, err)
	}
	defer f.Close()

	var r io.Reader = f
	category := errors.ErrorStorage

	format := compression.Resolve(s.opts.CompressionOptions, result.Path)
	if format != compression.None {
		codec, err := compression.New(format, s.opts.CompressionOptions)
		if err != nil {
			return errors.NewChecksumError(errors.ErrorDecode, "decode", result.Path, err)
		}

		dr, err := codec.NewReader(f)
		if err != nil {
			return errors.NewChecksumError(errors.ErrorDecode, "decode", result.Path, err)
		}
		defer dr.Close()

		r = dr
		category = errors.ErrorDecode
		result.Format = format
	}

	sum, n, err := s.Sum(ctx, r)
	if err != nil {
		return errors.NewChecksumError(categorize(err, category), "read", result.Path, err)
	}

	result.Checksum = sum
	result.Size = n
	return nil
}

// SumFiles expands paths and checksums every resulting file with up to
// Concurrency workers. Results are returned in input order. A failure on
// one input never stops the others; all failures are combined into the
// returned error.
func (s *Scanner) SumFiles(ctx context.Context, paths []string) ([]domain.FileResult, error) {
	files := s.fs.Expand(paths, s.opts.Recursive, s.opts.ExcludeDirs)
	s.log.Debugw("inputs expanded", "given", len(paths), "files", len(files))

	results := s.run(ctx, len(files), func(ctx context.Context, i int) domain.FileResult {
		return s.SumFile(ctx, files[i])
	})
	return results, combine(results)
}

// Verify re-reads every manifest entry and compares size and checksum.
// Mismatches are reported as *errors.ChecksumError wrapping
// errors.ErrChecksumMismatch.
func (s *Scanner) Verify(ctx context.Context, entries []manifest.Entry) ([]domain.FileResult, error) {
	results := s.run(ctx, len(entries), func(ctx context.Context, i int) domain.FileResult {
		want := entries[i]
		got := s.SumFile(ctx, want.Path)
		if !got.OK() {
			return got
		}

		if got.Checksum != want.Checksum || got.Size != want.Size {
			got.Err = errors.NewChecksumError(
				errors.ErrorMismatch, "verify", want.Path,
				fmt.Errorf(
					"%w: recorded %08x (%d bytes), computed %08x (%d bytes)",
					errors.ErrChecksumMismatch, want.Checksum, want.Size, got.Checksum, got.Size,
				),
			)
			s.log.Warnw("verification failed", "path", want.Path, "error", got.Err)
		}
		return got
	})
	return results, combine(results)
}

func (s *Scanner) run(ctx context.Context, n int, fn func(context.Context, int) domain.FileResult) []domain.FileResult {
	results := make([]domain.FileResult, n)

	var g errgroup.Group
	g.SetLimit(int(s.opts.Concurrency))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			results[i] = fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func combine(results []domain.FileResult) error {
	var err error
	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}
	return err
}

func categorize(err error, fallback errors.ErrorCategory) errors.ErrorCategory {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrorCanceled
	}
	return fallback
}
