package driver

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/viant/afs"
	"golang.org/x/sync/errgroup"

	"solattr/internal/ast"
	"solattr/internal/parser"
	"solattr/token"
)

var log = commonlog.GetLogger("solattr.driver")

// Result is the outcome of parsing one source.
type Result struct {
	URL         string
	Source      string
	Nodes       []ast.Node
	ParseErrors []parser.ParseError
	ScanErrors  []parser.ScanError
	Comments    []token.Span
}

// Failed reports whether the source had any scan or parse error.
func (r *Result) Failed() bool {
	return len(r.ParseErrors) > 0 || len(r.ScanErrors) > 0
}

type Driver struct {
	fs afs.Service
}

func New() *Driver {
	return &Driver{fs: afs.New()}
}

// Load reads a source by path or URL (file://, mem://, ...).
func (d *Driver) Load(ctx context.Context, url string) (string, error) {
	data, err := d.fs.DownloadWithURL(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", url, err)
	}
	return string(data), nil
}

// Store writes content back to url.
func (d *Driver) Store(ctx context.Context, url, content string) error {
	if err := d.fs.Upload(ctx, url, 0o644, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to store %s: %w", url, err)
	}
	log.Infof("wrote %s", url)
	return nil
}

// Parse loads and parses a single source.
func (d *Driver) Parse(ctx context.Context, url string) (*Result, error) {
	src, err := d.Load(ctx, url)
	if err != nil {
		return nil, err
	}
	parsed := parser.Parse(url, src)
	log.Debugf("parsed %s: %d attributes, %d errors", url, len(parsed.Nodes), len(parsed.ParseErrors)+len(parsed.ScanErrors))

	return &Result{
		URL:         url,
		Source:      src,
		Nodes:       parsed.Nodes,
		ParseErrors: parsed.ParseErrors,
		ScanErrors:  parsed.ScanErrors,
		Comments:    parsed.Comments,
	}, nil
}

// ParseFiles parses every url with at most jobs workers. Results keep the
// input order. A load failure cancels the batch; parse errors do not.
func (d *Driver) ParseFiles(ctx context.Context, urls []string, jobs int) ([]*Result, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(urls)))

	for i, url := range urls {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := d.Parse(gctx, url)
			if err != nil {
				return err
			}
			// each goroutine owns its index
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
