// Package rewrite implements "parse" and "edit" subcommands: URLs are
// collected from all sources, turned into parts and either rendered or
// edited and printed back.
package rewrite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"purl/part"
	"purl/source"
	"purl/state"
)

// collect gathers URLs from --from file first and then from command line.
func collect(ctx context.Context, env *state.LocalEnv, from string, args []string) ([]source.Item, error) {
	var items []source.Item
	if len(from) > 0 {
		fromFile, err := source.FromFile(ctx, from, env.Cfg.Input.ArchivePattern)
		if err != nil {
			return nil, err
		}
		items = fromFile
	}
	fromArgs, err := source.FromArgs(ctx, args, env.Stdin)
	if err != nil {
		return nil, err
	}
	items = append(items, fromArgs...)
	if len(items) == 0 {
		return nil, errors.New("no input URLs have been specified")
	}

	if env.Rpt != nil {
		var sb strings.Builder
		for _, it := range items {
			fmt.Fprintf(&sb, "%s\t%s\n", it, it.Text)
		}
		env.Rpt.StoreData("inputs.txt", []byte(sb.String()))
	}
	return items, nil
}

// batch walks collected items sequentially. Failures of individual items do
// not stop processing, they are combined and returned at the end.
type batch struct {
	log         *zap.Logger
	skipInvalid bool
}

func (b batch) each(ctx context.Context, items []source.Item, fn func(source.Item, *part.URL) error) (err error) {
	var processed, skipped int
	for _, it := range items {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		if part.ParseComponents(it.Text) == nil {
			if b.skipInvalid {
				b.log.Warn("Skipping invalid URL", zap.Stringer("source", it), zap.String("url", it.Text))
				skipped++
				continue
			}
			err = multierr.Append(err, fmt.Errorf("%s: invalid URL %q", it, it.Text))
			continue
		}
		if er := fn(it, part.NewURL(it.Text)); er != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", it, er))
			continue
		}
		processed++
	}
	b.log.Debug("Batch completed", zap.Int("processed", processed), zap.Int("skipped", skipped), zap.Int("failed", len(multierr.Errors(err))))
	return err
}
