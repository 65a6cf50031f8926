package rewrite

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"purl/common"
	"purl/config"
	"purl/part"
	"purl/present"
	"purl/source"
	"purl/state"
)

// Parse renders every input URL in requested format.
func Parse(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	out := env.Cfg.Output
	if cmd.IsSet("template") {
		out.Template = cmd.String("template")
		out.Format = common.OutputFormatTemplate
	}
	if cmd.IsSet("format") {
		if out.Format, err = common.ParseOutputFormat(cmd.String("format")); err != nil {
			return fmt.Errorf("unable to use requested format: %w", err)
		}
	}

	items, err := collect(ctx, env, cmd.String("from"), cmd.Args().Slice())
	if err != nil {
		return err
	}

	log.Debug("Parsing starting", zap.Int("urls", len(items)), zap.Stringer("format", out.Format))
	return parseAll(ctx, batch{log: log, skipInvalid: env.Cfg.Input.SkipInvalid}, items, cmd.Root().Writer, out)
}

func parseAll(ctx context.Context, b batch, items []source.Item, w io.Writer, out config.OutputConfig) (err error) {
	r, err := present.New(w, out)
	if err != nil {
		return err
	}
	defer func() {
		if er := r.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to finish output: %w", er))
		}
	}()

	return b.each(ctx, items, func(it source.Item, u *part.URL) error {
		b.log.Debug("Parsed", zap.Stringer("source", it), zap.Stringer("url", u))
		return r.Render(u)
	})
}

// Edit applies requested changes to every input URL and prints results one
// per line.
func Edit(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("edit")

	e, err := editsFromCommand(cmd)
	if err != nil {
		return err
	}
	if e.empty() {
		log.Warn("No edits requested, URLs will be printed as parsed")
	}

	items, err := collect(ctx, env, cmd.String("from"), cmd.Args().Slice())
	if err != nil {
		return err
	}

	log.Debug("Editing starting", zap.Int("urls", len(items)))
	return editAll(ctx, batch{log: log, skipInvalid: env.Cfg.Input.SkipInvalid}, items, cmd.Root().Writer, e)
}

func editsFromCommand(cmd *cli.Command) (e edits, err error) {
	if e.set, err = parsePairs("set", cmd.StringSlice("set")); err != nil {
		return e, err
	}
	if e.params, err = parsePairs("param", cmd.StringSlice("param")); err != nil {
		return e, err
	}
	e.unset = cmd.StringSlice("unset")
	e.unparams = cmd.StringSlice("unparam")
	e.segments = cmd.StringSlice("segment")
	if cmd.IsSet("fragment") {
		f := cmd.String("fragment")
		e.fragment = &f
	}
	return e, nil
}

func editAll(ctx context.Context, b batch, items []source.Item, w io.Writer, e edits) error {
	return b.each(ctx, items, func(it source.Item, u *part.URL) error {
		before := u.String()
		e.apply(u)
		after := u.String()
		b.log.Debug("Edited", zap.Stringer("source", it), zap.String("before", before), zap.String("after", after))
		_, err := fmt.Fprintln(w, after)
		return err
	})
}
