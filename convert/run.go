// Package convert implements the convert subcommand: it locates SnapGene
// container files, decodes them and writes the requested flat-file output.
package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sgc/common"
	"sgc/config"
	"sgc/fasta"
	"sgc/genbank"
	"sgc/snapgene"
	"sgc/state"
)

const sourceExt = ".dna"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format, err = common.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to genbank", zap.Error(err))
		env.Format = common.OutputFmtGenbank
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, env, log)
}

// process dispatches between single-file and recursive directory conversion.
func process(ctx context.Context, src, dst string, env *state.LocalEnv, log *zap.Logger) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("unable to access source: %w", err)
	}

	if !info.IsDir() {
		return convertFile(src, filepath.Base(src), dst, env, log)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), sourceExt) {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if err := convertFile(path, rel, dst, env, log); err != nil {
			if env.Cfg.Document.KeepGoing {
				log.Error("Skipping file", zap.String("file", path), zap.Error(err))
				return nil
			}
			return err
		}
		return nil
	})
}

func convertFile(src, rel, dst string, env *state.LocalEnv, log *zap.Logger) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open source: %w", err)
	}
	defer in.Close()

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	var opts []snapgene.Option
	if env.Rpt != nil {
		opts = append(opts, snapgene.WithBlockCapture(func(tag byte, payload []byte) {
			env.Rpt.StoreData(fmt.Sprintf("blocks/%s/tag-%d", base, tag), payload)
		}))
	}

	doc, err := snapgene.NewDecoder(log, opts...).Parse(bufio.NewReader(in))
	if err != nil {
		return fmt.Errorf("unable to decode %q: %w", src, err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("documents/%s.txt", base), []byte(doc.String()))
	}

	path := outputPath(dst, rel, env.Format, env.NoDirs)
	if !env.Overwrite {
		if _, serr := os.Stat(path); serr == nil {
			return fmt.Errorf("destination %q already exists, use overwrite to replace it", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create destination: %w", err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	switch env.Format {
	case common.OutputFmtFasta:
		err = fasta.Write(out, doc, env.Cfg.Document.Fasta.RecordID)
	default:
		err = genbank.Write(out, doc)
	}
	if err != nil {
		return fmt.Errorf("unable to write %q: %w", path, err)
	}

	log.Info("Converted", zap.String("source", src), zap.String("destination", path))
	return nil
}

// outputPath derives the destination file name from the source name,
// optionally preserving the source directory structure.
func outputPath(dst, rel string, format common.OutputFmt, noDirs bool) string {
	name := config.CleanFileName(strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))) + format.Ext()
	if noDirs {
		return filepath.Join(dst, name)
	}
	return filepath.Join(dst, filepath.Dir(rel), name)
}
