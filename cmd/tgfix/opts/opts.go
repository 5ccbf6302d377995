package opts

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/pkg/config"
	"github.com/walteh/tgfix/pkg/log"
	"github.com/walteh/tgfix/pkg/operation"
	"github.com/walteh/tgfix/pkg/provider"
	"github.com/walteh/tgfix/pkg/provider/local"
	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile   string
	Debug        bool
	Recursive    bool
	NoBackup     bool
	BackupPolicy string
	Pattern      string
	Ignore       []string

	// Config holds the file values, empty when no file was given
	Config *config.Config

	Stdout io.Writer
	Stderr io.Writer
}

// ResolveBackupPolicy picks the policy from --no-backup, --backup-policy, the
// config file and finally the command default, in that order.
func (o *RootOpts) ResolveBackupPolicy(def status.BackupPolicy) (status.BackupPolicy, error) {
	if o.NoBackup {
		return status.BackupNone, nil
	}
	name := o.BackupPolicy
	if name == "" && o.Config != nil {
		name = o.Config.BackupPolicy
	}
	if name == "" {
		return def, nil
	}
	return status.ParseBackupPolicy(name)
}

// 🔧 Options validates dir and builds the shared operation options. Nothing is
// read from dir yet.
func (o *RootOpts) Options(ctx context.Context, dir string, def status.BackupPolicy) (operation.Options, error) {
	policy, err := o.ResolveBackupPolicy(def)
	if err != nil {
		return operation.Options{}, err
	}

	p, err := local.New(provider.Args{
		Dir:       dir,
		Pattern:   o.Pattern,
		Recursive: o.Recursive,
		Ignore:    o.Ignore,
	})
	if err != nil {
		return operation.Options{}, err
	}

	return operation.Options{
		Provider:  p,
		StatusMgr: status.New(p.Root(), zerolog.Ctx(ctx)),
		Backup:    policy,
		Logger:    log.FromContext(ctx),
	}, nil
}

// ✏️ RunEdit runs the given steps over every file as one pipeline
func (o *RootOpts) RunEdit(ctx context.Context, opts operation.Options, title string, steps ...text.Transformer) error {
	op, err := operation.NewEditOperation(opts, title, text.NewPipeline(steps...))
	if err != nil {
		return errors.Errorf("creating %s: %w", title, err)
	}
	return o.Run(ctx, op)
}

// 🏃 Run executes op and prints its summary
func (o *RootOpts) Run(ctx context.Context, op operation.Operation) error {
	return operation.NewRunner(zerolog.Ctx(ctx), o.Stdout).Run(ctx, op)
}
