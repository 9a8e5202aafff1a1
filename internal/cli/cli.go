// Package cli implements zident's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"golang.org/x/term"

	"github.com/zarlcorp/zident/internal/config"
	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/server"
	"github.com/zarlcorp/zident/internal/store"
)

// App carries the state shared by every subcommand.
type App struct {
	Version string
	Out     io.Writer
	Err     io.Writer
	In      io.Reader

	// Password reads a secret after printing prompt. It defaults to an
	// unechoed terminal read.
	Password func(prompt string) (string, error)

	cfgPath string
	cfg     config.Config
	log     *slog.Logger
}

// New returns an App wired to the process's standard streams.
func New(version string) *App {
	a := &App{
		Version: version,
		Out:     os.Stdout,
		Err:     os.Stderr,
		In:      os.Stdin,
	}
	a.Password = func(prompt string) (string, error) {
		return ReadPassword(prompt, a.Err)
	}
	return a
}

// Execute runs the command line args.
func (a *App) Execute(ctx context.Context, args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// Command builds the root command and its subcommands.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "zident",
		Short:         "Synthetic identity generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.Logger(a.Err)
			return nil
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	root.SetIn(a.In)
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default "+config.Path()+")")

	root.AddCommand(
		a.identityCmd(),
		a.batchCmd(),
		a.listCmd(),
		a.showCmd(),
		a.forgetCmd(),
		a.favoriteCmd(),
		a.tagCmd(),
		a.noteCmd(),
		a.countriesCmd(),
		a.validateCmd(),
		a.serveCmd(),
		a.versionCmd(),
	)
	return root
}

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// IsFirstRun checks whether the store has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "salt"))
	return err != nil
}

// readNewPassword prompts for a new password with confirmation.
func (a *App) readNewPassword() (string, error) {
	pass, err := a.Password("master password: ")
	if err != nil {
		return "", err
	}
	if pass == "" {
		return "", errors.New("password cannot be empty")
	}
	confirm, err := a.Password("confirm password: ")
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", errors.New("passwords do not match")
	}
	return pass, nil
}

// openStore prompts for the master password and opens the store in the
// configured data directory.
func (a *App) openStore() (*store.Store, error) {
	dir := a.cfg.DataDir
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	var pass string
	var err error
	if IsFirstRun(dir) {
		pass, err = a.readNewPassword()
	} else {
		pass, err = a.Password("master password: ")
	}
	if err != nil {
		return nil, err
	}

	return store.Open(zfilesystem.NewOSFileSystem(dir), pass)
}

// withStore opens the store for the duration of fn.
func (a *App) withStore(fn func(*store.Store) error) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func (a *App) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.ServeAddr
			}
			return server.New(a.cfg, a.log, nil).Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprintf(a.Out, "zident %s\n", a.Version)
			return nil
		},
	}
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (a *App) printIdentity(id identity.Identity) {
	w := a.Out
	fmt.Fprintf(w, "  id:         %s\n", id.ID)
	fmt.Fprintf(w, "  name:       %s\n", id.Name)
	fmt.Fprintf(w, "  gender:     %s\n", id.Gender)
	fmt.Fprintf(w, "  birth date: %s\n", id.BirthDate)
	fmt.Fprintf(w, "  id number:  %s\n", id.IDNumber)
	fmt.Fprintf(w, "  passport:   %s\n", id.PassportNumber)
	if id.DriversLicense != "" {
		fmt.Fprintf(w, "  license:    %s\n", id.DriversLicense)
	}
	fmt.Fprintf(w, "  address:    %s\n", id.Address)
	fmt.Fprintf(w, "  phone:      %s\n", id.Phone)
	fmt.Fprintf(w, "  email:      %s\n", id.Email)
	fmt.Fprintf(w, "  occupation: %s\n", id.Occupation)
	fmt.Fprintf(w, "  education:  %s\n", id.Education)
	fmt.Fprintf(w, "  country:    %s (%s)\n", id.Country, id.Nationality)
	if c := id.CreditCard; c != nil {
		fmt.Fprintf(w, "  card:       %s %s exp %s cvv %s\n", c.Type, c.Number, c.Expiration, c.CVV)
	}
	for _, s := range id.SocialMedia {
		if s.URL != "" {
			fmt.Fprintf(w, "  %-11s %s\n", strings.ToLower(s.Platform)+":", s.URL)
		} else {
			fmt.Fprintf(w, "  %-11s %s\n", strings.ToLower(s.Platform)+":", s.Username)
		}
	}
	if id.AvatarURL != "" {
		fmt.Fprintf(w, "  avatar:     %s\n", id.AvatarURL)
	}
	if id.Favorite {
		fmt.Fprintln(w, "  favorite:   yes")
	}
	if len(id.Tags) > 0 {
		fmt.Fprintf(w, "  tags:       %s\n", strings.Join(id.Tags, ", "))
	}
	if id.Notes != "" {
		fmt.Fprintf(w, "  notes:      %s\n", id.Notes)
	}
}

func (a *App) printRow(id identity.Identity) {
	star := " "
	if id.Favorite {
		star = "*"
	}
	fmt.Fprintf(a.Out, "%s %-36s %-2s %-24s %-32s %s\n",
		star,
		id.ID,
		id.Country,
		id.Name,
		id.Email,
		id.CreatedAt.Format("2006-01-02"),
	)
}
