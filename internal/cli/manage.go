package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
	"github.com/zarlcorp/zident/internal/store"
)

func (a *App) listCmd() *cobra.Command {
	var (
		country   string
		favorites bool
		tag       string
		query     string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved identities",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			f := store.Filter{Favorites: favorites, Tag: tag, Query: query}
			if country != "" {
				code, ok := registry.ParseCode(country)
				if !ok {
					return fmt.Errorf("unsupported country %q", country)
				}
				f.Country = code
			}

			return a.withStore(func(s *store.Store) error {
				ids, err := s.List(f)
				if err != nil {
					return err
				}

				if asJSON {
					if ids == nil {
						ids = []identity.Identity{}
					}
					return a.printJSON(ids)
				}
				if len(ids) == 0 {
					fmt.Fprintln(a.Out, "no saved identities")
					return nil
				}
				for _, id := range ids {
					a.printRow(id)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&country, "country", "c", "", "only this country")
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "only favorites")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "only identities with this tag")
	cmd.Flags().StringVarP(&query, "query", "q", "", "match name or email")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (a *App) showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withStore(func(s *store.Store) error {
				id, err := s.Get(args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return a.printJSON(id)
				}
				a.printIdentity(id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (a *App) forgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <id>",
		Short: "Delete a saved identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withStore(func(s *store.Store) error {
				if err := s.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(a.Out, "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func (a *App) favoriteCmd() *cobra.Command {
	var unset bool
	cmd := &cobra.Command{
		Use:   "favorite <id>",
		Short: "Mark a saved identity as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withStore(func(s *store.Store) error {
				id, err := s.SetFavorite(args[0], !unset)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.Out, "%s favorite: %t\n", id.ID, id.Favorite)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&unset, "unset", false, "clear the favorite flag")
	return cmd
}

func (a *App) tagCmd() *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:   "tag <id> <tag>...",
		Short: "Add or remove tags on a saved identity",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withStore(func(s *store.Store) error {
				update := s.AddTags
				if remove {
					update = s.RemoveTags
				}
				id, err := update(args[0], args[1:]...)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.Out, "%s tags: %s\n", id.ID, strings.Join(id.Tags, ", "))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the tags instead")
	return cmd
}

func (a *App) noteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <id> [text...]",
		Short: "Set the notes of a saved identity; no text clears them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withStore(func(s *store.Store) error {
				id, err := s.SetNotes(args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				if id.Notes == "" {
					fmt.Fprintf(a.Out, "%s notes cleared\n", id.ID)
				} else {
					fmt.Fprintf(a.Out, "%s notes: %s\n", id.ID, id.Notes)
				}
				return nil
			})
		},
	}
}

func (a *App) countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries [code]",
		Short: "List supported countries, or the regions of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, code := range registry.Codes() {
					c := registry.Lookup(code)
					fmt.Fprintf(a.Out, "  %-2s  %-16s %-14s %d regions\n", c.Code, c.Name, c.Nationality, len(c.RegionList()))
				}
				return nil
			}

			code, ok := registry.ParseCode(args[0])
			if !ok {
				return fmt.Errorf("unsupported country %q", args[0])
			}
			for _, r := range registry.Lookup(code).RegionList() {
				if r.Latin != "" && r.Latin != r.Name {
					fmt.Fprintf(a.Out, "  %-4s %s (%s)\n", r.Code, r.Name, r.Latin)
				} else {
					fmt.Fprintf(a.Out, "  %-4s %s\n", r.Code, r.Name)
				}
			}
			return nil
		},
	}
}

func (a *App) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check identities in JSON form against their country's formats",
		Long: "Reads one identity or an array of identities from file, or stdin when\n" +
			"no file is given, and reports every field that does not match the\n" +
			"formats of its country.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r := a.In
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			ids, err := decodeIdentities(r)
			if err != nil {
				return err
			}

			var bad int
			for _, id := range ids {
				if err := identity.Validate(id); err != nil {
					bad++
					fmt.Fprintf(a.Out, "%s: %s\n", id.ID, strings.ReplaceAll(err.Error(), "\n", "; "))
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d identities invalid", bad, len(ids))
			}
			fmt.Fprintf(a.Out, "%d identities valid\n", len(ids))
			return nil
		},
	}
}

// decodeIdentities accepts a single JSON object or an array of them.
func decodeIdentities(r io.Reader) ([]identity.Identity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read identities: %w", err)
	}
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, errors.New("no identities to validate")
	}

	if data[0] == '[' {
		var ids []identity.Identity
		if err := json.Unmarshal(data, &ids); err != nil {
			return nil, fmt.Errorf("decode identities: %w", err)
		}
		return ids, nil
	}

	var id identity.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	return []identity.Identity{id}, nil
}
