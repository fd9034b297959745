package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/please-build/arindex"
)

// listCmd prints the members of an archive in the order they are stored, like `ar t`
func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <archive>",
		Short: "List the members of an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(args[0], func(archive *arindex.Archive) error {
				out := cmd.OutOrStdout()
				if !a.cfg.Long {
					for _, m := range archive.Members() {
						fmt.Fprintln(out, m.Name())
					}
					return nil
				}

				rows := make([][]string, 0, len(archive.Members()))
				for _, m := range archive.Members() {
					rows = append(rows, []string{
						permissions(m.Mode()),
						fmt.Sprintf("%d/%d", m.UID(), m.GID()),
						strconv.FormatInt(m.FileSize(), 10),
						m.ModTime().UTC().Format("Jan _2 15:04 2006"),
						m.Name(),
					})
				}
				t := table.New().
					Border(lipgloss.HiddenBorder()).
					Headers("MODE", "UID/GID", "SIZE", "MODIFIED", "NAME").
					Rows(rows...)
				fmt.Fprintln(out, t.Render())
				return nil
			})
		},
	}

	cmd.Flags().BoolP("long", "l", false, "show mode, owner, size and modification time")
	a.v.BindPFlag("long", cmd.Flags().Lookup("long"))

	return cmd
}

// printCmd writes member contents to stdout, like `ar p`
func (a *app) printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <archive> [member...]",
		Short: "Write the contents of members to standard output",
		Long:  "Write the contents of the named members, or of every member if none are named, to standard output.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(args[0], func(archive *arindex.Archive) error {
				members, err := selectMembers(archive, args[1:])
				if err != nil {
					return err
				}
				for _, m := range members {
					if _, err := cmd.OutOrStdout().Write(m.FileData()); err != nil {
						return fmt.Errorf("failed to write %s: %w", m.Name(), err)
					}
				}
				return nil
			})
		},
	}
}

// extractCmd writes members to files in a directory, like `ar x`
func (a *app) extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <archive> [member...]",
		Short: "Extract members into a directory",
		Long:  "Extract the named members, or every member if none are named, into the output directory.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(args[0], func(archive *arindex.Archive) error {
				members, err := selectMembers(archive, args[1:])
				if err != nil {
					return err
				}

				dir := a.cfg.OutputDir
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
				for _, m := range members {
					if err := extract(dir, m); err != nil {
						return err
					}
					a.logger.Info("extracted member", "name", m.Name(), "bytes", m.FileSize())
				}
				return nil
			})
		},
	}

	cmd.Flags().StringP("output-dir", "C", ".", "directory to extract members into")
	a.v.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))

	return cmd
}

// infoCmd summarises an archive
func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <archive>",
		Short: "Summarise an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(args[0], func(archive *arindex.Archive) error {
				var payload int64
				for _, m := range archive.Members() {
					payload += m.FileSize()
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "variant:    %s\n", archive.Variant())
				fmt.Fprintf(out, "size:       %d\n", archive.Size())
				fmt.Fprintf(out, "members:    %d\n", len(archive.Members()))
				fmt.Fprintf(out, "names:      %d\n", len(archive.Files()))
				fmt.Fprintf(out, "duplicates: %d\n", archive.Duplicates())
				fmt.Fprintf(out, "payload:    %d\n", payload)
				return nil
			})
		},
	}
}

// selectMembers returns the named members, or every member in archive order if names is empty.
func selectMembers(archive *arindex.Archive, names []string) ([]*arindex.Member, error) {
	if len(names) == 0 {
		return archive.Members(), nil
	}

	members := make([]*arindex.Member, 0, len(names))
	for _, name := range names {
		m, ok := archive.File(name)
		if !ok {
			return nil, fmt.Errorf("no member named %q", name)
		}
		members = append(members, m)
	}
	return members, nil
}

// extract writes m to dir, refusing names that would land outside it.
func extract(dir string, m *arindex.Member) error {
	name := m.Name()
	if !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) {
		return &arindex.ErrFileName{Name: name, Err: fmt.Errorf("refusing to extract outside %s", dir)}
	}

	mode := fs.FileMode(m.Mode()).Perm()
	if mode == 0 {
		mode = 0o644
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, m.FileData(), mode); err != nil {
		return fmt.Errorf("failed to extract %s: %w", name, err)
	}
	if mtime := m.ModTime(); mtime.Unix() != 0 {
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			return fmt.Errorf("failed to set modification time of %s: %w", name, err)
		}
	}
	return nil
}

// permissions renders the permission bits the way `ar tv` does, e.g. rw-r--r--
func permissions(mode int64) string {
	return fs.FileMode(mode).Perm().String()[1:]
}
