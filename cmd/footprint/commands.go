package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jask/footprint/app"
	"github.com/jask/footprint/core"
	"github.com/jask/footprint/internal/dataset"
)

func newSnapshotCmd(e *env) *cobra.Command {
	var (
		width  int
		height int
		chrome bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print one rendered tab and exit",
		Long:  "Renders the start tab (see --tab) once at the given size. Without --chrome only the panel body is printed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 20 || height < 5 {
				return fmt.Errorf("snapshot size %dx%d too small (min 20x5)", width, height)
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			m := app.New(e.data, e.cfg, core.Options{Context: ctx, Logger: e.logger})
			m.SetSize(width, height)
			out := m.RenderBody(width, height)
			if chrome {
				out = m.View()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 100, "render width in columns")
	cmd.Flags().IntVar(&height, "height", 40, "render height in rows")
	cmd.Flags().BoolVar(&chrome, "chrome", false, "include header, status bar and footer")
	return cmd
}

// dump is the YAML document printed by the dump command.
type dump struct {
	Summary dataset.Summary  `yaml:"summary"`
	Dataset *dataset.Dataset `yaml:"dataset,omitempty"`
}

func newDumpCmd(e *env) *cobra.Command {
	var summaryOnly bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the dataset and its derived figures as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := dump{Summary: e.data.Summary()}
			if !summaryOnly {
				doc.Dataset = e.data
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only the derived figures")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Skips config, logger and dataset loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "footprint "+version)
		},
	}
}
