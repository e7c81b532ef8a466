package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/advslider/internal/export"
	"github.com/piwi3910/advslider/internal/model"
)

type exportOptions struct {
	out    string
	format string
}

var exporters = map[string]func(string, []model.SliderPreset) error{
	"pdf":   export.ExportPDF,
	"cards": export.ExportCards,
	"xlsx":  export.ExportXLSX,
	"dxf":   export.ExportDXF,
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the sliders to PDF, spreadsheet or DXF",
		Long: `Render every configured slider and write it to --out. The format
follows the file extension unless --format is given; "cards" writes
printable preset cards with QR codes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.out, opts.format)
			if err != nil {
				return err
			}
			s, err := loadSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := exporters[format](opts.out, s.config.Sliders); err != nil {
				s.log.Error(err, "export failed")
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d sliders to %s\n", len(s.config.Sliders), opts.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: pdf, cards, xlsx or dxf")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// resolveFormat picks the exporter from an explicit format or the output
// file's extension.
func resolveFormat(out, format string) (string, error) {
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("output file is required")
	}
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	format = strings.ToLower(format)
	if _, ok := exporters[format]; !ok {
		return "", fmt.Errorf("unsupported export format %q (want pdf, cards, xlsx or dxf)", format)
	}
	return format, nil
}
