package main

import (
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/graph/export"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/graph/render"
	"github.com/spf13/cobra"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram <kind> <key>",
	Short: "Print one projected diagram as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := projectArgs(args)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), d)
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot <kind> <key>",
	Short: "Print one projected diagram as Graphviz DOT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := projectArgs(args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), export.ToDOT(d))
		return err
	},
}

var (
	renderFormat string
	renderOut    string
	dotBin       string
)

var renderCmd = &cobra.Command{
	Use:   "render <kind> <key>",
	Short: "Render one projected diagram with Graphviz",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := projectArgs(args)
		if err != nil {
			return err
		}
		out, err := render.Graphviz{Bin: dotBin}.Render(cmd.Context(), export.ToDOT(d), renderFormat)
		if err != nil {
			return err
		}
		if renderOut == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		return os.WriteFile(renderOut, out, 0o644)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "svg", "output format: svg, png or pdf")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&dotBin, "dot", "dot", "graphviz dot binary")
}

func parseKind(arg string) (domain.ViewKind, error) {
	kind, ok := domain.ParseViewKind(arg)
	if !ok {
		return "", fmt.Errorf("unknown view kind %q (want landscape, context, container or component)", arg)
	}
	return kind, nil
}

func projectArgs(args []string) (*domain.Diagram, error) {
	kind, err := parseKind(args[0])
	if err != nil {
		return nil, err
	}
	svc, err := loadService()
	if err != nil {
		return nil, err
	}
	return svc.Diagram(kind, args[1])
}
