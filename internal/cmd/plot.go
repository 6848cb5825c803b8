package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a node/weight scatter of a Gauss rule",
	Long: `Render the nodes (x) and weights (y) of a Gauss quadrature rule as a
scatter chart. Useful for eyeballing how the weight mass distributes
across the domain as n grows.

Examples:
  integra plot --rule laguerre -n 64 -o laguerre64.png
  integra plot --rule hermite -n 32 -o hermite32.svg`,
	RunE: runPlot,
}

var (
	plotRule   string
	plotCount  int
	plotOutput string
)

func init() {
	plotCmd.Flags().StringVarP(&plotRule, "rule", "r", "legendre",
		"quadrature family ("+gaussRuleNames()+")")
	plotCmd.Flags().IntVarP(&plotCount, "points", "n", 32, "number of points")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "nodes.png",
		"output file; format by extension (png, svg, pdf, ...)")

	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, _ []string) error {
	rule, err := buildGaussRule(plotRule, plotCount)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, n=%d", plotRule, plotCount)
	p.X.Label.Text = "node"
	p.Y.Label.Text = "weight"

	points := make(plotter.XYs, rule.Len())
	for i := range points {
		points[i].X = rule.Nodes[i]
		points[i].Y = rule.Weights[i]
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotOutput); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	slog.Info("chart written", slog.String("path", plotOutput))

	return nil
}
