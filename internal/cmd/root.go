package cmd

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "integra",
	Short: "Numerical integration toolbox",
	Long: `Integra evaluates definite integrals and prints Gauss quadrature
rules from the command line.

Gauss families (laguerre, hermite, chebyshev1, chebyshev2, legendre)
build their nodes by solving the tridiagonal Jacobi eigenproblem;
the grid methods (rectangle, trapezoid, simpson, newton38, romberg,
adaptive) sample the integrand directly.`,
}

var verbose bool

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}
