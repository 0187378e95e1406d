package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"interest-calculator/domain"
	"interest-calculator/logging"
	"interest-calculator/service"
)

type CalculateCmd struct {
	input      domain.RawInput
	projection bool
	output     string
	reporter   *Reporter
}

func NewCalculateCmd(reporter *Reporter) *cobra.Command {
	cc := &CalculateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate compound interest and print the breakdown",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.input.Principal, "principal", "", "Initial principal amount")
	cmd.Flags().StringVar(&cc.input.Rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().StringVar(&cc.input.Years, "years", "", "Time period in years")
	cmd.Flags().StringVar(&cc.input.CompoundFrequency, "frequency", "12", "Compounding periods per year (1, 2, 4, 12, 52, 365)")
	cmd.Flags().StringVar(&cc.input.MonthlyContribution, "monthly", "", "Optional monthly addition")
	cmd.Flags().StringVar(&cc.input.Currency, "currency", "USD", "Display currency (USD, NGN, EUR, GBP)")
	cmd.Flags().BoolVar(&cc.projection, "projection", false, "Include a year-by-year projection")
	cmd.Flags().StringVarP(&cc.output, "output", "o", "text", "Output format: text or json")

	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func (cc *CalculateCmd) run(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(os.Stderr, "warn", "console")
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	calc, err := service.NewInterestService(service.DefaultLimits).Evaluate(ctx, cc.input, cc.projection)
	if err != nil {
		return err
	}

	switch cc.output {
	case "json":
		return cc.reporter.JSON(calc)
	case "text":
		return cc.reporter.Text(calc)
	default:
		return fmt.Errorf("unknown output format %q", cc.output)
	}
}
