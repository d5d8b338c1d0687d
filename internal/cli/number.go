package cli

import (
	"fmt"
	"time"

	"github.com/mutekichi/cptoolkit/numtheory"
	"github.com/mutekichi/cptoolkit/primes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newIsPrimeCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "isprime N...",
		Short: "Test each N for primality by trial division",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInt64s(args)
			if err != nil {
				return err
			}
			for _, n := range ns {
				ok := primes.IsPrime(n)
				st.logger.Debug("primality", zap.Int64("n", n), zap.Bool("prime", ok))
				fmt.Fprintf(cmd.OutOrStdout(), "%d %t\n", n, ok)
			}

			return nil
		},
	}
}

func newFactorCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "factor N...",
		Short: "Print the prime factorization of each positive N",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInt64s(args)
			if err != nil {
				return err
			}
			for _, n := range ns {
				start := time.Now()
				fs, err := primes.Factorize(n)
				if err != nil {
					return err
				}
				st.logger.Debug("factorized",
					zap.Int64("n", n),
					zap.Int("distinct_primes", len(fs)),
					zap.Duration("elapsed", time.Since(start)))
				if len(fs) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%d:\n", n)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", n, join(fs))
			}

			return nil
		},
	}
}

func newDivisorsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "divisors N",
		Short: "List the positive divisors of N in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInt64s(args)
			if err != nil {
				return err
			}
			divs, err := primes.Divisors(ns[0])
			if err != nil {
				return err
			}
			st.logger.Debug("divisors", zap.Int64("n", ns[0]), zap.Int("count", len(divs)))
			fmt.Fprintln(cmd.OutOrStdout(), join(divs))

			return nil
		},
	}
}

func newSieveCmd(st *state) *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "sieve N",
		Short: "List the primes up to N with a linear sieve",
		Long: `Build a smallest-prime-factor table for [0, N] and print every prime ≤ N.

With --count only the number of primes is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			s, err := primes.NewSieve(n)
			if err != nil {
				return err
			}
			st.logger.Debug("sieve built",
				zap.Int("limit", s.Limit()),
				zap.Int("primes", s.PrimeCount()),
				zap.Duration("elapsed", time.Since(start)))
			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), s.PrimeCount())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), join(s.Primes()))

			return nil
		},
	}
	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number of primes")

	return cmd
}

func newModPowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "modpow BASE EXP MOD",
		Short: "Compute BASE^EXP mod MOD",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt64s(args)
			if err != nil {
				return err
			}
			r, err := numtheory.ModPow(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			st.logger.Debug("modpow",
				zap.Int64("base", v[0]), zap.Int64("exp", v[1]), zap.Int64("mod", v[2]), zap.Int64("result", r))
			fmt.Fprintln(cmd.OutOrStdout(), r)

			return nil
		},
	}
}

func newExtGCDCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "extgcd A B",
		Short: "Print g x y with A·x + B·y = g = gcd(A, B)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt64s(args)
			if err != nil {
				return err
			}
			g, x, y := numtheory.ExtGCD(v[0], v[1])
			st.logger.Debug("extgcd", zap.Int64("a", v[0]), zap.Int64("b", v[1]), zap.Int64("g", g))
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", g, x, y)

			return nil
		},
	}
}
