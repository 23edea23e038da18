package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/internal/tensor"
)

func newDemoCmd(cfg *config.Config) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run random -> matmul -> reductions and print every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := *cfg
			if seed != 0 {
				c.Random.Seed = seed
			}
			return runDemo(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 keeps the configured one)")
	return cmd
}

func runDemo(w io.Writer, cfg config.Config) error {
	backend := cpu.New[float32](cpu.WithConfig(cfg))
	show := func(name string, t *tensor.Tensor[float32]) {
		fmt.Fprintf(w, "%-8s %v = %v\n", name, t.Shape(), t.Values())
	}

	x, err := backend.Random(tensor.Shape{2, 3}, random.Normal(0, 1))
	if err != nil {
		return errors.WithMessage(err, "demo")
	}
	wgt, err := backend.Random(tensor.Shape{3, 4}, random.Uniform(-1, 1))
	if err != nil {
		return errors.WithMessage(err, "demo")
	}
	show("x", x)
	show("w", wgt)

	y, err := backend.MatMul(x, wgt)
	if err != nil {
		return errors.WithMessage(err, "demo")
	}
	show("x@w", y)

	h := backend.Relu(y)
	show("relu", h)

	rows, err := backend.SumDim(h, 1)
	if err != nil {
		return errors.WithMessage(err, "demo")
	}
	show("sum(1)", rows)
	show("mean", backend.Mean(h))

	idx, err := backend.Argmax(y, 1)
	if err != nil {
		return errors.WithMessage(err, "demo")
	}
	fmt.Fprintf(w, "%-8s %v = %v\n", "argmax", idx.Shape(), idx.Values())
	return nil
}
