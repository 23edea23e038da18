package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/internal/tensor"
)

// matmulBench describes one benchmark run of [batch, size, size] @ [batch, size, size].
type matmulBench struct {
	Size  int
	Batch int
	DType string
}

func newBenchCmd(cfg *config.Config) *cobra.Command {
	bench := &cobra.Command{
		Use:   "bench",
		Short: "Measure kernel throughput",
	}

	var mb matmulBench
	matmul := &cobra.Command{
		Use:   "matmul",
		Short: "Time one batched square matmul",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatMulBench(cmd.OutOrStdout(), *cfg, mb)
		},
	}
	matmul.Flags().IntVar(&mb.Size, "size", 256, "matrix side length")
	matmul.Flags().IntVar(&mb.Batch, "batch", 1, "number of matrices")
	matmul.Flags().StringVar(&mb.DType, "dtype", "float32", "element type: float32, float64 or int32")

	bench.AddCommand(matmul)
	return bench
}

func runMatMulBench(w io.Writer, cfg config.Config, mb matmulBench) error {
	if mb.Size <= 0 || mb.Batch <= 0 {
		return errors.Errorf("bench matmul: size and batch must be positive, got %d and %d", mb.Size, mb.Batch)
	}
	switch mb.DType {
	case "float32":
		return benchMatMul[float32](w, cfg, mb)
	case "float64":
		return benchMatMul[float64](w, cfg, mb)
	case "int32":
		return benchMatMul[int32](w, cfg, mb)
	default:
		return errors.Errorf("bench matmul: unsupported dtype %q", mb.DType)
	}
}

func benchMatMul[E element.Numeric](w io.Writer, cfg config.Config, mb matmulBench) error {
	backend := cpu.New[E](cpu.WithConfig(cfg))
	shape := tensor.Shape{mb.Batch, mb.Size, mb.Size}
	dist := random.Uniform(-1, 1)
	if !element.KindOf[E]().IsFloat() {
		dist = random.Uniform(-8, 8)
	}

	lhs, err := backend.Random(shape, dist)
	if err != nil {
		return errors.WithMessage(err, "bench matmul")
	}
	rhs, err := backend.Random(shape, dist)
	if err != nil {
		return errors.WithMessage(err, "bench matmul")
	}

	start := time.Now()
	if _, err := backend.MatMul(lhs, rhs); err != nil {
		return errors.WithMessage(err, "bench matmul")
	}
	elapsed := time.Since(start)

	n := float64(mb.Size)
	flops := 2 * n * n * n * float64(mb.Batch)
	bytes := uint64(3 * shape.NumElements() * element.KindOf[E]().Size())

	fmt.Fprintf(w, "matmul %s %d×[%d,%d]@[%d,%d] blas=%t: %v, %s, %s moved\n",
		element.KindOf[E](), mb.Batch, mb.Size, mb.Size, mb.Size, mb.Size, cfg.MatMul.UseBLAS,
		elapsed.Round(time.Microsecond),
		humanize.SIWithDigits(flops/max(elapsed.Seconds(), 1e-9), 2, "FLOP/s"),
		humanize.Bytes(bytes))
	return nil
}
