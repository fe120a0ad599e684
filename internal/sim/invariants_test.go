package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/splitsim/internal/engine"
	"github.com/san-kum/splitsim/internal/sim"
)

var _ = Describe("Runner", func() {
	var (
		params engine.Params
		world  *engine.World
		runner *sim.Runner
	)

	BeforeEach(func() {
		params = engine.DefaultParams()
		world = engine.NewWorld(params, 42)
		world.SpawnInitial()
		runner = sim.New(world)
	})

	Describe("long runs", func() {
		It("keeps every ball inside the boundary circle", func() {
			_, err := runner.Run(context.Background(), sim.Config{Ticks: 1200})
			Expect(err).NotTo(HaveOccurred())

			for _, b := range world.Snapshot() {
				dist := math.Hypot(b.X-params.CenterX, b.Y-params.CenterY)
				Expect(dist + b.Radius).To(BeNumerically("<=", params.BoundaryRadius+1.0))
			}
		})

		It("keeps the ball count consistent with the split total", func() {
			result, err := runner.Run(context.Background(), sim.Config{Ticks: 1200})
			Expect(err).NotTo(HaveOccurred())

			Expect(result.FinalCount).To(Equal(1 + world.TotalSplits()))
		})

		It("produces a monotonically non-decreasing split series", func() {
			result, err := runner.Run(context.Background(), sim.Config{Ticks: 600})
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < len(result.Splits); i++ {
				Expect(result.Splits[i]).To(BeNumerically(">=", result.Splits[i-1]))
			}
		})
	})

	Describe("determinism", func() {
		It("reproduces the same series for the same seed", func() {
			a, err := runner.Run(context.Background(), sim.Config{Ticks: 400})
			Expect(err).NotTo(HaveOccurred())

			other := engine.NewWorld(params, 42)
			other.SpawnInitial()
			b, err := sim.New(other).Run(context.Background(), sim.Config{Ticks: 400})
			Expect(err).NotTo(HaveOccurred())

			Expect(b.Counts).To(Equal(a.Counts))
			Expect(b.Energy).To(Equal(a.Energy))
		})
	})

	Describe("cancellation", func() {
		It("returns the partial series with the context error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			result, err := runner.Run(ctx, sim.Config{Ticks: 1000})
			Expect(err).To(MatchError(context.Canceled))
			Expect(result).NotTo(BeNil())
			Expect(len(result.Ticks)).To(BeNumerically("<", 1000))
		})
	})
})
