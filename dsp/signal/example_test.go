package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-goertzel/dsp/core"
	"github.com/cwbudde/algo-goertzel/dsp/signal"
)

func ExampleGenerator_Tone() {
	g := signal.NewGenerator(core.WithSampleRate(8000))
	x, err := g.Tone(2000, 1, 5)
	if err != nil {
		panic(err)
	}
	for i := range x {
		if math.Abs(x[i]) < 1e-12 {
			x[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleMix() {
	x, err := signal.Mix([]float64{0, 1, 0, -1}, []float64{0.5, 0.5})
	if err != nil {
		panic(err)
	}
	fmt.Println(x)

	// Output:
	// [0.5 1.5 0 -1]
}
