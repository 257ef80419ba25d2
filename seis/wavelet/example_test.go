package wavelet_test

import (
	"fmt"

	"github.com/cwbudde/algo-seis/seis/wavelet"
)

func ExampleTimeAxis() {
	t, err := wavelet.TimeAxis(0.004, 0.001, wavelet.AxisSymmetric)
	if err != nil {
		panic(err)
	}
	fmt.Println(t)

	// Output:
	// [-0.002 -0.001 0 0.001 0.002]
}

func ExampleGenerator_Generate() {
	w, err := wavelet.NewGenerator().Generate()
	if err != nil {
		panic(err)
	}
	amp, at := w.PeakAmplitude()
	fmt.Printf("%d samples, peak %.1f at t=%.3f s\n", w.Len(), amp, at)

	// Output:
	// 265 samples, peak 1.0 at t=0.000 s
}
