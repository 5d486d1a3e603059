package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep/v2"
)

// synthesize returns an endless noise stream standing in for a channel that
// has no sound file.
func synthesize(name string, rng *rand.Rand) beep.Streamer {
	switch name {
	case "rain":
		return rain(rng)
	case "water":
		return pink(rng)
	case "birds":
		return birds(rng)
	case "forest":
		return forest(rng)
	default:
		return brown(rng)
	}
}

func white(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

func fill(samples [][2]float64, next func() float64) (int, bool) {
	for i := range samples {
		v := next()
		samples[i][0] = v
		samples[i][1] = v
	}

	return len(samples), true
}

func brownSource(rng *rand.Rand) func() float64 {
	var last float64

	return func() float64 {
		last = (last + 0.02*white(rng)) / 1.02
		return last * 3.5
	}
}

func brown(rng *rand.Rand) beep.Streamer {
	next := brownSource(rng)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		return fill(samples, next)
	})
}

func rain(rng *rand.Rand) beep.Streamer {
	var last float64

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		return fill(samples, func() float64 {
			last = 0.6*last + 0.4*white(rng)
			return last * 0.5
		})
	})
}

// pink uses Paul Kellet's economy filter.
func pink(rng *rand.Rand) beep.Streamer {
	var b0, b1, b2 float64

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		return fill(samples, func() float64 {
			w := white(rng)
			b0 = 0.99765*b0 + w*0.0990460
			b1 = 0.96300*b1 + w*0.2965164
			b2 = 0.57000*b2 + w*1.0526913

			return (b0 + b1 + b2 + w*0.1848) * 0.1
		})
	})
}

// forest is brown noise swelling and receding like wind through leaves.
func forest(rng *rand.Rand) beep.Streamer {
	next := brownSource(rng)
	phase := 0.0
	step := 2 * math.Pi * 0.1 / float64(SampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		return fill(samples, func() float64 {
			phase += step
			return next() * (0.6 + 0.4*math.Sin(phase))
		})
	})
}

// birds plays short rising chirps at random intervals over a quiet bed of
// brown noise.
func birds(rng *rand.Rand) beep.Streamer {
	bed := brownSource(rng)
	sr := float64(SampleRate)

	var (
		gap   = int(sr)
		chirp int
		freq  float64
		phase float64
	)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		return fill(samples, func() float64 {
			v := bed() * 0.2

			switch {
			case chirp > 0:
				chirp--
				freq *= 1.00004
				phase += 2 * math.Pi * freq / sr
				v += math.Sin(phase) * 0.3
			case gap > 0:
				gap--
			default:
				chirp = int(sr * (0.05 + rng.Float64()*0.1))
				gap = int(sr * (0.3 + rng.Float64()*1.5))
				freq = 2500 + rng.Float64()*2000
			}

			return v
		})
	})
}
