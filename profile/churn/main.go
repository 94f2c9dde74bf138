// Profiling:
// go build ./profile/churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/edwinsyarief/genarena"
)

type payload struct {
	V int64
	W int64
}

func main() {
	iters := 2000
	values := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, values)
	p.Stop()
}

// run churns every third slot each iteration and then walks the arena,
// mixing the recycle path with traversal over a fragmented slot table.
func run(iters, numValues int) {
	arena := genarena.New[payload](genarena.WithCapacity(numValues))
	entities := make([]genarena.Entity, numValues)
	for i := range numValues {
		entities[i] = arena.Insert(payload{V: int64(i)})
	}
	for range iters {
		for i := 0; i < len(entities); i += 3 {
			arena.Remove(entities[i])
		}
		for i := 0; i < len(entities); i += 3 {
			entities[i] = arena.Insert(payload{V: int64(i)})
		}
		var sum int64
		for _, v := range arena.All() {
			sum += v.V
		}
		_ = sum
	}
}
