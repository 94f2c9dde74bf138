// Profiling:
// go build ./profile/insert
// go tool pprof -http=":8000" -nodefraction=0.001 ./insert mem.pprof

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
	rounds := 50
	iters := 10000
	values := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, values)
	p.Stop()
}

func run(rounds, iters, numValues int) {
	for range rounds {
		arena := genarena.New[payload](genarena.WithCapacity(numValues))
		for range iters {
			entities := make([]genarena.Entity, 0, numValues)
			for i := range numValues {
				entities = append(entities, arena.Insert(payload{V: int64(i)}))
			}
			for _, e := range entities {
				arena.Remove(e)
			}
		}
	}
}
