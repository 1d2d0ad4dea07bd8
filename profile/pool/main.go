// Profiling:
// go build ./profile/pool
// go tool pprof -http=":8000" -nodefraction=0.001 ./pool mem.pprof

package main

import (
	"github.com/edwinsyarief/scenery"
	"github.com/pkg/profile"
)

type record struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	records := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, records)
	p.Stop()
}

func run(rounds, iters, numRecords int) {
	for range rounds {
		pool := scenery.NewPool[record](numRecords)
		handles := make([]scenery.Handle[record], 0, numRecords)
		for range iters {
			for i := range numRecords {
				handles = append(handles, pool.Add(record{V: int64(i)}))
			}
			for _, r := range pool.All() {
				r.W += r.V
			}
			for _, h := range handles {
				pool.Remove(h)
			}
			handles = handles[:0]
		}
	}
}
