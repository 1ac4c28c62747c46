// Profiling:
// go build ./profile/pools
// go tool pprof -http=":8000" -nodefraction=0.001 ./pools mem.pprof

package main

import (
	"github.com/TheBitDrifter/stash"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	c1 := stash.FactoryNewComponent[comp1]()
	c2 := stash.FactoryNewComponent[comp2]()

	for range rounds {
		sto := stash.Factory.NewStore()
		sto.ReserveUpTo(stash.Entity(numEntities - 1))
		c1.Register(sto)
		c2.Register(sto)

		for range iters {
			for i := range numEntities {
				e := stash.Entity(i)
				c1.Add(sto, e, comp1{V: 1, W: 2})
				c2.Add(sto, e, comp2{V: 3, W: 4})
			}
			for e, v1 := range c1.All(sto) {
				if v2, ok := c2.Get(sto, e); ok {
					v1.V += v2.V
					v1.W += v2.W
				}
			}
			for i := range numEntities {
				sto.RemoveEntity(stash.Entity(i))
			}
		}
	}
}
