// Profiling:
// go build ./profile/transforms
// go tool pprof -http=":8000" -nodefraction=0.001 ./transforms cpu.pprof

package main

import (
	"github.com/edwinsyarief/scenery"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/profile"
)

func main() {
	rounds := 20
	frames := 1000
	depth := 7
	fanout := 4
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, frames, depth, fanout)
	p.Stop()
}

func run(rounds, frames, depth, fanout int) {
	for range rounds {
		em := scenery.NewEntityManager(40000)
		transforms := scenery.NewTransform3DList(em)
		root := em.MustCreate()
		if err := transforms.Add(root, scenery.NewTransform3D()); err != nil {
			panic(err)
		}
		leaves := []scenery.Entity{root}
		for range depth {
			var next []scenery.Entity
			for _, parent := range leaves {
				for range fanout {
					if em.Alive() == em.Capacity() {
						break
					}
					child := em.MustCreate()
					t := scenery.NewTransform3D()
					t.Position = mgl32.Vec3{1, 0, 0}
					if err := transforms.AddChild(parent, child, t); err != nil {
						panic(err)
					}
					next = append(next, child)
				}
			}
			leaves = next
		}

		for range frames {
			for _, e := range leaves {
				t, _ := transforms.GetMut(e)
				t.RotateY(0.01)
			}
			if _, err := transforms.UpdateAll(); err != nil {
				panic(err)
			}
		}
	}
}
