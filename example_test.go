package keepsake_test

import (
	"fmt"

	"github.com/lattice-games/keepsake"
	"github.com/lattice-games/keepsake/ecs"
	"github.com/lattice-games/keepsake/types"
)

type Health struct {
	HP int
}

func (Health) Name() string { return "health" }

type Follows struct {
	Other types.EntityID
}

func (Follows) Name() string { return "follows" }

func (f *Follows) MapEntityRefs(mapper types.RefMapper) error {
	return keepsake.MapRef(&f.Other, mapper)
}

func Example() {
	engine, err := keepsake.NewEngine()
	if err != nil {
		panic(err)
	}
	if err := keepsake.RegisterComponent[Health](engine); err != nil {
		panic(err)
	}
	if err := keepsake.RegisterComponent[Follows](engine); err != nil {
		panic(err)
	}

	world := ecs.NewWorld()
	hero := world.Create()
	_ = world.Set(hero, "health", Health{HP: 20})
	_ = keepsake.Mark(world, hero)

	pet := world.Create()
	_ = world.Set(pet, "follows", Follows{Other: hero})
	_ = keepsake.Mark(world, pet)

	typeList := []string{"health", "follows"}
	snap, err := engine.Save(world, typeList)
	if err != nil {
		panic(err)
	}

	restored := ecs.NewWorld()
	if err := engine.Load(restored, snap, typeList); err != nil {
		panic(err)
	}

	newHero := restored.EntitiesWith("health")[0]
	newPet := restored.EntitiesWith("follows")[0]
	follows, _ := restored.Get(newPet, "follows")
	fmt.Println("pet follows hero:", follows.(Follows).Other == newHero)
	// Output: pet follows hero: true
}
