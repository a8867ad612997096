package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/query"
)

type pos struct{ X, Y int32 }
type vel struct{ VX, VY int32 }

func TestQueryWithWithout(t *testing.T) {
	reg := ecscore.NewRegistry()
	posID := ecscore.Register[pos](reg, "Position")
	velID := ecscore.Register[vel](reg, "Velocity")
	store := ecscore.NewStore(reg)

	static := store.CreateEntity()
	_, _ = store.AddComponent(static, posID, pos{X: 1})

	moving := store.CreateEntity()
	_, _ = store.AddComponent(moving, posID, pos{X: 2})
	_, _ = store.AddComponent(moving, velID, vel{VX: 1})

	q := query.New(store).With(posID).Without(velID).Build()
	var seen []ecscore.Entity
	q.Each(func(e ecscore.Entity) { seen = append(seen, e) })

	assert.Equal(t, []ecscore.Entity{static}, seen)
	assert.Equal(t, 1, q.Count())
}

func TestEach2MutatesInPlace(t *testing.T) {
	reg := ecscore.NewRegistry()
	posID := ecscore.Register[pos](reg, "Position")
	velID := ecscore.Register[vel](reg, "Velocity")
	store := ecscore.NewStore(reg)

	e := store.CreateEntity()
	_, _ = store.AddComponent(e, posID, pos{X: 0, Y: 0})
	_, _ = store.AddComponent(e, velID, vel{VX: 5, VY: 2})

	q := query.New(store).With(posID, velID).Build()
	query.Each2(q, posID, velID, func(_ ecscore.Entity, p *pos, v *vel) {
		p.X += v.VX
		p.Y += v.VY
	})

	got, ok := ecscore.Get[pos](store, e, posID)
	assert.True(t, ok)
	assert.Equal(t, pos{X: 5, Y: 2}, got)
}

func TestWherePredicate(t *testing.T) {
	reg := ecscore.NewRegistry()
	posID := ecscore.Register[pos](reg, "Position")
	store := ecscore.NewStore(reg)

	e1 := store.CreateEntity()
	_, _ = store.AddComponent(e1, posID, pos{X: 1})
	e2 := store.CreateEntity()
	_, _ = store.AddComponent(e2, posID, pos{X: 99})

	q := query.New(store).With(posID).Where(func(s *ecscore.Store, e ecscore.Entity) bool {
		v, _ := ecscore.Get[pos](s, e, posID)
		return v.X > 10
	}).Build()

	assert.Equal(t, 1, q.Count())
}
