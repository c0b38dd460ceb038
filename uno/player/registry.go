package player

import (
	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/uno/game"
)

// Registry resolves the actor deciding for each seat of one game.
type Registry struct {
	actors *hashmap.HashMap
}

func NewRegistry() *Registry {
	return &Registry{actors: hashmap.New()}
}

func (r *Registry) Register(seat int, actor game.Actor) {
	r.actors.Set(int64(seat), actor)
}

func (r *Registry) Actor(seat int) (game.Actor, bool) {
	if v, ok := r.actors.Get(int64(seat)); ok {
		return v.(game.Actor), true
	}
	return nil, false
}

func (r *Registry) Size() int {
	return int(r.actors.Size())
}
