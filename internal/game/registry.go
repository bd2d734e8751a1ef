package game

// Registry owns the live entity collections. The Remove*At helpers splice by
// index, so callers that remove while iterating must walk backwards: any
// index below the one just removed stays valid.
type Registry struct {
	Bullets   []*Bullet
	Hogs      []*Hog
	Children  []*Child
	Obstacles []*Obstacle

	nextID int
}

// NewRegistry returns an empty registry. IDs start at 1 so that 0 can mean
// "no entity".
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

func (r *Registry) allocID() int {
	id := r.nextID
	r.nextID++
	return id
}

// AddHog assigns an ID and appends the hog.
func (r *Registry) AddHog(h *Hog) *Hog {
	h.ID = r.allocID()
	r.Hogs = append(r.Hogs, h)
	return h
}

// AddChild assigns an ID and appends the child.
func (r *Registry) AddChild(c *Child) *Child {
	c.ID = r.allocID()
	r.Children = append(r.Children, c)
	return c
}

// AddObstacle assigns an ID and appends the obstacle.
func (r *Registry) AddObstacle(o *Obstacle) *Obstacle {
	o.ID = r.allocID()
	r.Obstacles = append(r.Obstacles, o)
	return o
}

// AddBullet appends a bullet. Bullets are anonymous.
func (r *Registry) AddBullet(b *Bullet) *Bullet {
	r.Bullets = append(r.Bullets, b)
	return b
}

// RemoveHogAt splices out the hog at index i and returns it.
func (r *Registry) RemoveHogAt(i int) *Hog {
	h := r.Hogs[i]
	copy(r.Hogs[i:], r.Hogs[i+1:])
	r.Hogs[len(r.Hogs)-1] = nil
	r.Hogs = r.Hogs[:len(r.Hogs)-1]
	return h
}

// RemoveChildAt splices out the child at index i and returns it.
func (r *Registry) RemoveChildAt(i int) *Child {
	c := r.Children[i]
	copy(r.Children[i:], r.Children[i+1:])
	r.Children[len(r.Children)-1] = nil
	r.Children = r.Children[:len(r.Children)-1]
	return c
}

// RemoveBulletAt splices out the bullet at index i and returns it.
func (r *Registry) RemoveBulletAt(i int) *Bullet {
	b := r.Bullets[i]
	copy(r.Bullets[i:], r.Bullets[i+1:])
	r.Bullets[len(r.Bullets)-1] = nil
	r.Bullets = r.Bullets[:len(r.Bullets)-1]
	return b
}

// RemoveHog removes a hog by identity. It reports false if the hog is gone.
func (r *Registry) RemoveHog(h *Hog) bool {
	for i := len(r.Hogs) - 1; i >= 0; i-- {
		if r.Hogs[i] == h {
			r.RemoveHogAt(i)
			return true
		}
	}
	return false
}

// ChildByID resolves a child reference. A nil result means the child has
// been removed and the reference is stale.
func (r *Registry) ChildByID(id int) *Child {
	if id == 0 {
		return nil
	}
	for _, c := range r.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// HogByID resolves a hog reference.
func (r *Registry) HogByID(id int) *Hog {
	if id == 0 {
		return nil
	}
	for _, h := range r.Hogs {
		if h.ID == id {
			return h
		}
	}
	return nil
}
