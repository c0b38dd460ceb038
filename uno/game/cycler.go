package game

const (
	left  = -1
	right = 1
)

// Cycler is the turn-order cursor over seat indexes 0..size-1.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

// After returns the seat following seat in the current direction.
func (c *Cycler) After(seat int) int {
	if c.direction == left && seat == 0 {
		return c.size - 1
	}
	return (seat + c.direction) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.After(c.current)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) Clockwise() bool {
	return c.direction == right
}
