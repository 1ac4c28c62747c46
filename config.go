package stash

// Config holds global tunables for pool allocation
var Config config = config{
	initialDenseCapacity: 64,
}

type config struct {
	initialDenseCapacity int
}

// SetInitialDenseCapacity sets the starting capacity of the dense layers
// for pools created afterwards
func (c *config) SetInitialDenseCapacity(n int) {
	if n < 0 {
		n = 0
	}
	c.initialDenseCapacity = n
}
