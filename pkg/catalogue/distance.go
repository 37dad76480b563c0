package catalogue

// SetDistance stores the road distance (meter) from -> to in two explicit steps:
//  1. (from, to) = distance, overwriting any previous value of that direction;
//  2. (to, from) = distance only if that direction has never been stored.
//
// Step 2 is a default, not a symmetry guarantee: once both directions are set
// explicitly they can differ.
func (c *Catalogue) SetDistance(from, to StopID, distance int) {
	c.distances[stopPair{from: from, to: to}] = distance

	reverse := stopPair{from: to, to: from}
	if _, ok := c.distances[reverse]; !ok {
		c.distances[reverse] = distance
	}
}

// SetDistanceByName resolves both names before calling SetDistance. false if either is unknown.
func (c *Catalogue) SetDistanceByName(from, to string, distance int) bool {
	fromID, ok := c.stopsByName[from]
	if !ok {
		return false
	}
	toID, ok := c.stopsByName[to]
	if !ok {
		return false
	}
	c.SetDistance(fromID, toID, distance)
	return true
}

// GetDistance returns the stored road distance, or 0 when none was declared.
func (c *Catalogue) GetDistance(from, to StopID) int {
	return c.distances[stopPair{from: from, to: to}]
}

func (c *Catalogue) GetDistanceByName(from, to string) int {
	fromID, ok := c.stopsByName[from]
	if !ok {
		return 0
	}
	toID, ok := c.stopsByName[to]
	if !ok {
		return 0
	}
	return c.GetDistance(fromID, toID)
}
