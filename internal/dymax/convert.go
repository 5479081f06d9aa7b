package dymax

import "sync"

type memoKey struct {
	lng, lat float64
	withLCD  bool
}

type memoEntry struct {
	point Point
	lcd   int
}

// Converter runs the full lon/lat → map-plane pipeline behind an
// unbounded memo cache. Results are pure functions of the immutable
// geometry, so entries are never invalidated. Safe for concurrent use.
type Converter struct {
	table *Table

	mu    sync.RWMutex
	cache map[memoKey]memoEntry
}

// NewConverter creates a Converter with an empty cache over table.
func NewConverter(table *Table) *Converter {
	return &Converter{
		table: table,
		cache: make(map[memoKey]memoEntry),
	}
}

// Convert maps geographic degrees onto the unfolded map plane.
func (c *Converter) Convert(lng, lat float64) Point {
	return c.getOrCompute(memoKey{lng: lng, lat: lat}).point
}

// ConvertLCD is Convert plus the LCD triangle the point landed in.
func (c *Converter) ConvertLCD(lng, lat float64) (Point, int) {
	e := c.getOrCompute(memoKey{lng: lng, lat: lat, withLCD: true})
	return e.point, e.lcd
}

// CacheSize returns the number of memoized conversions.
func (c *Converter) CacheSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func (c *Converter) getOrCompute(key memoKey) memoEntry {
	c.mu.RLock()
	e, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return e
	}

	theta, phi := LonLatToSpherical(key.lng, key.lat)
	xyz := SphericalToCartesian(theta, phi)
	face, lcd := c.table.Locate(xyz)
	e = memoEntry{point: c.table.Project(face, lcd, xyz), lcd: lcd}

	// Concurrent misses compute the same value; last write wins.
	c.mu.Lock()
	c.cache[key] = e
	c.mu.Unlock()
	return e
}
