// Package cache provides a small generic LRU cache.
//
// Polar axes use it to keep projected gridline paths between draws. Keys
// embed the version of the transform that produced the value, so stale
// entries are never hit and simply age out.
//
//	c := cache.New[key, *plot.Path](256)
//	p := c.GetOrCreate(k, func() *plot.Path { return project(k) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
