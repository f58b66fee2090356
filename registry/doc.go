// Package registry maps unique names to live values so that any part of a
// process can find a value by name.
//
// Types opt in by embedding a Registrable and calling Init with a pointer to
// themselves:
//
//	type Sensor struct {
//		registry.Registrable
//		reading float64
//	}
//
//	s := &Sensor{}
//	s.Init(s, "boiler.temp")
//	defer s.Close()
//
//	h, ok := registry.Default().Find("boiler.temp") // h == s
//
// Names are unique per Registry. Duplicate claims, empty names, and lookups
// through Get of names that must exist are treated as programming errors and
// panic; Find is the non-panicking query. Moving a name claim between values
// (InitFrom, TransferFrom) rewrites the registry entry in place so the name
// never appears unbound to concurrent readers.
package registry
