// Package prop implements bound accessors ("properties"): struct fields that
// mediate reads and writes of a logical value through one of several storage
// strategies while staying aware of the object that encloses them.
//
// # Capabilities
//
// Readable[T] and Writable[T] are the two capability interfaces; ReadWrite[T]
// is both. Every accessor type in this package implements exactly the
// capabilities it was declared with, so generic code (Format, Fprint,
// AddAssign, ...) is written once against the interface and works for every
// storage strategy.
//
// # Storage strategies
//
//   - Stored: the accessor owns the value.
//   - PointerAlias: read-only view of storage owned elsewhere.
//   - Shared: holds a shared *T handle; lifetime only, no synchronisation.
//   - Value*: no storage; forwards to owner getter/setter functions by value.
//   - Ref*: no storage; the getter returns a *T into the owner and the setter
//     receives an Assignment that decides copy-versus-move once at the call site.
//
// Delegating accessors come as a read-only half (ValueReader, RefReader), a
// write-only half (ValueWriter, RefWriter) and a read-write composition of the
// two (Value, Ref).
//
// # Owner binding
//
// Accessors that call into their owner, or hand it back from Chain, carry a
// Binding. The enclosing constructor binds each such field exactly once:
//
//	p := &Person{}
//	p.Name = prop.NewRef((*Person).getName, (*Person).assignName)
//	prop.BindAll(p, &p.Name)
//
// Binding twice, binding nil, or using a delegating accessor before it is bound
// are invariant violations reported through package assert. Accessors must not
// be copied once bound; a copy still points at the original owner.
//
// Accessors perform no locking. An accessor and its owner belong to one
// goroutine at a time, and binding must finish before the owner is shared.
package prop
