package inbuilt

// Group creates a new router sharing the routes tree with the current one. Every path
// registered through it is prefixed. Middlewares of the parent apply to the group too,
// but adding middlewares to the group doesn't affect the parent.
func (r *Router) Group(prefix string) *Router {
	return &Router{
		root:   r.root,
		parent: r,
		prefix: r.join(prefix),
	}
}
