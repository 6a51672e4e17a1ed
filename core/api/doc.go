// Package api holds the declarative API model: routes, filters, auth tags
// and the scoped builder that assembles them.
//
// An API is declared once through a Builder, optionally with nested path,
// auth and cors scopes, then frozen into an immutable Api value by Build:
//
//	b := api.NewBuilder[*Components]()
//	b.Use(middleware.Recovery[*Components]())
//	b.Get("/health", health)
//	b.Path("/v1", func(v1 *api.Builder[*Components]) {
//		v1.Auth(api.Auth("iam"), func(a *api.Builder[*Components]) {
//			a.Get("/users/{id}", getUser)
//		})
//		v1.CORS(func(c *api.Builder[*Components]) {
//			c.Get("/items", listItems)
//		})
//	})
//	b.StaticFiles("/pub", api.WithIndexFile("index.html"))
//	spec, err := b.Build()
//
// Build validates the whole declaration and reports every violation it can
// detect in one error: illegal path grammar, a second static-files
// declaration, or more than one non-default auth tag. Nested auth scopes are
// a programming error and panic at declaration time. Routes declared inside
// a CORS scope without an explicit OPTIONS route get one synthesized, so
// preflight requests resolve like any other route.
package api
