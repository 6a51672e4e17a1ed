package simple

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/trellisdev/trellis/core/api"
	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/response"
	"github.com/trellisdev/trellis/middleware"
)

// AuthBearer marks routes that require a bearer token.
const AuthBearer api.Auth = "bearer"

// declareRoutes registers the demo API surface.
func declareRoutes(b *api.Builder[*Components], cfg Config) {
	b.Use(
		middleware.Recovery[*Components](),
		middleware.RequestID[*Components](),
		requireBearer,
	)

	b.Get("/health", func(_ *Components, _ *handler.Request) any {
		return map[string]string{"status": "ok", "app": cfg.AppName}
	})

	b.Path("/users", func(b *api.Builder[*Components]) {
		b.CORS(func(b *api.Builder[*Components]) {
			b.Get("/", listUsers)
			b.Get("/{id}", getUser)
			b.Post("/", createUser)
			b.Update("/{id}", updateUser)
			b.Delete("/{id}", deleteUser)
		})
	})

	b.Auth(AuthBearer, func(b *api.Builder[*Components]) {
		b.Get("/admin/stats", adminStats)
	})

	b.StaticFiles("/assets", api.WithIndexFile("index.html"))
}

// requireBearer rejects admin calls without an Authorization header. Token
// verification is out of scope for the demo.
var requireBearer = filter.Must("/admin/*", func(c *Components, req *handler.Request, next handler.HandlerFunc[*Components]) any {
	if req.Header("Authorization") == "" {
		return handler.ErrUnauthorized
	}
	return next(c, req)
})

func listUsers(c *Components, _ *handler.Request) any {
	return c.Users.List()
}

func getUser(c *Components, req *handler.Request) any {
	u, ok := c.Users.Get(req.Param("id"))
	if !ok {
		return handler.ErrNotFound.WithMessage("user not found")
	}
	return u
}

func createUser(c *Components, req *handler.Request) any {
	body, ok := req.Body.(map[string]any)
	if !ok {
		return handler.ErrBadRequest.WithMessage("expected a JSON object")
	}
	name, _ := body["name"].(string)
	if name == "" {
		return handler.ErrUnprocessableEntity.WithMessage("name is required")
	}

	u := User{ID: uuid.NewString(), Name: name}
	c.Users.Put(u)
	return response.Created(u)
}

func updateUser(c *Components, req *handler.Request) any {
	u, ok := c.Users.Get(req.Param("id"))
	if !ok {
		return handler.ErrNotFound.WithMessage("user not found")
	}
	body, ok := req.Body.(map[string]any)
	if !ok {
		return handler.ErrBadRequest.WithMessage("expected a JSON object")
	}
	if name, _ := body["name"].(string); name != "" {
		u.Name = name
	}
	c.Users.Put(u)
	return u
}

func deleteUser(c *Components, req *handler.Request) any {
	if !c.Users.Delete(req.Param("id")) {
		return handler.ErrNotFound.WithMessage("user not found")
	}
	return response.Status(http.StatusNoContent)
}

func adminStats(c *Components, _ *handler.Request) any {
	return map[string]int{"users": len(c.Users.List())}
}
