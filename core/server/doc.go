// Package server provides the HTTP edge of the route-tree engine: a
// graceful-lifecycle wrapper around http.Server and an Adapter that
// converts net/http requests into the transport-independent form, runs
// them through the matched filter chain and writes the result.
//
// Typical wiring:
//
//	b := api.NewBuilder[*Components]()
//	b.Get("/users/{id}", getUser)
//	spec, err := b.Build()
//	if err != nil {
//		return err
//	}
//
//	rt, err := router.New(spec)
//	if err != nil {
//		return err
//	}
//
//	adapter := server.NewAdapter(rt, components,
//		server.WithStaticFiles[*Components](files),
//	)
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return srv.Start(ctx, adapter)
package server
