package main

import (
	"os"

	"github.com/routewind-dev/routewind/internal/config"
	"github.com/routewind-dev/routewind/pkg/router"
)

// loadProject loads routewind.json and verifies the routes directory.
func loadProject(dir string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if dir != "" {
		cfg, err = config.Load(dir)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureRoutesDir(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// routerOptions translates config fields into build options.
func routerOptions(cfg *config.Config) []router.Option {
	opts := []router.Option{
		router.WithExtension(cfg.Extension),
		router.WithIndexName(cfg.IndexName),
		router.WithMiddlewareMarker(cfg.MiddlewareMarker),
	}
	if len(cfg.MethodAliases) > 0 {
		opts = append(opts, router.WithMethodAliases(cfg.MethodAliases))
	}
	return opts
}

// buildRoutes resolves the project's declarations into a route table.
// No handler registry is attached; the CLI only inspects shapes.
func buildRoutes(cfg *config.Config) ([]router.ResolvedRoute, error) {
	opts := routerOptions(cfg)
	src := router.NewDirSource(os.DirFS(cfg.RoutesPath()), nil, opts...)
	return router.Build(src, opts...)
}
