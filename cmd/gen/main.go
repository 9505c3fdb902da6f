package main

import (
	"safezone/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models into an
// untracked query package.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
