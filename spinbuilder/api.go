// Package spinbuilder — api.go — thin public entry points: one
// BuildQUSO/BuildPUSO resolves options into a builderConfig and hands it
// to exactly one Constructor closure. Spin problems are assembled whole
// from flat arrays rather than incrementally mutated, so there is one
// constructor per call rather than a variadic chain.
package spinbuilder

import (
	"github.com/katalvlaran/annealcore/puso"
	"github.com/katalvlaran/annealcore/quso"
)

// QUSOConstructor assembles a quso.Problem from the resolved
// builderConfig. Implementations MUST validate parameters early and
// return only sentinel errors (no panics).
type QUSOConstructor func(cfg *builderConfig) (*quso.Problem, error)

// PUSOConstructor is the puso.Problem analogue of QUSOConstructor.
type PUSOConstructor func(cfg *builderConfig) (*puso.Problem, error)

// BuildQUSO resolves opts into a builderConfig and runs cons against it,
// returning the assembled quso.Problem.
func BuildQUSO(cons QUSOConstructor, opts ...BuilderOption) (*quso.Problem, error) {
	cfg := newBuilderConfig(opts...)
	return cons(cfg)
}

// BuildPUSO is the puso.Problem analogue of BuildQUSO.
func BuildPUSO(cons PUSOConstructor, opts ...BuilderOption) (*puso.Problem, error) {
	cfg := newBuilderConfig(opts...)
	return cons(cfg)
}
