// Package contentstudio provides a high-level façade over the media
// generators and the tool registry. Most applications interact with this
// package by:
//  1. Creating a ContentStudio via New() (optionally overriding the
//     output directory or logger)
//  2. Serving the registry over stdio (server package) or dispatching
//     tools directly (Registry())
//
// All defaults are safe for local use; artifacts land in content_outputs/
// next to the working directory.
package contentstudio

import (
	"github.com/hupe1980/contentstudio/logging"
	"github.com/hupe1980/contentstudio/media"
	"github.com/hupe1980/contentstudio/tool"
)

// Options configures the ContentStudio instance.
type Options struct {
	// OutputDir is the flat directory receiving every generated artifact.
	OutputDir string

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ContentStudio aggregates the artifact store and the tool registry.
type ContentStudio struct {
	store    *media.Store
	registry *tool.Registry
}

// New creates a ContentStudio with every generator tool registered.
func New(optFns ...func(o *Options)) (*ContentStudio, error) {
	opts := Options{
		OutputDir: media.DefaultDir,
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	store, err := media.NewStore(opts.OutputDir, opts.Logger)
	if err != nil {
		return nil, err
	}

	registry := tool.NewRegistry(opts.Logger)
	for _, t := range []tool.Tool{
		media.NewThumbnailTool(store),
		media.NewQRCodeTool(store),
		media.NewSocialCardTool(store),
		media.NewMontageTool(store),
		media.NewSpeechTool(store),
	} {
		registry.Register(t)
	}

	return &ContentStudio{store: store, registry: registry}, nil
}

// Registry exposes the tool registry for dispatch or server wiring.
func (cs *ContentStudio) Registry() *tool.Registry { return cs.registry }

// OutputDir returns the artifact directory.
func (cs *ContentStudio) OutputDir() string { return cs.store.Dir() }
