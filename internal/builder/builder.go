package builder

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/topologystore"
)

// Build validates the model, adds every node to ts and links the branches.
// It returns the ID of the model's root.
func Build(ctx context.Context, model *config.Model, ts topologystore.Store) (nodeid.ID, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting maze construction.")

	if err := model.Validate(); err != nil {
		return nodeid.None, fmt.Errorf("invalid maze definition: %w", err)
	}

	// First pass: create all nodes.
	ids, errs := createNodes(ctx, model, ts)
	logger.Debug("Build: Node creation complete.", "node_count", len(ids))

	// Second pass: link children.
	errs = multierror.Append(errs, linkNodes(ctx, model, ts, ids))
	logger.Debug("Build: Node linking complete.")

	root, ok := ids[model.Root]
	if !ok {
		errs = multierror.Append(errs, fmt.Errorf("root '%s' is not defined", model.Root))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nodeid.None, err
	}

	logger.Info("Build: Maze construction successful.", "nodes", len(ids), "root", model.Root)
	return root, nil
}
