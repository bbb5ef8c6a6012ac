package builder

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/topologystore"
)

// linkNodes performs the second pass, resolving each branch's child labels
// to IDs and linking them.
func linkNodes(ctx context.Context, model *config.Model, ts topologystore.Store, ids map[string]nodeid.ID) *multierror.Error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting node linking pass.")

	var errs *multierror.Error
	seen := make(map[string]bool)
	for _, d := range model.Nodes {
		// Only the first definition of a label was created.
		if seen[d.Label] {
			continue
		}
		seen[d.Label] = true
		if d.ResolvedKind() != node.Branch {
			continue
		}
		parent, ok := ids[d.Label]
		if !ok {
			// Creation already failed and was reported.
			continue
		}

		left, lerr := resolve(d, "left", d.Left, ids)
		right, rerr := resolve(d, "right", d.Right, ids)
		if lerr != nil || rerr != nil {
			errs = multierror.Append(errs, lerr, rerr)
			continue
		}

		if err := ts.Link(ctx, parent, left, right); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("node %s: %w", d.Where(), err))
			continue
		}
		logger.Debug("Linked branch.", "label", d.Label, "left", d.Left, "right", d.Right)
	}
	return errs
}

func resolve(d *config.NodeDef, side, label string, ids map[string]nodeid.ID) (nodeid.ID, error) {
	id, ok := ids[label]
	if !ok {
		return nodeid.None, fmt.Errorf("node %s: %s child '%s' is not defined", d.Where(), side, label)
	}
	return id, nil
}
