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

// createNodes performs the first pass, adding one node per definition. A
// failed definition is recorded and skipped.
func createNodes(ctx context.Context, model *config.Model, ts topologystore.Store) (map[string]nodeid.ID, *multierror.Error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting node creation pass.")

	var errs *multierror.Error
	ids := make(map[string]nodeid.ID, len(model.Nodes))
	for _, d := range model.Nodes {
		if _, exists := ids[d.Label]; exists {
			errs = multierror.Append(errs, fmt.Errorf("node %s: duplicate definition", d.Where()))
			continue
		}
		kind := d.ResolvedKind()
		id, err := ts.AddNode(ctx, d.Label, kind)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("node %s: %w", d.Where(), err))
			continue
		}
		ids[d.Label] = id
		logger.Debug("Created node.", "label", d.Label, "kind", kind.String(), "id", id.String())
	}
	return ids, errs
}
