package managers

import (
	"context"

	"bloqnet/internal/core/ports"
	"bloqnet/internal/pkg/errs"
)

func everything[R ports.Record](R) bool { return true }

// findByID reads a single record by its string id. paramName names the
// identifier in the ObjectNotFoundError so callers get "bloqId"/"lockerId"/
// "rentId" rather than a generic "id".
func findByID[R ports.Record](ctx context.Context, table ports.RecordTable[R],
	paramName, id string) (R, error) {
	var zero R
	matches, err := table.Read(ctx, func(r R) bool { return r.RecordID().String() == id })
	if err != nil {
		return zero, err
	}
	if len(matches) == 0 {
		return zero, errs.NewObjectNotFoundError(paramName, id)
	}
	return matches[0], nil
}
