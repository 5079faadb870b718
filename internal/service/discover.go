package service

import (
	"context"
	"fmt"
	"net/http"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/transport"
)

// Discovery parameterizes CreateOrDiscover for one entity type.
type Discovery[T any] struct {
	// Entity names the items in logs and metrics, e.g. "motor_model".
	Entity string
	// Create posts one item.
	Create func(ctx context.Context, item T) (transport.Result, error)
	// List fetches the existing collection.
	List func(ctx context.Context) (transport.Result, error)
	// IsDuplicate recognizes an "already exists" rejection. Defaults to IsDuplicate.
	IsDuplicate func(res transport.Result) bool
	// Label renders an item for logs.
	Label func(item T) string
}

// CreateOrDiscover creates every item and keeps those answered with 201.
// When none was created it falls back to listing the collection and uses
// that as the working set. Item failures are logged and skipped; the error
// is non-nil only for cancellation or a failed discovery call.
func CreateOrDiscover[T any](ctx context.Context, log *logger.Logger, d Discovery[T], items []T) ([]T, Outcome, error) {
	if log == nil {
		log = logger.Nop()
	}
	isDup := d.IsDuplicate
	if isDup == nil {
		isDup = IsDuplicate
	}
	label := d.Label
	if label == nil {
		label = func(item T) string { return fmt.Sprintf("%v", item) }
	}

	var (
		working []T
		out     Outcome
	)
	for _, item := range items {
		res, err := d.Create(ctx, item)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return working, out, ctxErr
			}
			out.Failed++
			log.Errorw(d.Entity+"_create_failed", "item", label(item), "err", err)
			continue
		}

		switch {
		case res.Status == http.StatusCreated:
			var created T
			if err := res.Decode(&created); err != nil {
				out.Failed++
				log.Errorw(d.Entity+"_decode_failed", "item", label(item), "body", res.String(), "err", err)
				continue
			}
			working = append(working, created)
			out.Created++
			log.Infow(d.Entity+"_created", "item", label(created))
		case isDup(res):
			out.Duplicates++
			log.Infow(d.Entity+"_already_exists", "item", label(item), "status", res.Status)
		default:
			out.Failed++
			log.Errorw(d.Entity+"_create_rejected", "item", label(item), "status", res.Status, "body", res.String())
		}
	}

	if len(working) > 0 {
		return working, out, nil
	}

	log.Infow(d.Entity+"_none_created_checking_existing", "attempted", len(items))
	res, err := d.List(ctx)
	if err != nil {
		return nil, out, fmt.Errorf("discover %s: %w", d.Entity, err)
	}
	if !res.OK() {
		log.Errorw(d.Entity+"_discover_rejected", "status", res.Status, "body", res.String())
	}
	working, skipped := transport.DecodeList[T](res)
	if skipped > 0 {
		log.Warnw(d.Entity+"_discover_skipped_malformed", "count", skipped)
	}
	out.Discovered = len(working)
	log.Infow(d.Entity+"_discovered", "count", len(working))
	return working, out, nil
}
