package packs

import (
	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/logging"
)

// Select returns the named packs in the order given. No names selects all.
func Select(all []Pack, names []string) ([]Pack, error) {
	logger := logging.GetLogger("packs.selection")

	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Pack, len(all))
	for _, pack := range all {
		byName[pack.name] = pack
	}

	var selected []Pack
	var notFound []string
	for _, name := range names {
		if pack, ok := byName[name]; ok {
			selected = append(selected, pack)
			logger.Trace().Str("name", name).Msg("Selected pack")
		} else {
			notFound = append(notFound, name)
		}
	}

	if len(notFound) > 0 {
		return nil, errors.New(errors.ErrNotFound, "pack(s) not found").
			WithDetail("notFound", notFound).
			WithDetail("available", Names(all))
	}

	logger.Debug().
		Int("selected", len(selected)).
		Int("total", len(all)).
		Msg("Selected packs")
	return selected, nil
}
