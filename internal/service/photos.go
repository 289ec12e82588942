package service

import "github.com/google/uuid"

// selectPhotos returns the ids and filenames of the rows in existing whose id
// is listed in requested, each at most once. Ids of other aggregates are
// ignored. key extracts a row's id and stored filename.
func selectPhotos[P any](existing []P, requested []uuid.UUID, key func(P) (uuid.UUID, string)) ([]uuid.UUID, []string) {
	if len(requested) == 0 {
		return nil, nil
	}
	wanted := make(map[uuid.UUID]bool, len(requested))
	for _, id := range requested {
		wanted[id] = true
	}

	var ids []uuid.UUID
	var names []string
	for _, p := range existing {
		id, name := key(p)
		if wanted[id] {
			ids = append(ids, id)
			names = append(names, name)
		}
	}
	return ids, names
}
