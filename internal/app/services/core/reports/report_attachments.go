package reports

import "github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"

// mergeAttachments appends uploaded to existing, skipping any upload whose display
// name already exists in the collection, then drops the entries named in remove.
// It returns the merged collection and the refs that are no longer referenced:
// skipped uploads plus removed entries.
func mergeAttachments(existing, uploaded []models.AttachmentRef, remove []string) (merged, discarded []models.AttachmentRef) {
	removeSet := make(map[string]struct{}, len(remove))
	for _, name := range remove {
		removeSet[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(existing)+len(uploaded))
	merged = make([]models.AttachmentRef, 0, len(existing)+len(uploaded))

	for _, ref := range existing {
		if _, ok := removeSet[ref.Name]; ok {
			discarded = append(discarded, ref)
			continue
		}
		seen[ref.Name] = struct{}{}
		merged = append(merged, ref)
	}

	for _, ref := range uploaded {
		if _, ok := seen[ref.Name]; ok {
			discarded = append(discarded, ref)
			continue
		}
		seen[ref.Name] = struct{}{}
		merged = append(merged, ref)
	}

	return merged, discarded
}

// dedupeByName keeps the first ref for each display name.
func dedupeByName(refs []models.AttachmentRef) (kept, duplicates []models.AttachmentRef) {
	return mergeAttachments(nil, refs, nil)
}

// joinAttachments concatenates into a fresh slice so neither input is aliased.
func joinAttachments(groups ...[]models.AttachmentRef) []models.AttachmentRef {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	joined := make([]models.AttachmentRef, 0, total)
	for _, group := range groups {
		joined = append(joined, group...)
	}
	return joined
}

func attachmentIDs(refs []models.AttachmentRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
