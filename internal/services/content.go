package services

import (
	"encoding/json"

	"visionvault_backend/internal/config"
	"visionvault_backend/internal/models"
)

// maxAttachments is the per-document attachment cap, configurable via
// upload.max_files.
func maxAttachments() int {
	if n := config.GetConfig().Upload.MaxFiles; n > 0 {
		return n
	}
	return models.MaxReferencePics
}

// parseKeepList decodes the existingImages form value. A nil value
// means the client did not touch attachments; malformed JSON falls
// back to an empty keep-list, which purges every stored file.
func parseKeepList(raw *string) (keep []string, provided bool) {
	if raw == nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(*raw), &keep); err != nil {
		keep = []string{}
	}
	if keep == nil {
		keep = []string{}
	}
	return keep, true
}

// diffAttachments splits the currently stored filenames into the ones
// to keep (in keep-list order) and the ones to delete from storage.
func diffAttachments(current, keep []string) (kept, removed []string) {
	stored := make(map[string]bool, len(current))
	for _, name := range current {
		stored[name] = true
	}

	kept = make([]string, 0, len(keep))
	for _, name := range keep {
		if stored[name] {
			kept = append(kept, name)
		}
	}

	keepSet := make(map[string]bool, len(kept))
	for _, name := range kept {
		keepSet[name] = true
	}
	for _, name := range current {
		if !keepSet[name] {
			removed = append(removed, name)
		}
	}

	return kept, removed
}
