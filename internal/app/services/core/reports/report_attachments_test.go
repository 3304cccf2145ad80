package reports

import (
	"testing"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeAttachments(t *testing.T) {
	existing := []models.AttachmentRef{{ID: "1", Name: "x.pdf"}, {ID: "2", Name: "y.pdf"}}

	tests := []struct {
		name          string
		uploaded      []models.AttachmentRef
		remove        []string
		wantMerged    []models.AttachmentRef
		wantDiscarded []models.AttachmentRef
	}{
		{
			name:          "existing name wins over upload",
			uploaded:      []models.AttachmentRef{{ID: "3", Name: "x.pdf"}, {ID: "4", Name: "z.pdf"}},
			wantMerged:    []models.AttachmentRef{{ID: "1", Name: "x.pdf"}, {ID: "2", Name: "y.pdf"}, {ID: "4", Name: "z.pdf"}},
			wantDiscarded: []models.AttachmentRef{{ID: "3", Name: "x.pdf"}},
		},
		{
			name:          "removal frees the name for a replacement",
			uploaded:      []models.AttachmentRef{{ID: "3", Name: "x.pdf"}},
			remove:        []string{"x.pdf"},
			wantMerged:    []models.AttachmentRef{{ID: "2", Name: "y.pdf"}, {ID: "3", Name: "x.pdf"}},
			wantDiscarded: []models.AttachmentRef{{ID: "1", Name: "x.pdf"}},
		},
		{
			name:       "unknown removal is ignored",
			remove:     []string{"missing.pdf"},
			wantMerged: existing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, discarded := mergeAttachments(existing, tt.uploaded, tt.remove)
			assert.Equal(t, tt.wantMerged, merged)
			assert.Equal(t, tt.wantDiscarded, discarded)
		})
	}
}

func TestDedupeByName(t *testing.T) {
	kept, duplicates := dedupeByName([]models.AttachmentRef{{ID: "1", Name: "a"}, {ID: "2", Name: "a"}, {ID: "3", Name: "b"}})

	assert.Equal(t, []models.AttachmentRef{{ID: "1", Name: "a"}, {ID: "3", Name: "b"}}, kept)
	assert.Equal(t, []models.AttachmentRef{{ID: "2", Name: "a"}}, duplicates)
	assert.Equal(t, []string{"1", "3"}, attachmentIDs(kept))
}
