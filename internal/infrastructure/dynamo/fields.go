package dynamo

// DynamoDB attribute and index names for the notes table.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldNoteID     = "note_id"
	fieldCollection = "collection"
	fieldCreatedAt  = "created_at"

	// notesCollection is the constant partition value shared by every note
	// so the GSI can return the whole collection sorted by created_at.
	notesCollection = "notes"

	indexCollectionCreatedAt = "collection-created_at-index"
)
