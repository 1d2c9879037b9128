package domain

type DocumentSection struct {
	IdeaID   string
	ID       string
	Position int
	Title    string
	Body     string
	Status   SectionStatus
	Comments int
}

// FindSection returns the section with the given id, falling back to the
// first section when id is empty or unknown. Returns nil for an empty list.
func FindSection(sections []*DocumentSection, id string) *DocumentSection {
	for _, s := range sections {
		if s.ID == id {
			return s
		}
	}
	if len(sections) > 0 {
		return sections[0]
	}
	return nil
}
