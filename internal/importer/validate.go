package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

var validSectionStatuses = map[string]bool{
	string(domain.SectionApproved):    true,
	string(domain.SectionPartial):     true,
	string(domain.SectionNeedsReview): true,
}

// ValidateIdeaImport checks the import for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateIdeaImport(schema *IdeaImport) []error {
	var errs []error

	if strings.TrimSpace(schema.Name) == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if schema.Status != "" {
		if _, err := domain.ParseIdeaStatus(schema.Status); err != nil {
			errs = append(errs, fmt.Errorf("status: %w", err))
		}
	}
	for i, d := range schema.Documents {
		if !domain.DocumentTypes[d] {
			errs = append(errs, fmt.Errorf("documents[%d]: unknown document type %q", i, d))
		}
	}

	if len(schema.Sections) == 0 {
		errs = append(errs, fmt.Errorf("at least one section is required"))
	}
	ids := make(map[string]bool)
	for i, s := range schema.Sections {
		prefix := fmt.Sprintf("sections[%d]", i)
		blankTitle := strings.TrimSpace(s.Title) == ""
		if blankTitle {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		switch id := sectionID(s); {
		case id == "":
			// A missing title is already reported.
			if !blankTitle {
				errs = append(errs, fmt.Errorf("%s: id cannot be derived from title %q", prefix, s.Title))
			}
		case ids[id]:
			errs = append(errs, fmt.Errorf("%s: duplicate section id %q", prefix, id))
		default:
			ids[id] = true
		}
		if s.Status != "" && !validSectionStatuses[s.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q (want approved, partial or needs-review)", prefix, s.Status))
		}
		if s.Comments < 0 {
			errs = append(errs, fmt.Errorf("%s.comments must be >= 0", prefix))
		}
	}

	return errs
}

func sectionID(s SectionImport) string {
	if id := Slugify(s.ID); id != "" {
		return id
	}
	return Slugify(s.Title)
}
