package reel

// msgMissingFields is the caller-visible message for missing metadata.
const msgMissingFields = "Missing required fields"

// ValidateMeta extracts the required metadata triple from a decoded
// form. It is pure: no storage is touched, so a rejection here leaves
// zero trace. Multi-valued fields keep their first value.
func ValidateMeta(form *Form) (Meta, error) {
	title, _ := form.Field("title").First()
	description, _ := form.Field("description").First()
	submittedBy, _ := form.Field("by").First()

	if title == "" || description == "" || submittedBy == "" {
		return Meta{}, rejected(KindValidation, msgMissingFields, nil)
	}

	return Meta{
		Title:       title,
		Description: description,
		SubmittedBy: submittedBy,
	}, nil
}
