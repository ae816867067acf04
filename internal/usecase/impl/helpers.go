package impl

import "strings"

type field struct {
	name  string
	value string
}

// missingFields names the fields whose value is blank.
func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}
