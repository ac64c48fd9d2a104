package validation

import (
	"fmt"
	"regexp"
	"strings"

	"canary-service/models"
)

var bedtimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Rules holds the request validation rules that depend on configuration.
type Rules struct {
	externalID *regexp.Regexp
}

// NewRules compiles the external identity pattern.
func NewRules(externalIDPattern string) (*Rules, error) {
	re, err := regexp.Compile(externalIDPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid external id pattern %q: %w", externalIDPattern, err)
	}
	return &Rules{externalID: re}, nil
}

// MustRules is NewRules for patterns known to be valid.
func MustRules(externalIDPattern string) *Rules {
	r, err := NewRules(externalIDPattern)
	if err != nil {
		panic(err)
	}
	return r
}

// ValidExternalID reports whether id has the identity provider's shape.
func (r *Rules) ValidExternalID(id string) bool {
	return r.externalID.MatchString(id)
}

func ValidStatus(status string) bool {
	for _, s := range models.TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidDescription requires a non-blank description within the column width.
func ValidDescription(desc string) bool {
	trimmed := strings.TrimSpace(desc)
	return trimmed != "" && len([]rune(desc)) <= models.MaxTaskDescriptionLen
}

func ValidBedtime(bedtime string) bool {
	return bedtimePattern.MatchString(bedtime)
}

// StatusMessage is the error text for an unknown status.
func StatusMessage() string {
	return "Invalid status. Allowed values: " + strings.Join(models.TaskStatuses, ", ")
}
