package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/coursepilot/internal/app/models"
	"github.com/selim/coursepilot/internal/timetable"
)

func TestDefaultCatalogComponentsAndStatuses(t *testing.T) {
	knownComponents := map[string]bool{
		models.ComponentLecture:     true,
		models.ComponentSeminar:     true,
		models.ComponentDiscussion:  true,
		models.ComponentLaboratory:  true,
		models.ComponentIndependent: true,
	}
	knownStatuses := map[string]bool{
		models.StatusOpen:     true,
		models.StatusClosed:   true,
		models.StatusWaitlist: true,
	}

	for _, course := range defaultCatalog {
		assert.True(t, knownComponents[course.Component],
			"%s %s %s has unknown component %q", course.Subject, course.CatalogNbr, course.Section, course.Component)
		assert.True(t, knownStatuses[course.Status],
			"%s %s %s has unknown status %q", course.Subject, course.CatalogNbr, course.Section, course.Status)
	}
}

func TestDefaultCatalogClassNbrsUnique(t *testing.T) {
	seen := make(map[int]string)
	for _, course := range defaultCatalog {
		label := course.Subject + " " + course.CatalogNbr + " " + course.Section
		prev, dup := seen[course.ClassNbr]
		require.False(t, dup, "class number %d reused by %s and %s", course.ClassNbr, prev, label)
		seen[course.ClassNbr] = label
	}
}

func TestDefaultCatalogMeetingsParse(t *testing.T) {
	for _, course := range defaultCatalog {
		for _, pattern := range course.Meetings {
			if pattern == "TBA" {
				continue
			}
			meeting, ok := timetable.ParseMeeting(pattern)
			require.True(t, ok, "%s %s %s: pattern %q did not parse",
				course.Subject, course.CatalogNbr, course.Section, pattern)
			assert.NotEmpty(t, meeting.Days)
			assert.Less(t, meeting.Time.Start, meeting.Time.End)
		}
	}
}
