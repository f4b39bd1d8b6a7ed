package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"gymdesk/schedule"

	"github.com/gin-gonic/gin"
)

// agendaDay is one column of the weekly agenda view.
type agendaDay struct {
	Label   string        `json:"label"`
	Date    string        `json:"date"`
	Display string        `json:"display"`
	Classes []agendaClass `json:"classes"`
}

// agendaClass is one class card within an agenda column.
type agendaClass struct {
	ID         int    `json:"id"`
	Time       string `json:"time"`
	Discipline string `json:"discipline"`
	Capacity   int    `json:"capacity"`
	Enrolled   int    `json:"enrolled"`
	Vacancy    int    `json:"vacancy"`
}

// AgendaHandler renders one week of classes grouped by day. The offset query
// parameter selects the week relative to the current one; malformed values
// fall back to zero.
func (vs *ViewSet) AgendaHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	week := vs.Weeks.ComputeWeek(offset)
	res, err := vs.API.ClassesOnWeek(c.Request.Context(), gym.ID, offset)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}

	days := make([]agendaDay, 7)
	for i, d := range week.Days {
		days[i] = agendaDay{
			Label:   d.Label,
			Date:    d.ISODate,
			Display: d.Display,
			Classes: []agendaClass{},
		}
	}

	// A null classes array means an empty week; the columns still render.
	for _, cl := range res.Classes {
		idx := dayIndex(cl.DayOfWeek)
		if idx < 0 {
			continue
		}
		days[idx].Classes = append(days[idx].Classes, agendaClass{
			ID:         cl.ID,
			Time:       schedule.ClockLabel(cl.Time),
			Discipline: cl.Discipline.Name,
			Capacity:   cl.Capacity,
			Enrolled:   cl.Enrolled,
			Vacancy:    cl.Vacancy,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"offset": offset,
		"title":  schedule.RangeTitle(week),
		"days":   days,
	})
}

// dayIndex matches a remote day name against the week's labels, case
// insensitively. Unknown names return -1.
func dayIndex(day string) int {
	for i, label := range schedule.DayLabels {
		if strings.EqualFold(day, label) {
			return i
		}
	}
	return -1
}
