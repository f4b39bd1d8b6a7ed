package gymapi

import (
	"context"
	"fmt"

	"gymdesk/models"
)

// ClassesOnWeek returns the classes of one gym for the week at the given
// offset from the current week.
func (c *Client) ClassesOnWeek(ctx context.Context, gymID, offset int) (models.ClassesResponse, error) {
	var res models.ClassesResponse
	err := c.Get(ctx, fmt.Sprintf("/classes/onWeek/gym/%d?offset=%d", gymID, offset), &res)
	return res, err
}

// Class returns a single scheduled class.
func (c *Client) Class(ctx context.Context, id int) (models.Class, error) {
	var cl models.Class
	err := c.Get(ctx, fmt.Sprintf("/classes/%d", id), &cl)
	return cl, err
}

// ClassRoster returns the enrollments of one class.
func (c *Client) ClassRoster(ctx context.Context, id int) ([]models.Enrollment, error) {
	var es []models.Enrollment
	err := c.Get(ctx, fmt.Sprintf("/calendar/info-class/%d", id), &es)
	return es, err
}

// GenerateClasses materializes agenda classes from the gym's templates for a
// date range.
func (c *Client) GenerateClasses(ctx context.Context, req models.GenerateClassesRequest) error {
	return c.Post(ctx, "/generate-classes", req, nil)
}
