package gymapi

import (
	"context"
	"fmt"

	"gymdesk/models"
)

// TemplatesByGym returns the weekly schedule templates of one gym.
func (c *Client) TemplatesByGym(ctx context.Context, gymID int) ([]models.ScheduleTemplate, error) {
	var ts []models.ScheduleTemplate
	err := c.Get(ctx, fmt.Sprintf("/templates/gym/%d", gymID), &ts)
	return ts, err
}

// CreateBlock adds a schedule block to a weekday template.
func (c *Client) CreateBlock(ctx context.Context, req models.BlockRequest) error {
	return c.Post(ctx, "/schedule-block", req, nil)
}

// UpdateBlock replaces a schedule block.
func (c *Client) UpdateBlock(ctx context.Context, id int, req models.BlockRequest) error {
	return c.Put(ctx, fmt.Sprintf("/schedule-blocks/%d", id), req, nil)
}

// DeleteBlock removes a schedule block.
func (c *Client) DeleteBlock(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/schedule-blocks/%d", id))
}
