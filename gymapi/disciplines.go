package gymapi

import (
	"context"
	"fmt"

	"gymdesk/models"
)

// Disciplines lists every discipline across gyms.
func (c *Client) Disciplines(ctx context.Context) ([]models.Discipline, error) {
	var ds []models.Discipline
	err := c.Get(ctx, "/disciplines", &ds)
	return ds, err
}

// DisciplinesByGym lists the disciplines of one gym.
func (c *Client) DisciplinesByGym(ctx context.Context, gymID int) ([]models.Discipline, error) {
	var ds []models.Discipline
	err := c.Get(ctx, fmt.Sprintf("/disciplines/gym/%d", gymID), &ds)
	return ds, err
}

// CreateDiscipline adds a discipline to a gym.
func (c *Client) CreateDiscipline(ctx context.Context, req models.CreateDisciplineRequest) error {
	return c.Post(ctx, "/disciplines", req, nil)
}

// UpdateDiscipline renames a discipline.
func (c *Client) UpdateDiscipline(ctx context.Context, id int, req models.UpdateDisciplineRequest) error {
	return c.Put(ctx, fmt.Sprintf("/disciplines/%d", id), req, nil)
}

// DeleteDiscipline removes a discipline.
func (c *Client) DeleteDiscipline(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/disciplines/%d", id))
}
