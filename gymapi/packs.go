package gymapi

import (
	"context"
	"fmt"

	"gymdesk/models"
)

// Packs lists every membership pack.
func (c *Client) Packs(ctx context.Context) ([]models.Pack, error) {
	var ps []models.Pack
	err := c.Get(ctx, "/packs", &ps)
	return ps, err
}

// PacksByGym lists the packs of one gym.
func (c *Client) PacksByGym(ctx context.Context, gymID int) ([]models.Pack, error) {
	var ps []models.Pack
	err := c.Get(ctx, fmt.Sprintf("/packs/gym/%d", gymID), &ps)
	return ps, err
}

// CreatePack adds a pack to a gym.
func (c *Client) CreatePack(ctx context.Context, req models.CreatePackRequest) error {
	return c.Post(ctx, "/packs", req, nil)
}

// UpdatePack updates a pack.
func (c *Client) UpdatePack(ctx context.Context, id int, req models.UpdatePackRequest) error {
	return c.Put(ctx, fmt.Sprintf("/packs/%d", id), req, nil)
}

// DeletePack removes a pack.
func (c *Client) DeletePack(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/packs/%d", id))
}

// AssignPack grants a pack to a member and returns the created assignment.
func (c *Client) AssignPack(ctx context.Context, req models.AssignPackRequest) (models.UserPack, error) {
	var up models.UserPack
	err := c.Post(ctx, "/user_packs", req, &up)
	return up, err
}

// LinkPackDiscipline ties an assignment to the discipline it covers.
func (c *Client) LinkPackDiscipline(ctx context.Context, req models.UserPackDisciplineRequest) error {
	return c.Post(ctx, "/user_packs_disciplines", req, nil)
}
