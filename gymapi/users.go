package gymapi

import (
	"context"
	"fmt"
	"net/url"

	"gymdesk/models"
)

// MembersByGym returns one page of the gym's member listing, optionally
// filtered by a free-text search.
func (c *Client) MembersByGym(ctx context.Context, gymID, roleID, page, limit int, search string) (models.MembersPage, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))
	if search != "" {
		q.Set("search", search)
	}
	var res models.MembersPage
	err := c.Get(ctx, fmt.Sprintf("/users/gym/%d/%d?%s", gymID, roleID, q.Encode()), &res)
	return res, err
}

// User returns a single user record.
func (c *Client) User(ctx context.Context, id int) (models.Member, error) {
	var m models.Member
	err := c.Get(ctx, fmt.Sprintf("/users/%d", id), &m)
	return m, err
}

// UpdateUser updates a user record.
func (c *Client) UpdateUser(ctx context.Context, id int, req models.MemberUpdateRequest) error {
	return c.Put(ctx, fmt.Sprintf("/users/%d", id), req, nil)
}

// DeleteUser removes a user record.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

// Gyms lists every gym, used by registration and member-edit forms.
func (c *Client) Gyms(ctx context.Context) ([]models.GymRef, error) {
	var gyms []models.GymRef
	err := c.Get(ctx, "/gyms", &gyms)
	return gyms, err
}
