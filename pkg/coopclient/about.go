package coopclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetAbout returns the About page, creating the default one on first use.
func (c *Client) GetAbout(ctx context.Context) (*AboutPage, error) {
	var p AboutPage
	if err := c.get(ctx, "/api/about", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateAbout replaces every section present in patch.
func (c *Client) UpdateAbout(ctx context.Context, patch AboutPatch) (*AboutPage, error) {
	var p AboutPage
	if err := c.send(ctx, http.MethodPut, "/api/about", patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateAboutSection merges partial into one named section.
func (c *Client) UpdateAboutSection(ctx context.Context, section string, partial any) (*AboutPage, error) {
	var p AboutPage
	if err := c.send(ctx, http.MethodPut, "/api/about/section/"+url.PathEscape(section), partial, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AddValue appends a core value and returns the full list.
func (c *Client) AddValue(ctx context.Context, in ValueInput) ([]Value, error) {
	var out []Value
	if err := c.send(ctx, http.MethodPost, "/api/about/values", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateValue merges patch into the value with id.
func (c *Client) UpdateValue(ctx context.Context, id string, patch ValuePatch) (*Value, error) {
	var v Value
	if err := c.send(ctx, http.MethodPut, "/api/about/values/"+url.PathEscape(id), patch, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteValue removes a value and returns the remaining list.
func (c *Client) DeleteValue(ctx context.Context, id string) ([]Value, error) {
	var out []Value
	if err := c.send(ctx, http.MethodDelete, "/api/about/values/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMilestone appends a milestone and returns the full list.
func (c *Client) AddMilestone(ctx context.Context, in MilestoneInput) ([]Milestone, error) {
	var out []Milestone
	if err := c.send(ctx, http.MethodPost, "/api/about/milestones", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateMilestone merges patch into the milestone with id.
func (c *Client) UpdateMilestone(ctx context.Context, id string, patch MilestonePatch) (*Milestone, error) {
	var m Milestone
	if err := c.send(ctx, http.MethodPut, "/api/about/milestones/"+url.PathEscape(id), patch, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMilestone removes a milestone and returns the remaining list.
func (c *Client) DeleteMilestone(ctx context.Context, id string) ([]Milestone, error) {
	var out []Milestone
	if err := c.send(ctx, http.MethodDelete, "/api/about/milestones/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddImpact appends a community impact and returns the full list.
func (c *Client) AddImpact(ctx context.Context, in ImpactInput) ([]CommunityImpact, error) {
	var out []CommunityImpact
	if err := c.send(ctx, http.MethodPost, "/api/about/community-impacts", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateImpact merges patch into the impact with id.
func (c *Client) UpdateImpact(ctx context.Context, id string, patch ImpactPatch) (*CommunityImpact, error) {
	var ci CommunityImpact
	if err := c.send(ctx, http.MethodPut, "/api/about/community-impacts/"+url.PathEscape(id), patch, &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

// DeleteImpact removes an impact and returns the remaining list.
func (c *Client) DeleteImpact(ctx context.Context, id string) ([]CommunityImpact, error) {
	var out []CommunityImpact
	if err := c.send(ctx, http.MethodDelete, "/api/about/community-impacts/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func imagePath(section, id string) string {
	p := "/api/about/images/" + url.PathEscape(section)
	if id != "" {
		p += "/" + url.PathEscape(id)
	}
	return p
}

// AddImage attaches imageURL to the story (id empty) or to the item id in
// section, returning that target's image list.
func (c *Client) AddImage(ctx context.Context, section, id, imageURL string) ([]string, error) {
	var out []string
	body := map[string]string{"url": imageURL}
	if err := c.send(ctx, http.MethodPost, imagePath(section, id), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveImage detaches the image at index and returns the remaining list.
func (c *Client) RemoveImage(ctx context.Context, section, id string, index int) ([]string, error) {
	var out []string
	if err := c.send(ctx, http.MethodDelete, imagePath(section, id)+"/"+strconv.Itoa(index), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
