package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// ListProfiles fetches one page of profiles with optional filter params.
func (c *Client) ListProfiles(ctx context.Context, page int, params url.Values) (*domain.Paginated[domain.Profile], error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("page", strconv.Itoa(page))

	var profiles domain.Paginated[domain.Profile]
	if err := c.get(ctx, "/account/profiles/", params, &profiles); err != nil {
		return nil, fmt.Errorf("client.ListProfiles: %w", err)
	}
	return &profiles, nil
}

// AvailableCandidates fetches the full available-for-hire candidate set.
// The collection is bounded, so views filter it locally.
func (c *Client) AvailableCandidates(ctx context.Context) ([]domain.Profile, error) {
	var resp domain.Paginated[domain.Profile]
	if err := c.get(ctx, "/account/profiles/available_candidates/", nil, &resp); err != nil {
		return nil, fmt.Errorf("client.AvailableCandidates: %w", err)
	}
	return resp.Results, nil
}

// GetMyProfile fetches the signed-in user's profile.
func (c *Client) GetMyProfile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.get(ctx, "/account/profiles/my_profile/", nil, &profile); err != nil {
		return nil, fmt.Errorf("client.GetMyProfile: %w", err)
	}
	return &profile, nil
}

// GetProfile fetches a profile by ID. A 404 surfaces via IsNotFound so
// callers can show a not-found state instead of an error banner.
func (c *Client) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.get(ctx, "/account/profiles/"+strconv.Itoa(id)+"/", nil, &profile); err != nil {
		return nil, fmt.Errorf("client.GetProfile: %w", err)
	}
	return &profile, nil
}

// CreateProfile creates the signed-in user's profile.
func (c *Client) CreateProfile(ctx context.Context, payload domain.ProfilePayload) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.post(ctx, "/account/profiles/", payload, &profile); err != nil {
		return nil, fmt.Errorf("client.CreateProfile: %w", err)
	}
	return &profile, nil
}

// UpdateMyProfile replaces the signed-in user's profile (PUT).
func (c *Client) UpdateMyProfile(ctx context.Context, payload domain.ProfilePayload) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.doJSON(ctx, http.MethodPut, "/account/profiles/my_profile/", nil, payload, &profile); err != nil {
		return nil, fmt.Errorf("client.UpdateMyProfile: %w", err)
	}
	return &profile, nil
}

// PatchMyProfile partially updates the signed-in user's profile.
func (c *Client) PatchMyProfile(ctx context.Context, payload domain.ProfilePayload) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.doJSON(ctx, http.MethodPatch, "/account/profiles/my_profile/", nil, payload, &profile); err != nil {
		return nil, fmt.Errorf("client.PatchMyProfile: %w", err)
	}
	return &profile, nil
}

// DeleteProfile removes a profile by ID.
func (c *Client) DeleteProfile(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/account/profiles/"+strconv.Itoa(id)+"/", nil, nil, nil); err != nil {
		return fmt.Errorf("client.DeleteProfile: %w", err)
	}
	return nil
}

// UploadResume attaches a resume file to a profile.
func (c *Client) UploadResume(ctx context.Context, id int, filename string, r io.Reader) (*domain.Profile, error) {
	var profile domain.Profile
	path := "/account/profiles/" + strconv.Itoa(id) + "/upload_resume/"
	if err := c.uploadFile(ctx, path, "resume", filename, r, &profile); err != nil {
		return nil, fmt.Errorf("client.UploadResume: %w", err)
	}
	return &profile, nil
}

// UploadProfileImage attaches a profile image to a profile.
func (c *Client) UploadProfileImage(ctx context.Context, id int, filename string, r io.Reader) (*domain.Profile, error) {
	var profile domain.Profile
	path := "/account/profiles/" + strconv.Itoa(id) + "/upload_profile_image/"
	if err := c.uploadFile(ctx, path, "profile_image", filename, r, &profile); err != nil {
		return nil, fmt.Errorf("client.UploadProfileImage: %w", err)
	}
	return &profile, nil
}

// ProfileStats fetches platform-wide profile aggregates.
func (c *Client) ProfileStats(ctx context.Context) (*domain.ProfileStats, error) {
	var stats domain.ProfileStats
	if err := c.get(ctx, "/account/profiles/profile_stats/", nil, &stats); err != nil {
		return nil, fmt.Errorf("client.ProfileStats: %w", err)
	}
	return &stats, nil
}

// MyStats fetches the signed-in user's view/application counters.
func (c *Client) MyStats(ctx context.Context) (*domain.MyProfileStats, error) {
	var stats domain.MyProfileStats
	if err := c.get(ctx, "/account/profiles/my_stats/", nil, &stats); err != nil {
		return nil, fmt.Errorf("client.MyStats: %w", err)
	}
	return &stats, nil
}
