package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// SiteInvitationsClient implements dato.SiteInvitationsClient.
type SiteInvitationsClient struct {
	httpClient *http.Client
}

// NewSiteInvitationsClient creates a new site invitations client.
func NewSiteInvitationsClient(httpClient *http.Client) *SiteInvitationsClient {
	return &SiteInvitationsClient{httpClient: httpClient}
}

func decodeSiteInvitation(e *entity) (*dato.SiteInvitation, error) {
	var invitation dato.SiteInvitation
	if err := e.decodeAttributes(&invitation); err != nil {
		return nil, err
	}

	invitation.ID = e.ID
	invitation.RoleID = e.relID("role")

	return &invitation, nil
}

// List implements dato.SiteInvitationsClient.List.
func (c *SiteInvitationsClient) List(ctx context.Context) ([]dato.SiteInvitation, error) {
	resp, err := c.httpClient.Get(ctx, "/site-invitations", nil)
	if err != nil {
		return nil, fmt.Errorf("listing site invitations: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	invitations := make([]dato.SiteInvitation, 0, len(entities))

	for i := range entities {
		invitation, err := decodeSiteInvitation(&entities[i])
		if err != nil {
			return nil, err
		}

		invitations = append(invitations, *invitation)
	}

	return invitations, nil
}

// Get implements dato.SiteInvitationsClient.Get.
func (c *SiteInvitationsClient) Get(ctx context.Context, invitationID string) (*dato.SiteInvitation, error) {
	resp, err := c.httpClient.Get(ctx, "/site-invitations/"+invitationID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting site invitation: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeSiteInvitation(e)
}

// Create implements dato.SiteInvitationsClient.Create.
func (c *SiteInvitationsClient) Create(ctx context.Context, request *dato.SiteInvitationCreateRequest) (*dato.SiteInvitation, error) {
	var rels map[string]relationship
	if request.RoleID != "" {
		rels = map[string]relationship{"role": toOne("role", request.RoleID)}
	}

	e, err := newEntity("site_invitation", "", request, rels, "role_id")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/site-invitations", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating site invitation: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeSiteInvitation(created)
}

// Resend implements dato.SiteInvitationsClient.Resend.
func (c *SiteInvitationsClient) Resend(ctx context.Context, invitationID string) error {
	if _, err := c.httpClient.Post(ctx, "/site-invitations/"+invitationID+"/resend", nil); err != nil {
		return fmt.Errorf("resending site invitation: %w", err)
	}

	return nil
}

// Delete implements dato.SiteInvitationsClient.Delete.
func (c *SiteInvitationsClient) Delete(ctx context.Context, invitationID string) (*dato.SiteInvitation, error) {
	resp, err := c.httpClient.Delete(ctx, "/site-invitations/"+invitationID)
	if err != nil {
		return nil, fmt.Errorf("deleting site invitation: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeSiteInvitation(e)
}
