package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lakebot/lakebot/internal/databricks"
)

const scimServicePrincipals = "/api/2.0/preview/scim/v2/ServicePrincipals"

// scimSchemaServicePrincipal is the SCIM schema URN required on create.
const scimSchemaServicePrincipal = "urn:ietf:params:scim:schemas:core:2.0:ServicePrincipal"

// ListServicePrincipalsTool lists service principals via the SCIM API.
type ListServicePrincipalsTool struct{ client *databricks.Client }

func NewListServicePrincipalsTool(c *databricks.Client) *ListServicePrincipalsTool {
	return &ListServicePrincipalsTool{client: c}
}

func (t *ListServicePrincipalsTool) Name() string { return "list_service_principal" }
func (t *ListServicePrincipalsTool) Description() string {
	return "Lists all the service principal/SP via the Databricks REST API."
}
func (t *ListServicePrincipalsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"filter": {
				"type": "string",
				"description": "SCIM filter expression (e.g., 'displayName co \"sp\"')"
			},
			"count": {
				"type": "integer",
				"description": "Desired number of results per page (max 100)"
			},
			"sortBy": {
				"type": "string",
				"description": "Attribute to sort results by"
			},
			"sortOrder": {
				"type": "string",
				"description": "The order to sort ('ascending' or 'descending')"
			},
			"startIndex": {
				"type": "integer",
				"description": "Index of the first result (1-based)"
			},
			"attributes": {
				"type": "string",
				"description": "Comma-separated list of attributes to include in the response"
			},
			"excludedAttributes": {
				"type": "string",
				"description": "Comma-separated list of attributes to exclude"
			}
		},
		"required": []
	}`)
}

func (t *ListServicePrincipalsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	body := map[string]any{}
	for _, key := range []string{"filter", "count", "sortBy", "sortOrder", "startIndex", "attributes", "excludedAttributes"} {
		setIfPresent(body, args, key)
	}

	raw, err := t.client.Do(ctx, http.MethodGet, scimServicePrincipals, body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}

// CreateServicePrincipalTool creates a service principal via the SCIM API.
type CreateServicePrincipalTool struct{ client *databricks.Client }

func NewCreateServicePrincipalTool(c *databricks.Client) *CreateServicePrincipalTool {
	return &CreateServicePrincipalTool{client: c}
}

func (t *CreateServicePrincipalTool) Name() string { return "create_service_principal" }
func (t *CreateServicePrincipalTool) Description() string {
	return "Create a service principal/SP via the Databricks REST API."
}
func (t *CreateServicePrincipalTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"display_name": {
				"type": "string",
				"description": "The user-friendly name for the Service Principal"
			},
			"active": {
				"type": "boolean",
				"description": "Whether the SP should be active",
				"default": true
			},
			"application_id": {
				"type": "string",
				"description": "Optional UUID/Client ID when representing an existing external identity (like an Azure AD SP)"
			}
		},
		"required": ["display_name"]
	}`)
}

func (t *CreateServicePrincipalTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	body := map[string]any{
		"schemas":     []string{scimSchemaServicePrincipal},
		"displayName": stringArg(args, "display_name"),
		"active":      boolArg(args, "active", true),
	}
	if appID := stringArg(args, "application_id"); appID != "" {
		body["applicationId"] = appID
	}

	raw, err := t.client.Do(ctx, http.MethodPost, scimServicePrincipals, body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}

// GetServicePrincipalTool fetches one service principal by ID.
type GetServicePrincipalTool struct{ client *databricks.Client }

func NewGetServicePrincipalTool(c *databricks.Client) *GetServicePrincipalTool {
	return &GetServicePrincipalTool{client: c}
}

func (t *GetServicePrincipalTool) Name() string { return "get_service_principal_details" }
func (t *GetServicePrincipalTool) Description() string {
	return "Gets a service principal/SP via the Databricks REST API."
}
func (t *GetServicePrincipalTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"id": {
				"type": "integer",
				"description": "The ID of the SP to get"
			}
		},
		"required": ["id"]
	}`)
}

func (t *GetServicePrincipalTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	id, ok := intArg(args, "id")
	if !ok {
		return errorPayload(t.Name(), fmt.Errorf("'id' is required")), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet,
		fmt.Sprintf("%s/%d", scimServicePrincipals, id), map[string]any{"id": id})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}

// DeleteServicePrincipalTool deletes one service principal by ID.
type DeleteServicePrincipalTool struct{ client *databricks.Client }

func NewDeleteServicePrincipalTool(c *databricks.Client) *DeleteServicePrincipalTool {
	return &DeleteServicePrincipalTool{client: c}
}

func (t *DeleteServicePrincipalTool) Name() string { return "delete_service_principal" }
func (t *DeleteServicePrincipalTool) Description() string {
	return "Deletes a service principal/SP via the Databricks REST API."
}
func (t *DeleteServicePrincipalTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"id": {
				"type": "integer",
				"description": "The ID of the SP to delete"
			}
		},
		"required": ["id"]
	}`)
}

func (t *DeleteServicePrincipalTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	id, ok := intArg(args, "id")
	if !ok {
		return errorPayload(t.Name(), fmt.Errorf("'id' is required")), nil
	}

	_, err := t.client.Do(ctx, http.MethodDelete,
		fmt.Sprintf("%s/%d", scimServicePrincipals, id), nil)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Service Principal with ID %d deleted successfully.", id), nil
}
