package tools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lakebot/lakebot/internal/databricks"
)

// ListScopesTool lists all secret scopes in the workspace.
type ListScopesTool struct{ client *databricks.Client }

func NewListScopesTool(c *databricks.Client) *ListScopesTool { return &ListScopesTool{client: c} }

func (t *ListScopesTool) Name() string { return "list_of_scopes" }
func (t *ListScopesTool) Description() string {
	return "Gets the list of secret scopes via the Databricks REST API."
}
func (t *ListScopesTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}, "required": []}`)
}

func (t *ListScopesTool) Execute(ctx context.Context, _ map[string]any) (string, error) {
	raw, err := t.client.Do(ctx, http.MethodGet, "/api/2.0/secrets/scopes/list", nil)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return extractList(raw, "scopes"), nil
}

// CreateScopeTool creates a new secret scope.
type CreateScopeTool struct{ client *databricks.Client }

func NewCreateScopeTool(c *databricks.Client) *CreateScopeTool { return &CreateScopeTool{client: c} }

func (t *CreateScopeTool) Name() string { return "create_scope" }
func (t *CreateScopeTool) Description() string {
	return "Creates a new scope via the Databricks REST API."
}
func (t *CreateScopeTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the secret scope to create"
			},
			"scope_backend_type": {
				"type": "string",
				"description": "The type of secret scope: 'DATABRICKS' or 'AZURE_KEYVAULT'",
				"default": "DATABRICKS"
			},
			"initial_manage_principal": {
				"type": "string",
				"description": "The principal that is initially granted MANAGE permission"
			}
		},
		"required": ["scope"]
	}`)
}

func (t *CreateScopeTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	scope := stringArg(args, "scope")
	backend := stringArg(args, "scope_backend_type")
	if backend == "" {
		backend = "DATABRICKS"
	}
	body := map[string]any{
		"scope":              scope,
		"scope_backend_type": backend,
	}
	setIfPresent(body, args, "initial_manage_principal")

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.0/secrets/scopes/create", body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Scope %s created successfully.", scope), nil
}

// DeleteScopeTool deletes a secret scope.
type DeleteScopeTool struct{ client *databricks.Client }

func NewDeleteScopeTool(c *databricks.Client) *DeleteScopeTool { return &DeleteScopeTool{client: c} }

func (t *DeleteScopeTool) Name() string { return "delete_scope" }
func (t *DeleteScopeTool) Description() string {
	return "Deletes a scope via the Databricks REST API."
}
func (t *DeleteScopeTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the secret scope to delete"
			}
		},
		"required": ["scope"]
	}`)
}

func (t *DeleteScopeTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	scope := stringArg(args, "scope")

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.0/secrets/scopes/delete",
		map[string]any{"scope": scope})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Scope %s deleted successfully.", scope), nil
}

// AddSecretTool inserts or overwrites a secret under a scope.
type AddSecretTool struct{ client *databricks.Client }

func NewAddSecretTool(c *databricks.Client) *AddSecretTool { return &AddSecretTool{client: c} }

func (t *AddSecretTool) Name() string { return "add_secret" }
func (t *AddSecretTool) Description() string {
	return "Inserts a secret under the provided scope with the given name. If a secret already exists with the same name, this command overwrites the existing secret's value via the Databricks REST API."
}
func (t *AddSecretTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the scope"
			},
			"key": {
				"type": "string",
				"description": "The name of the secret to create"
			},
			"string_value": {
				"type": "string",
				"description": "If specified, the value is stored in UTF-8 (MB4) form"
			},
			"bytes_value": {
				"type": "string",
				"description": "If specified, the value is stored as bytes"
			}
		},
		"required": ["scope", "key"]
	}`)
}

func (t *AddSecretTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	key := stringArg(args, "key")
	body := map[string]any{
		"scope": stringArg(args, "scope"),
		"key":   key,
	}
	if v := stringArg(args, "string_value"); v != "" {
		body["string_value"] = v
	}
	if v := stringArg(args, "bytes_value"); v != "" {
		body["bytes_value"] = v
	}

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.0/secrets/put", body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Secret with key %s stored successfully.", key), nil
}

// GetSecretTool reads a secret value.
type GetSecretTool struct{ client *databricks.Client }

func NewGetSecretTool(c *databricks.Client) *GetSecretTool { return &GetSecretTool{client: c} }

func (t *GetSecretTool) Name() string { return "get_secret" }
func (t *GetSecretTool) Description() string {
	return "Gets the secret under the provided scope with the given name via the Databricks REST API."
}
func (t *GetSecretTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the scope"
			},
			"key": {
				"type": "string",
				"description": "The name of the secret"
			}
		},
		"required": ["scope", "key"]
	}`)
}

func (t *GetSecretTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	body := map[string]any{
		"scope": stringArg(args, "scope"),
		"key":   stringArg(args, "key"),
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/api/2.0/secrets/get", body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}

// DeleteSecretTool deletes a secret from a scope.
type DeleteSecretTool struct{ client *databricks.Client }

func NewDeleteSecretTool(c *databricks.Client) *DeleteSecretTool {
	return &DeleteSecretTool{client: c}
}

func (t *DeleteSecretTool) Name() string { return "delete_secret" }
func (t *DeleteSecretTool) Description() string {
	return "Deletes a secret under the provided scope with the given name via the Databricks REST API."
}
func (t *DeleteSecretTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the scope"
			},
			"key": {
				"type": "string",
				"description": "The name of the secret to delete"
			}
		},
		"required": ["scope", "key"]
	}`)
}

func (t *DeleteSecretTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	key := stringArg(args, "key")
	body := map[string]any{
		"scope": stringArg(args, "scope"),
		"key":   key,
	}

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.0/secrets/delete", body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Secret with key %s deleted successfully.", key), nil
}

// PutScopeACLTool grants or updates a principal's permission on a scope.
type PutScopeACLTool struct{ client *databricks.Client }

func NewPutScopeACLTool(c *databricks.Client) *PutScopeACLTool { return &PutScopeACLTool{client: c} }

func (t *PutScopeACLTool) Name() string { return "create_acl_scopes" }
func (t *PutScopeACLTool) Description() string {
	return "Creates or updates permission to the service principal to scopes via the Databricks REST API."
}
func (t *PutScopeACLTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the scope"
			},
			"permission": {
				"type": "string",
				"description": "The permission to grant: READ, WRITE, or MANAGE"
			},
			"principal": {
				"type": "string",
				"description": "The principal the permission is granted to"
			}
		},
		"required": ["scope", "permission", "principal"]
	}`)
}

func (t *PutScopeACLTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	scope := stringArg(args, "scope")
	permission := stringArg(args, "permission")
	principal := stringArg(args, "principal")

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.0/secrets/acls/put", map[string]any{
		"scope":      scope,
		"principal":  principal,
		"permission": permission,
	})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Gave %s permission to %s on %s.", permission, principal, scope), nil
}

// ListScopeACLsTool lists the ACLs set on a scope.
type ListScopeACLsTool struct{ client *databricks.Client }

func NewListScopeACLsTool(c *databricks.Client) *ListScopeACLsTool {
	return &ListScopeACLsTool{client: c}
}

func (t *ListScopeACLsTool) Name() string { return "list_acl_scopes" }
func (t *ListScopeACLsTool) Description() string {
	return "Lists the ACLs set on the given scope via the Databricks REST API."
}
func (t *ListScopeACLsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the scope"
			}
		},
		"required": ["scope"]
	}`)
}

func (t *ListScopeACLsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	raw, err := t.client.Do(ctx, http.MethodGet, "/api/2.0/secrets/acls/list",
		map[string]any{"scope": stringArg(args, "scope")})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}

// DeleteScopeACLTool revokes a principal's permission on a scope.
type DeleteScopeACLTool struct{ client *databricks.Client }

func NewDeleteScopeACLTool(c *databricks.Client) *DeleteScopeACLTool {
	return &DeleteScopeACLTool{client: c}
}

func (t *DeleteScopeACLTool) Name() string { return "delete_acl_scopes" }
func (t *DeleteScopeACLTool) Description() string {
	return "Deletes the existing permission to the service principal to scopes via the Databricks REST API."
}
func (t *DeleteScopeACLTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"scope": {
				"type": "string",
				"description": "The name of the scope"
			},
			"principal": {
				"type": "string",
				"description": "The principal whose permission is removed"
			}
		},
		"required": ["scope", "principal"]
	}`)
}

func (t *DeleteScopeACLTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	scope := stringArg(args, "scope")
	principal := stringArg(args, "principal")

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.0/secrets/acls/delete", map[string]any{
		"scope":     scope,
		"principal": principal,
	})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Deleted permissions for %s on %s.", principal, scope), nil
}
