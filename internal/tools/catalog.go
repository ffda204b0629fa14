package tools

import (
	"github.com/lakebot/lakebot/internal/databricks"
	"github.com/lakebot/lakebot/internal/schema"
)

// NewCatalog builds the full administrative tool registry against one
// workspace client. The list is static: adding a tool means adding it here.
func NewCatalog(client *databricks.Client) (*Registry, error) {
	catalog := []schema.Tool{
		// Service principals
		NewListServicePrincipalsTool(client),
		NewCreateServicePrincipalTool(client),
		NewGetServicePrincipalTool(client),
		NewDeleteServicePrincipalTool(client),

		// Secret scopes, secrets, ACLs
		NewListScopesTool(client),
		NewCreateScopeTool(client),
		NewDeleteScopeTool(client),
		NewAddSecretTool(client),
		NewGetSecretTool(client),
		NewDeleteSecretTool(client),
		NewPutScopeACLTool(client),
		NewListScopeACLsTool(client),
		NewDeleteScopeACLTool(client),

		// Clusters
		NewListClustersTool(client),
		NewTerminateClusterTool(client),
		NewStartClusterTool(client),
		NewGetClusterInfoTool(client),
		NewRestartClusterTool(client),

		// Jobs
		NewStartJobTool(client),
		NewListJobsTool(client),
		NewCancelJobTool(client),
		NewGetJobDetailsTool(client),
	}

	registry := NewRegistry()
	for _, t := range catalog {
		if err := registry.Register(t); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
