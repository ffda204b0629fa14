package tools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lakebot/lakebot/internal/databricks"
)

// clusterIDParams is shared by every cluster tool that takes only cluster_id.
const clusterIDParams = `{
	"type": "object",
	"properties": {
		"cluster_id": {
			"type": "string",
			"description": "The ID of the cluster"
		}
	},
	"required": ["cluster_id"]
}`

// ListClustersTool lists every cluster in the workspace.
type ListClustersTool struct{ client *databricks.Client }

func NewListClustersTool(c *databricks.Client) *ListClustersTool {
	return &ListClustersTool{client: c}
}

func (t *ListClustersTool) Name() string { return "list_clusters" }
func (t *ListClustersTool) Description() string {
	return "Gets the list of clusters via the Databricks REST API."
}
func (t *ListClustersTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type": "object", "properties": {}, "required": []}`)
}

func (t *ListClustersTool) Execute(ctx context.Context, _ map[string]any) (string, error) {
	raw, err := t.client.Do(ctx, http.MethodGet, "/api/2.1/clusters/list", nil)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return extractList(raw, "clusters"), nil
}

// TerminateClusterTool terminates a running cluster.
type TerminateClusterTool struct{ client *databricks.Client }

func NewTerminateClusterTool(c *databricks.Client) *TerminateClusterTool {
	return &TerminateClusterTool{client: c}
}

func (t *TerminateClusterTool) Name() string { return "terminate_clusters" }
func (t *TerminateClusterTool) Description() string {
	return "Terminates a cluster via the Databricks REST API. The 'cluster_id' parameter is required."
}
func (t *TerminateClusterTool) Parameters() json.RawMessage {
	return json.RawMessage(clusterIDParams)
}

func (t *TerminateClusterTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	clusterID := stringArg(args, "cluster_id")

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.1/clusters/delete",
		map[string]any{"cluster_id": clusterID})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Cluster %s terminated successfully.", clusterID), nil
}

// StartClusterTool starts a terminated cluster.
type StartClusterTool struct{ client *databricks.Client }

func NewStartClusterTool(c *databricks.Client) *StartClusterTool {
	return &StartClusterTool{client: c}
}

func (t *StartClusterTool) Name() string { return "start_cluster" }
func (t *StartClusterTool) Description() string {
	return "Starts a cluster via the Databricks REST API. The 'cluster_id' parameter is required."
}
func (t *StartClusterTool) Parameters() json.RawMessage {
	return json.RawMessage(clusterIDParams)
}

func (t *StartClusterTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	clusterID := stringArg(args, "cluster_id")

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.1/clusters/start",
		map[string]any{"cluster_id": clusterID})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Cluster %s started successfully.", clusterID), nil
}

// GetClusterInfoTool fetches the full definition and state of one cluster.
type GetClusterInfoTool struct{ client *databricks.Client }

func NewGetClusterInfoTool(c *databricks.Client) *GetClusterInfoTool {
	return &GetClusterInfoTool{client: c}
}

func (t *GetClusterInfoTool) Name() string { return "get_cluster_info" }
func (t *GetClusterInfoTool) Description() string {
	return "Gets the cluster information via the Databricks REST API. The 'cluster_id' parameter is required."
}
func (t *GetClusterInfoTool) Parameters() json.RawMessage {
	return json.RawMessage(clusterIDParams)
}

func (t *GetClusterInfoTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	raw, err := t.client.Do(ctx, http.MethodGet, "/api/2.1/clusters/get",
		map[string]any{"cluster_id": stringArg(args, "cluster_id")})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}

// RestartClusterTool restarts a running cluster.
type RestartClusterTool struct{ client *databricks.Client }

func NewRestartClusterTool(c *databricks.Client) *RestartClusterTool {
	return &RestartClusterTool{client: c}
}

func (t *RestartClusterTool) Name() string { return "restart_cluster" }
func (t *RestartClusterTool) Description() string {
	return "Restarts a cluster via the Databricks REST API. The 'cluster_id' parameter is required."
}
func (t *RestartClusterTool) Parameters() json.RawMessage {
	return json.RawMessage(clusterIDParams)
}

func (t *RestartClusterTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	clusterID := stringArg(args, "cluster_id")

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.1/clusters/restart",
		map[string]any{"cluster_id": clusterID})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Cluster %s restarted successfully.", clusterID), nil
}
