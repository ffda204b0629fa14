package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lakebot/lakebot/internal/databricks"
)

// StartJobTool triggers a run of an existing job definition.
type StartJobTool struct{ client *databricks.Client }

func NewStartJobTool(c *databricks.Client) *StartJobTool { return &StartJobTool{client: c} }

func (t *StartJobTool) Name() string { return "start_job" }
func (t *StartJobTool) Description() string {
	return "Triggers a job run via the Databricks REST API. The 'job_id' parameter is required. The 'job_parameters' should be a JSON string if provided."
}
func (t *StartJobTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"job_id": {
				"type": "integer",
				"description": "The ID of the job to run"
			},
			"job_parameters": {
				"type": "string",
				"description": "Optional job parameters as a JSON string"
			}
		},
		"required": ["job_id"]
	}`)
}

func (t *StartJobTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	jobID, ok := intArg(args, "job_id")
	if !ok {
		return errorPayload(t.Name(), fmt.Errorf("'job_id' is required")), nil
	}

	body := map[string]any{"job_id": jobID}
	if params := stringArg(args, "job_parameters"); params != "" {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(params), &decoded); err != nil {
			return errorPayload(t.Name(), fmt.Errorf("invalid job_parameters JSON: %v", err)), nil
		}
		// Field name matches the platform contract this agent was built against.
		body["json_parameters"] = decoded
	}

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.2/jobs/run-now", body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Job: %d started successfully.", jobID), nil
}

// ListJobsTool lists job definitions in the workspace.
type ListJobsTool struct{ client *databricks.Client }

func NewListJobsTool(c *databricks.Client) *ListJobsTool { return &ListJobsTool{client: c} }

func (t *ListJobsTool) Name() string { return "list_jobs" }
func (t *ListJobsTool) Description() string {
	return "List all jobs via the Databricks REST API."
}
func (t *ListJobsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"limit": {
				"type": "integer",
				"description": "Number of jobs to return per page",
				"default": 20
			},
			"expand_tasks": {
				"type": "boolean",
				"description": "Whether to include task and cluster details",
				"default": false
			},
			"name": {
				"type": "string",
				"description": "Filter jobs by exact name"
			},
			"page_token": {
				"type": "string",
				"description": "Pagination token from a previous response"
			}
		},
		"required": []
	}`)
}

func (t *ListJobsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	limit, ok := intArg(args, "limit")
	if !ok {
		limit = 20
	}
	body := map[string]any{
		"limit":        limit,
		"expand_tasks": boolArg(args, "expand_tasks", false),
	}
	if name := stringArg(args, "name"); name != "" {
		body["name"] = name
	}
	if token := stringArg(args, "page_token"); token != "" {
		body["page_token"] = token
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/api/2.2/jobs/list", body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}

// CancelJobTool cancels all active runs of a job.
type CancelJobTool struct{ client *databricks.Client }

func NewCancelJobTool(c *databricks.Client) *CancelJobTool { return &CancelJobTool{client: c} }

func (t *CancelJobTool) Name() string { return "cancel_job" }
func (t *CancelJobTool) Description() string {
	return "Cancel a job run via the Databricks REST API. The 'job_id' parameter is required."
}
func (t *CancelJobTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"job_id": {
				"type": "integer",
				"description": "The ID of the job whose runs are cancelled"
			}
		},
		"required": ["job_id"]
	}`)
}

func (t *CancelJobTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	jobID, ok := intArg(args, "job_id")
	if !ok {
		return errorPayload(t.Name(), fmt.Errorf("'job_id' is required")), nil
	}

	_, err := t.client.Do(ctx, http.MethodPost, "/api/2.2/jobs/runs/cancel-all",
		map[string]any{"job_id": jobID})
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return successPayload("Job: %d cancelled successfully.", jobID), nil
}

// GetJobDetailsTool fetches the full configuration of one job definition.
type GetJobDetailsTool struct{ client *databricks.Client }

func NewGetJobDetailsTool(c *databricks.Client) *GetJobDetailsTool {
	return &GetJobDetailsTool{client: c}
}

func (t *GetJobDetailsTool) Name() string { return "get_job_details" }
func (t *GetJobDetailsTool) Description() string {
	return "Retrieves the full configuration and metadata for a single job definition via the Databricks REST API. The 'job_id' parameter is required."
}
func (t *GetJobDetailsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"job_id": {
				"type": "integer",
				"description": "The ID of the job to fetch"
			},
			"page_token": {
				"type": "string",
				"description": "Pagination token for jobs with many tasks"
			}
		},
		"required": ["job_id"]
	}`)
}

func (t *GetJobDetailsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	jobID, ok := intArg(args, "job_id")
	if !ok {
		return errorPayload(t.Name(), fmt.Errorf("'job_id' is required")), nil
	}

	body := map[string]any{"job_id": jobID}
	if token := stringArg(args, "page_token"); token != "" {
		body["page_token"] = token
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/api/2.2/jobs/get", body)
	if err != nil {
		return errorPayload(t.Name(), err), nil
	}
	return string(raw), nil
}
