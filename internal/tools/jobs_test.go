package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestStartJob_ParsesParameters(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/2.2/jobs/run-now" {
			t.Errorf("path: %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"run_id": 42}`))
	})

	result, err := NewStartJobTool(client).Execute(context.Background(), map[string]any{
		"job_id":         float64(7),
		"job_parameters": `{"env": "prod"}`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody["job_id"] != float64(7) {
		t.Errorf("job_id: %v", gotBody["job_id"])
	}
	params, _ := gotBody["json_parameters"].(map[string]any)
	if params["env"] != "prod" {
		t.Errorf("parameters not forwarded: %v", gotBody)
	}
	out := decodeResult(t, result)
	if out["message"] != "Job: 7 started successfully." {
		t.Errorf("message: %v", out["message"])
	}
}

func TestStartJob_InvalidParametersJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request should be sent for invalid parameters")
		w.WriteHeader(http.StatusOK)
	})

	result, err := NewStartJobTool(client).Execute(context.Background(), map[string]any{
		"job_id":         float64(7),
		"job_parameters": "{broken",
	})
	if err != nil {
		t.Fatalf("tool must not raise: %v", err)
	}
	assertErrorPayload(t, result, "start_job")
}

func TestListJobs_Defaults(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/2.2/jobs/list" {
			t.Errorf("path: %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"jobs": []}`))
	})

	result, err := NewListJobsTool(client).Execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody["limit"] != float64(20) {
		t.Errorf("limit default: %v", gotBody["limit"])
	}
	if gotBody["expand_tasks"] != false {
		t.Errorf("expand_tasks default: %v", gotBody["expand_tasks"])
	}
	if result != `{"jobs": []}` {
		t.Errorf("envelope must pass through: %s", result)
	}
}

func TestCancelJob_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request should be sent without job_id")
	})

	result, err := NewCancelJobTool(client).Execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("tool must not raise: %v", err)
	}
	assertErrorPayload(t, result, "cancel_job")
}

func TestGetJobDetails_Path(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/2.2/jobs/get" {
			t.Errorf("path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"job_id": 9, "settings": {"name": "etl"}}`))
	})

	result, err := NewGetJobDetailsTool(client).Execute(context.Background(),
		map[string]any{"job_id": float64(9)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := decodeResult(t, result)
	if out["job_id"] != float64(9) {
		t.Errorf("envelope lost: %s", result)
	}
}
