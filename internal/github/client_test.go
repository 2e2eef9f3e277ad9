package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func decodeRequest(t *testing.T, r *http.Request) graphqlRequest {
	t.Helper()
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Fatalf("failed to decode request: %v", err)
	}
	return req
}

func TestFetchRepoIssuesPagination(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		req := decodeRequest(t, r)
		calls++

		switch calls {
		case 1:
			if req.Variables["cursor"] != nil {
				t.Errorf("first call cursor = %v, want null", req.Variables["cursor"])
			}
			fmt.Fprint(w, `{"data":{"repository":{"issues":{
				"pageInfo":{"hasNextPage":true,"endCursor":"CURSOR1"},
				"nodes":[{"title":"Issue 1","url":"https://example.com/1","state":"OPEN"}]
			}}}}`)
		case 2:
			if req.Variables["cursor"] != "CURSOR1" {
				t.Errorf("second call cursor = %v, want CURSOR1", req.Variables["cursor"])
			}
			fmt.Fprint(w, `{"data":{"repository":{"issues":{
				"pageInfo":{"hasNextPage":false,"endCursor":""},
				"nodes":[{"title":"Issue 2","url":"https://example.com/2","state":"OPEN"}]
			}}}}`)
		default:
			t.Errorf("unexpected call %d", calls)
		}
	}))
	defer server.Close()

	client := NewClient(Options{URL: server.URL, Token: "test-token"})
	issues, err := client.FetchRepoIssues(context.Background(), "o", "r")
	if err != nil {
		t.Fatalf("FetchRepoIssues failed: %v", err)
	}

	if len(issues) != 2 {
		t.Fatalf("expected 2 issues across pages, got %d", len(issues))
	}
	if issues[0].Title != "Issue 1" || issues[1].Title != "Issue 2" {
		t.Errorf("unexpected issues: %+v", issues)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestFetchRepoIssuesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(Options{URL: server.URL, Token: "bad"})
	_, err := client.FetchRepoIssues(context.Background(), "o", "r")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
}

func TestFetchRepoIssuesErrorList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":null,"errors":[{"message":"Could not resolve to a Repository"}]}`)
	}))
	defer server.Close()

	client := NewClient(Options{URL: server.URL, Token: "t"})
	_, err := client.FetchRepoIssues(context.Background(), "o", "missing")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if len(apiErr.Errors) != 1 {
		t.Fatalf("expected 1 graphql error, got %+v", apiErr.Errors)
	}
	if apiErr.Error() != "github graphql error: Could not resolve to a Repository" {
		t.Errorf("unexpected message: %s", apiErr.Error())
	}
}

func TestFetchBoards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"user":{"projectsV2":{
			"pageInfo":{"hasNextPage":false,"endCursor":""},
			"nodes":[{
				"id":"P1","title":"Roadmap",
				"items":{"nodes":[
					{"content":{"__typename":"Issue","title":"Board issue","url":"https://example.com/5","state":"OPEN","repository":{"name":"co-co"}},
					 "fieldValues":{"nodes":[{"date":"2026-10-01","field":{"name":"締切"}}]}},
					{"content":{"__typename":"DraftIssue","title":"Draft","body":"notes"},
					 "fieldValues":{"nodes":[]}}
				]}
			}]
		}}}}`)
	}))
	defer server.Close()

	client := NewClient(Options{URL: server.URL, Token: "t"})
	boards, err := client.FetchBoards(context.Background(), "kochan17")
	if err != nil {
		t.Fatalf("FetchBoards failed: %v", err)
	}

	if len(boards) != 1 || boards[0].Title != "Roadmap" {
		t.Fatalf("unexpected boards: %+v", boards)
	}
	items := boards[0].Items.Nodes
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Content.Kind != "Issue" || items[0].Content.Repository.Name != "co-co" {
		t.Errorf("unexpected issue content: %+v", items[0].Content)
	}
	if items[0].FieldValues.Nodes[0].Field.Name != "締切" {
		t.Errorf("unexpected field value: %+v", items[0].FieldValues.Nodes[0])
	}
	if items[1].Content.Kind != "DraftIssue" {
		t.Errorf("unexpected draft content: %+v", items[1].Content)
	}
}
